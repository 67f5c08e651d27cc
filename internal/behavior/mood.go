package behavior

// Classification thresholds shared by the continuous and the discretized
// mood forms. Energy in [0, 0.5] is normal, warmth in [0.4, 0.7] is neutral.
const (
	lowEnergyBelow  = 0.0
	highEnergyAbove = 0.5
	guardedBelow    = 0.4
	warmAbove       = 0.7
)

// MoodState is the continuous mood vector for one conversational turn.
// Energy is signed, roughly -1..1; warmth sits in 0..1. GenuineMoment
// marks a turn of heightened emotional authenticity and overrides the
// mood-derived engagement tone.
type MoodState struct {
	Energy        float64
	Warmth        float64
	GenuineMoment bool
}

// IsLowEnergy reports whether energy is below the low threshold.
func (m MoodState) IsLowEnergy() bool {
	return m.Energy < lowEnergyBelow
}

// IsHighEnergy reports whether energy is above the high threshold.
// Energy between the two thresholds is normal, neither low nor high.
func (m MoodState) IsHighEnergy() bool {
	return m.Energy > highEnergyAbove
}

// IsGuarded reports whether warmth is below the guarded threshold.
func (m MoodState) IsGuarded() bool {
	return m.Warmth < guardedBelow
}

// IsWarm reports whether warmth is above the warm threshold.
// Warmth between the two thresholds is neutral, neither guarded nor warm.
func (m MoodState) IsWarm() bool {
	return m.Warmth > warmAbove
}

// PatienceDecay is how fast the persona's patience runs out.
type PatienceDecay string

const (
	PatienceQuick    PatienceDecay = "quick"
	PatienceSlow     PatienceDecay = "slow"
	PatienceModerate PatienceDecay = "moderate"
)

// WarmthAvailability is how much warmth the persona offers unprompted.
type WarmthAvailability string

const (
	WarmthGuarded WarmthAvailability = "guarded"
	WarmthOpen    WarmthAvailability = "open"
	WarmthNeutral WarmthAvailability = "neutral"
)

// MoodKnobs is the discretized mood form consumed by the friction selector.
type MoodKnobs struct {
	PatienceDecay      PatienceDecay
	WarmthAvailability WarmthAvailability
}

// Knobs discretizes the mood vector using the same thresholds as the
// boolean classifications, so the two forms cannot drift apart. Low
// energy drains patience quickly, high energy stretches it.
func (m MoodState) Knobs() MoodKnobs {
	knobs := MoodKnobs{
		PatienceDecay:      PatienceModerate,
		WarmthAvailability: WarmthNeutral,
	}
	switch {
	case m.IsLowEnergy():
		knobs.PatienceDecay = PatienceQuick
	case m.IsHighEnergy():
		knobs.PatienceDecay = PatienceSlow
	}
	switch {
	case m.IsGuarded():
		knobs.WarmthAvailability = WarmthGuarded
	case m.IsWarm():
		knobs.WarmthAvailability = WarmthOpen
	}
	return knobs
}

// NormalizePatience maps unknown patience classes to moderate.
func NormalizePatience(p PatienceDecay) PatienceDecay {
	switch p {
	case PatienceQuick, PatienceSlow, PatienceModerate:
		return p
	default:
		return PatienceModerate
	}
}

// NormalizeWarmth maps unknown warmth-availability classes to neutral.
func NormalizeWarmth(w WarmthAvailability) WarmthAvailability {
	switch w {
	case WarmthGuarded, WarmthOpen, WarmthNeutral:
		return w
	default:
		return WarmthNeutral
	}
}
