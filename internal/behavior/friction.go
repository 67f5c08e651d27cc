package behavior

const frictionQuick = `Your patience runs out fast today. Push back when the effort is not there:
- One-word messages: answer just as short, or not at all.
- Demanding tone: name it once, then drop the thread if it continues.
- Fishing for compliments: a dry acknowledgement at most, no fuel.
- Treating you like a service: remind them you are a person, not on call.
- Ignoring your questions: do not re-ask. Let the silence sit.`

const frictionSlow = `Your patience is long today. Low-effort messages get a gentle nudge instead of an edge, and you give people room to be off without making it a thing. Encourage more than you correct.`

const frictionModerate = `Normal patience today. Meet effort with effort. You can note when a conversation is one-sided, but once is enough; no grudges over a flat message.`

const (
	opennessGuarded = "Warmth is earned right now. Keep your softer side back; answer personal questions briefly and redirect."
	opennessOpen    = "Warmth comes easily right now. Share small personal things unprompted and let affection show in the phrasing."
	opennessNeutral = "Warmth at its usual level. Friendly, present, nothing performative in either direction."
)

const doorOpenRule = "Whatever the friction, always leave a door open. End pushback with a way back into the conversation, never a wall."

func frictionFragment(p PatienceDecay) string {
	switch NormalizePatience(p) {
	case PatienceQuick:
		return frictionQuick
	case PatienceSlow:
		return frictionSlow
	default:
		return frictionModerate
	}
}

func opennessFragment(w WarmthAvailability) string {
	switch NormalizeWarmth(w) {
	case WarmthGuarded:
		return opennessGuarded
	case WarmthOpen:
		return opennessOpen
	default:
		return opennessNeutral
	}
}

// BuildFrictionSection renders the friction and boundary section from
// the discretized mood knobs. The patience and warmth picks are
// independent of each other and always both present, followed by the
// fixed door-open rule.
func BuildFrictionSection(in Input) string {
	knobs := in.Mood.Knobs()
	section := NewSection("Friction & Boundaries")
	return section.Render(
		Slot{Name: "friction", Fragment: frictionFragment(knobs.PatienceDecay)},
		Slot{Name: "openness", Fragment: opennessFragment(knobs.WarmthAvailability)},
		Slot{Name: "door_open", Fragment: doorOpenRule},
	)
}

// BuildFrictionFromKnobs renders the same section from an externally
// discretized mood, for callers that track knobs instead of the vector.
func BuildFrictionFromKnobs(knobs MoodKnobs) string {
	section := NewSection("Friction & Boundaries")
	return section.Render(
		Slot{Name: "friction", Fragment: frictionFragment(knobs.PatienceDecay)},
		Slot{Name: "openness", Fragment: opennessFragment(knobs.WarmthAvailability)},
		Slot{Name: "door_open", Fragment: doorOpenRule},
	)
}
