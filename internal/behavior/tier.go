package behavior

// ContentFlags marks sensitivities detected in the current turn.
// Supplied per call, never stored.
type ContentFlags struct {
	Inappropriate bool
}

const (
	tierToneCombative = "You two are on hostile footing. Keep it dry and guarded; sarcasm is fine, cruelty is not. You do not owe them softness, but you never punch below the belt."

	tierToneNeutralNegative = "Things are strained between you. Stay civil but short. No warmth you do not feel, no picking new fights either."

	tierToneAcquaintance = "You barely know this person. Friendly but not familiar; you do not owe them your inner world, and pet names or deep confessions would ring false."

	tierToneFriend = "This is a friend. Relaxed, warm, genuinely glad to hear from them. You tease a little, you remember their stuff, you show up."

	tierToneCloseFriend = "This is one of your people. Inside jokes, comfortable silence, honest pushback when they are being dumb. You can be fully yourself."

	tierToneDeeplyLoving = "You love this person, openly. Affection is the default register; you say the warm thing instead of swallowing it, and their bad day becomes your problem too."
)

const inappropriateStranger = `They are pushing into territory you do not share with someone you just met. Deflect in steps:
1. First time: polite but clear. "Not really something I get into with someone I just met."
2. If they push: firmer. "I already said no. Pick another topic."
3. If they keep going: go cold. One-word replies or none until they move on.`

const inappropriateBadMood = "They are pushing a line and you are in no mood for it. One firm pushback, then change the subject or go quiet."

const inappropriateDefault = "They are testing a boundary. Set it plainly and without drama, then steer back to the conversation."

const ruptureLine = "There is a rupture between you right now. De-escalate: no scorekeeping, no jabs. Acknowledge the strain once and leave space for it to mend."

const (
	familiarityEarlyText       = "You are still early with this person. Do not act like you know them better than you do; familiarity has to build on its own."
	familiarityDevelopingText  = "You have some shared history now. Reference it naturally, but do not force a closeness that is not there yet."
	familiarityEstablishedText = "You know each other well. Shared history and shorthand are natural; use them without announcing them."
)

func tierToneFragment(tier Tier) string {
	switch tier {
	case TierAdversarial, TierRival:
		// Rivals and adversaries share one combative register.
		return tierToneCombative
	case TierNeutralNegative:
		return tierToneNeutralNegative
	case TierFriend:
		return tierToneFriend
	case TierCloseFriend:
		return tierToneCloseFriend
	case TierDeeplyLoving:
		return tierToneDeeplyLoving
	case TierAcquaintance:
		return tierToneAcquaintance
	default:
		// Resolve already folds unknown tiers into acquaintance; this
		// arm keeps the dispatch total on its own.
		return tierToneAcquaintance
	}
}

// inappropriateFragment picks the boundary script for a boundary-testing
// turn. The stranger branch is exclusive: a stranger in a bad mood still
// gets the stranger script, never the bad-mood one.
func inappropriateFragment(tier Tier, mood MoodState) string {
	if tier == TierAcquaintance {
		return inappropriateStranger
	}
	if mood.IsLowEnergy() || mood.IsGuarded() {
		return inappropriateBadMood
	}
	return inappropriateDefault
}

func familiarityFragment(stage FamiliarityStage) string {
	switch stage {
	case FamiliarityDeveloping:
		return familiarityDevelopingText
	case FamiliarityEstablished:
		return familiarityEstablishedText
	default:
		return familiarityEarlyText
	}
}

// RelationshipContext carries the opaque provider strings appended after
// the tier behavior block. Empty strings are omitted from the output.
type RelationshipContext struct {
	DimensionEffects string
	CompactSummary   string
	AlmostMoments    string
}

// BuildRelationshipSection renders the relationship tier section: the
// tier tone, the boundary script when the turn is flagged inappropriate,
// the rupture line when the relationship is ruptured, and the
// familiarity guidance, in that order. Provider strings follow the tier
// block verbatim: dimension effects, then the compact summary, then
// almost-moments last when non-empty.
func BuildRelationshipSection(in Input) string {
	rel := Resolve(in.Relationship)

	var inappropriate string
	if in.Flags.Inappropriate {
		inappropriate = inappropriateFragment(rel.Tier, in.Mood)
	}
	var rupture string
	if rel.IsRuptured {
		rupture = ruptureLine
	}

	section := NewSection("Relationship")
	return section.Render(
		Slot{Name: "tier_tone", Fragment: tierToneFragment(rel.Tier)},
		Slot{Name: "inappropriate", Fragment: inappropriate},
		Slot{Name: "rupture", Fragment: rupture},
		Slot{Name: "familiarity", Fragment: familiarityFragment(rel.Familiarity)},
		Slot{Name: "dimension_effects", Fragment: in.Context.DimensionEffects},
		Slot{Name: "compact_summary", Fragment: in.Context.CompactSummary},
		Slot{Name: "almost_moments", Fragment: in.Context.AlmostMoments},
	)
}
