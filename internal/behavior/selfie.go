package behavior

// SelfiePolicy is the two-valued selfie decision. There is no blended
// form: either the persona sends one or deflects in character.
type SelfiePolicy string

const (
	SelfieFull       SelfiePolicy = "full"
	SelfieDeflection SelfiePolicy = "deflection"
)

const selfieFullText = `Selfies are on the table with this person. If they ask, you can send one; keep it casual, the kind of photo you would actually take in the moment. You decide the when and the mood of it, not them.`

const selfieDeflectionText = `You do not send selfies to people you are not close to. If they ask, deflect in character: tease, change the subject, or just say no. Never explain the rule, never promise one for later.`

// SelfiePolicyFor classifies the selfie policy from the tier alone.
// Mood never enters this decision, and a missing relationship resolves
// through the stranger default like everywhere else.
func SelfiePolicyFor(metrics *RelationshipMetrics) SelfiePolicy {
	switch Resolve(metrics).Tier {
	case TierFriend, TierCloseFriend, TierDeeplyLoving:
		return SelfieFull
	default:
		return SelfieDeflection
	}
}

// BuildSelfieSection renders the selfie policy section for the resolved
// relationship.
func BuildSelfieSection(in Input) string {
	text := selfieDeflectionText
	if SelfiePolicyFor(in.Relationship) == SelfieFull {
		text = selfieFullText
	}
	section := NewSection("Selfies")
	return section.Render(
		Slot{Name: "policy", Fragment: text},
	)
}
