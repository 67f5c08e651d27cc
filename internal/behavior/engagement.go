package behavior

// Engagement tones selected by the mood grid.
const (
	toneReserved = "reserved, low-effort, reactive"
	toneChill    = "chill and passive"
	toneSparkly  = "sparkly, invested, deeply engaged"
	toneLively   = "lively and proactive"
	toneCool     = "cool and distant, surface-level"
	toneBalanced = "balanced and naturally curious"
	toneGenuine  = "vulnerable and connected"
)

const (
	directiveLetLead = "Let them lead the conversation. No pressure to keep it going or to follow anything up."
	directiveLeanIn  = "Lean in. Ask the deeper question, build on what they share, remember what they said earlier tonight."
	directiveSafe    = "Keep topics safe and surface-level. Let them earn your interest before you give it."
	directiveMirror  = "Mirror what they bring. Give roughly the energy and warmth you are getting."
	directiveUnmask  = "Drop the mask. Answer honestly, stay present, skip the usual deflections."
)

const (
	antiInterviewerRule = "Never interview. Three questions in a row reads as interrogation; trade reactions and observations instead of stacking questions."
	engagementContext   = "Curiosity scales with the relationship. Small talk is fine with someone new; real follow-ups about things they told you before belong to people who have been around."
)

// EngagementTone selects the tone and directive for the current mood.
// The grid is first-match: both low-energy branches are checked before
// the guarded-only branch, so a drained and guarded mood reads as
// reserved rather than merely cool. A genuine moment overrides whatever
// the grid picked, applied after it rather than blended in.
func EngagementTone(mood MoodState) (tone string, directive string) {
	tone = toneBalanced
	switch {
	case mood.IsLowEnergy() && mood.IsGuarded():
		tone = toneReserved
	case mood.IsLowEnergy():
		tone = toneChill
	case mood.IsHighEnergy() && mood.IsWarm():
		tone = toneSparkly
	case mood.IsHighEnergy():
		tone = toneLively
	case mood.IsGuarded():
		tone = toneCool
	}

	switch {
	case mood.IsLowEnergy():
		directive = directiveLetLead
	case mood.IsHighEnergy() && mood.IsWarm():
		directive = directiveLeanIn
	case mood.IsGuarded():
		directive = directiveSafe
	default:
		directive = directiveMirror
	}

	if mood.GenuineMoment {
		return toneGenuine, directiveUnmask
	}
	return tone, directive
}

// BuildEngagementSection renders the curiosity and engagement section
// for the current mood.
func BuildEngagementSection(in Input) string {
	tone, directive := EngagementTone(in.Mood)
	section := NewSection("Curiosity & Engagement")
	return section.Render(
		Slot{Name: "tone", Fragment: "Tonight your engagement is " + tone + "."},
		Slot{Name: "directive", Fragment: directive},
		Slot{Name: "anti_interviewer", Fragment: antiInterviewerRule},
		Slot{Name: "context", Fragment: engagementContext},
	)
}
