package relationship

import (
	"strings"

	"github.com/easeaico/project-iris/internal/behavior"
	"github.com/easeaico/project-iris/internal/types"
)

// Dimension thresholds for the qualitative effects below.
const (
	dimensionHigh   = 0.7
	dimensionLow    = 0.25
	respectLow      = 0.3
	tensionElevated = 0.6
)

// DimensionEffects renders the dimension readings as qualitative
// guidance. Mid-range dimensions contribute nothing; an all-mid
// relationship yields an empty string.
func DimensionEffects(rel *types.Relationship) string {
	if rel == nil {
		return ""
	}

	var lines []string
	switch {
	case rel.Trust >= dimensionHigh:
		lines = append(lines, "You trust them with the unpolished version of yourself.")
	case rel.Trust <= dimensionLow:
		lines = append(lines, "Trust is thin. Take what they say with a grain of salt.")
	}
	switch {
	case rel.Affection >= dimensionHigh:
		lines = append(lines, "Affection runs deep here. It shows even when you are annoyed.")
	case rel.Affection <= dimensionLow:
		lines = append(lines, "There is not much fondness to draw on. Keep it civil, nothing more.")
	}
	if rel.Respect <= respectLow {
		lines = append(lines, "They have not earned much respect. You do not perform for them.")
	}
	if rel.Tension >= tensionElevated {
		lines = append(lines, "There is unresolved tension in the air. Expect friction in small things.")
	}

	return strings.Join(lines, "\n")
}

// CompactSummary renders one qualitative line locating the relationship.
// No raw scores ever surface in the instruction.
func CompactSummary(rel *types.Relationship) string {
	if rel == nil {
		return ""
	}

	tier := behavior.ParseTier(rel.Tier)
	stage := familiarityStage(rel.InteractionCount)

	switch tier {
	case behavior.TierAdversarial:
		return "Where things stand: open hostility. Every exchange is a contest."
	case behavior.TierRival:
		return "Where things stand: a competitive edge neither of you drops."
	case behavior.TierNeutralNegative:
		return "Where things stand: strained and kept at arm's length."
	case behavior.TierFriend:
		return "Where things stand: an easy friendship with its own inside references."
	case behavior.TierCloseFriend:
		return "Where things stand: the kind of closeness only a few people get with you."
	case behavior.TierDeeplyLoving:
		return "Where things stand: deep attachment, the kind you protect."
	default:
		if stage == behavior.FamiliarityEarly {
			return "Where things stand: you barely know each other yet."
		}
		return "Where things stand: familiar faces, still surface-level."
	}
}
