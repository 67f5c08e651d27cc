package behavior

import "strings"

// Tier is the discrete relationship-closeness category.
type Tier string

const (
	TierAdversarial     Tier = "adversarial"
	TierRival           Tier = "rival"
	TierNeutralNegative Tier = "neutral_negative"
	TierAcquaintance    Tier = "acquaintance"
	TierFriend          Tier = "friend"
	TierCloseFriend     Tier = "close_friend"
	TierDeeplyLoving    Tier = "deeply_loving"
)

// ParseTier maps a raw tier value onto the closed tier set. Anything
// unrecognized resolves to acquaintance rather than an error.
func ParseTier(raw string) Tier {
	switch Tier(strings.ToLower(strings.TrimSpace(raw))) {
	case TierAdversarial:
		return TierAdversarial
	case TierRival:
		return TierRival
	case TierNeutralNegative:
		return TierNeutralNegative
	case TierAcquaintance:
		return TierAcquaintance
	case TierFriend:
		return TierFriend
	case TierCloseFriend:
		return TierCloseFriend
	case TierDeeplyLoving:
		return TierDeeplyLoving
	default:
		return TierAcquaintance
	}
}

// FamiliarityStage is how far the shared history has come.
type FamiliarityStage string

const (
	FamiliarityEarly       FamiliarityStage = "early"
	FamiliarityDeveloping  FamiliarityStage = "developing"
	FamiliarityEstablished FamiliarityStage = "established"
)

// DimensionScores are the numeric relationship dimensions. The selectors
// never read them; they are carried for the dimension-effects provider.
type DimensionScores struct {
	Trust     float64
	Affection float64
	Respect   float64
	Tension   float64
}

// RelationshipMetrics is the relationship state for one turn, already
// computed upstream and read-only here.
type RelationshipMetrics struct {
	Tier        Tier
	IsRuptured  bool
	Familiarity FamiliarityStage
	Dimensions  DimensionScores
}

// Stranger is the relationship assumed when none has been recorded yet.
// It behaves exactly like an explicit acquaintance.
func Stranger() RelationshipMetrics {
	return RelationshipMetrics{
		Tier:        TierAcquaintance,
		Familiarity: FamiliarityEarly,
	}
}

// Resolve normalizes a possibly missing relationship into a value every
// selector can consume: nil becomes the stranger default, unknown tiers
// and stages fall back to acquaintance and early.
func Resolve(metrics *RelationshipMetrics) RelationshipMetrics {
	if metrics == nil {
		return Stranger()
	}
	resolved := *metrics
	resolved.Tier = ParseTier(string(resolved.Tier))
	switch resolved.Familiarity {
	case FamiliarityEarly, FamiliarityDeveloping, FamiliarityEstablished:
	default:
		resolved.Familiarity = FamiliarityEarly
	}
	return resolved
}
