package relationship

import (
	"context"
	"fmt"
	"strings"

	"github.com/easeaico/project-iris/internal/behavior"
	"github.com/easeaico/project-iris/internal/types"
)

// Repo persists relationship records. Get returns nil when no record
// exists yet for the pair.
type Repo interface {
	Get(ctx context.Context, userID, appName string) (*types.Relationship, error)
	Save(ctx context.Context, rel *types.Relationship) error
}

// Tier boundaries on the running score.
const (
	adversarialBelow     = -8
	rivalBelow           = -4
	neutralNegativeBelow = -1
	acquaintanceBelow    = 4
	friendBelow          = 9
	closeFriendBelow     = 15
)

// Familiarity boundaries on the interaction count.
const (
	developingAfter  = 10
	establishedAfter = 40
)

// Rupture triggers on a strong-negative turn and holds until an
// explicitly positive one.
const (
	ruptureDelta = strongNegativeScore
	repairDelta  = positiveScore
)

// Tracker applies user turns to the stored relationship and exposes it
// in selector form.
type Tracker struct {
	repo        Repo
	characterID int
}

// NewTracker returns a Tracker.
func NewTracker(repo Repo, characterID int) *Tracker {
	return &Tracker{repo: repo, characterID: characterID}
}

// ApplyUserTurn scores one user message and folds it into the stored
// relationship: score, tier, interaction count, rupture state, and the
// dimension readings all move together.
func (t *Tracker) ApplyUserTurn(ctx context.Context, userID, appName, text string) error {
	if t == nil || t.repo == nil {
		return fmt.Errorf("relationship tracker not configured")
	}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	rel, err := t.repo.Get(ctx, userID, appName)
	if err != nil {
		return fmt.Errorf("failed to get relationship: %w", err)
	}
	if rel == nil {
		rel = newRelationship(userID, appName, t.characterID)
	}

	delta := ScoreDelta(trimmed)
	rel.Score += delta
	rel.InteractionCount++
	applyDimensionDrift(rel, delta)

	switch {
	case delta <= ruptureDelta:
		rel.IsRuptured = true
	case rel.IsRuptured && delta >= repairDelta:
		rel.IsRuptured = false
	}

	rel.Tier = string(mapTier(rel.Score))

	if err := t.repo.Save(ctx, rel); err != nil {
		return fmt.Errorf("failed to save relationship: %w", err)
	}
	return nil
}

// Metrics loads the stored relationship in selector form. A missing
// record returns nil so callers fall back to the stranger default.
func (t *Tracker) Metrics(ctx context.Context, userID, appName string) (*behavior.RelationshipMetrics, error) {
	if t == nil || t.repo == nil {
		return nil, fmt.Errorf("relationship tracker not configured")
	}

	rel, err := t.repo.Get(ctx, userID, appName)
	if err != nil {
		return nil, fmt.Errorf("failed to get relationship: %w", err)
	}
	if rel == nil {
		return nil, nil
	}

	metrics := MetricsOf(rel)
	return &metrics, nil
}

// Current loads the raw stored relationship, for the context providers.
func (t *Tracker) Current(ctx context.Context, userID, appName string) (*types.Relationship, error) {
	if t == nil || t.repo == nil {
		return nil, fmt.Errorf("relationship tracker not configured")
	}
	rel, err := t.repo.Get(ctx, userID, appName)
	if err != nil {
		return nil, fmt.Errorf("failed to get relationship: %w", err)
	}
	return rel, nil
}

// MetricsOf maps a stored relationship onto the selector-facing value.
func MetricsOf(rel *types.Relationship) behavior.RelationshipMetrics {
	return behavior.RelationshipMetrics{
		Tier:        behavior.ParseTier(rel.Tier),
		IsRuptured:  rel.IsRuptured,
		Familiarity: familiarityStage(rel.InteractionCount),
		Dimensions: behavior.DimensionScores{
			Trust:     rel.Trust,
			Affection: rel.Affection,
			Respect:   rel.Respect,
			Tension:   rel.Tension,
		},
	}
}

// newRelationship seeds a fresh record at the acquaintance baseline.
func newRelationship(userID, appName string, characterID int) *types.Relationship {
	return &types.Relationship{
		UserID:      userID,
		AppName:     appName,
		CharacterID: characterID,
		Tier:        string(behavior.TierAcquaintance),
		Trust:       0.3,
		Affection:   0.3,
		Respect:     0.5,
		Tension:     0.1,
	}
}

func mapTier(score int) behavior.Tier {
	switch {
	case score <= adversarialBelow:
		return behavior.TierAdversarial
	case score <= rivalBelow:
		return behavior.TierRival
	case score <= neutralNegativeBelow:
		return behavior.TierNeutralNegative
	case score <= acquaintanceBelow:
		return behavior.TierAcquaintance
	case score <= friendBelow:
		return behavior.TierFriend
	case score <= closeFriendBelow:
		return behavior.TierCloseFriend
	default:
		return behavior.TierDeeplyLoving
	}
}

func familiarityStage(interactions int) behavior.FamiliarityStage {
	switch {
	case interactions < developingAfter:
		return behavior.FamiliarityEarly
	case interactions < establishedAfter:
		return behavior.FamiliarityDeveloping
	default:
		return behavior.FamiliarityEstablished
	}
}

func applyDimensionDrift(rel *types.Relationship, delta int) {
	switch {
	case delta >= strongPositiveScore:
		rel.Trust += 0.04
		rel.Affection += 0.06
		rel.Respect += 0.02
		rel.Tension -= 0.10
	case delta > 0:
		rel.Trust += 0.02
		rel.Affection += 0.03
		rel.Respect += 0.01
		rel.Tension -= 0.05
	case delta <= strongNegativeScore:
		rel.Trust -= 0.10
		rel.Affection -= 0.08
		rel.Respect -= 0.06
		rel.Tension += 0.20
	case delta < 0:
		rel.Trust -= 0.05
		rel.Affection -= 0.04
		rel.Respect -= 0.02
		rel.Tension += 0.10
	default:
		rel.Tension -= 0.02
	}

	rel.Trust = clamp01(rel.Trust)
	rel.Affection = clamp01(rel.Affection)
	rel.Respect = clamp01(rel.Respect)
	rel.Tension = clamp01(rel.Tension)
}

func clamp01(value float64) float64 {
	switch {
	case value < 0:
		return 0
	case value > 1:
		return 1
	default:
		return value
	}
}
