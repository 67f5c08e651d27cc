package relationship

import (
	"context"
	"strings"
	"testing"

	"github.com/easeaico/project-iris/internal/behavior"
	"github.com/easeaico/project-iris/internal/types"
)

type fakeRepo struct {
	stored *types.Relationship
	saved  []types.Relationship
}

func (r *fakeRepo) Get(ctx context.Context, userID, appName string) (*types.Relationship, error) {
	if r.stored == nil {
		return nil, nil
	}
	copyValue := *r.stored
	return &copyValue, nil
}

func (r *fakeRepo) Save(ctx context.Context, rel *types.Relationship) error {
	copyValue := *rel
	r.stored = &copyValue
	r.saved = append(r.saved, copyValue)
	return nil
}

func TestApplyUserTurnSeedsNewRelationship(t *testing.T) {
	repo := &fakeRepo{}
	tracker := NewTracker(repo, 1)

	if err := tracker.ApplyUserTurn(context.Background(), "user-1", "app-1", "thanks for today"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if repo.stored == nil {
		t.Fatalf("expected relationship to be created")
	}
	if repo.stored.UserID != "user-1" || repo.stored.AppName != "app-1" || repo.stored.CharacterID != 1 {
		t.Fatalf("unexpected relationship keys: %+v", repo.stored)
	}
	if repo.stored.Score != positiveScore || repo.stored.InteractionCount != 1 {
		t.Fatalf("unexpected score tracking: %+v", repo.stored)
	}
	if repo.stored.Tier != string(behavior.TierAcquaintance) {
		t.Fatalf("expected acquaintance tier, got %s", repo.stored.Tier)
	}
}

func TestApplyUserTurnSkipsEmptyInput(t *testing.T) {
	repo := &fakeRepo{}
	tracker := NewTracker(repo, 1)

	if err := tracker.ApplyUserTurn(context.Background(), "user-1", "app-1", "   "); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(repo.saved) != 0 {
		t.Fatalf("expected no save for empty input, got %d", len(repo.saved))
	}
}

func TestApplyUserTurnPromotesTier(t *testing.T) {
	repo := &fakeRepo{stored: &types.Relationship{
		UserID:  "user-1",
		AppName: "app-1",
		Score:   acquaintanceBelow,
		Tier:    string(behavior.TierAcquaintance),
	}}
	tracker := NewTracker(repo, 1)

	if err := tracker.ApplyUserTurn(context.Background(), "user-1", "app-1", "thank you"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if repo.stored.Tier != string(behavior.TierFriend) {
		t.Fatalf("expected promotion to friend, got %s", repo.stored.Tier)
	}
}

func TestApplyUserTurnDemotesThroughNegativeTiers(t *testing.T) {
	repo := &fakeRepo{stored: &types.Relationship{
		UserID:  "user-1",
		AppName: "app-1",
		Score:   rivalBelow + 1,
		Tier:    string(behavior.TierNeutralNegative),
	}}
	tracker := NewTracker(repo, 1)

	if err := tracker.ApplyUserTurn(context.Background(), "user-1", "app-1", "you annoy me"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if repo.stored.Tier != string(behavior.TierRival) {
		t.Fatalf("expected demotion to rival, got %s", repo.stored.Tier)
	}
}

func TestApplyUserTurnStrongNegativeRuptures(t *testing.T) {
	repo := &fakeRepo{stored: &types.Relationship{
		UserID:  "user-1",
		AppName: "app-1",
		Score:   friendBelow,
		Tier:    string(behavior.TierFriend),
		Tension: 0.2,
	}}
	tracker := NewTracker(repo, 1)

	if err := tracker.ApplyUserTurn(context.Background(), "user-1", "app-1", "shut up"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !repo.stored.IsRuptured {
		t.Fatalf("expected rupture after strong negative turn")
	}
	if repo.stored.Tension <= 0.2 {
		t.Fatalf("expected tension to rise, got %v", repo.stored.Tension)
	}
}

func TestApplyUserTurnPositiveRepairsRupture(t *testing.T) {
	repo := &fakeRepo{stored: &types.Relationship{
		UserID:     "user-1",
		AppName:    "app-1",
		Score:      5,
		Tier:       string(behavior.TierFriend),
		IsRuptured: true,
	}}
	tracker := NewTracker(repo, 1)

	if err := tracker.ApplyUserTurn(context.Background(), "user-1", "app-1", "I'm sorry, thank you for putting up with me"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if repo.stored.IsRuptured {
		t.Fatalf("expected rupture to heal after positive turn")
	}
}

func TestApplyUserTurnNeutralKeepsRupture(t *testing.T) {
	repo := &fakeRepo{stored: &types.Relationship{
		UserID:     "user-1",
		AppName:    "app-1",
		Score:      5,
		Tier:       string(behavior.TierFriend),
		IsRuptured: true,
	}}
	tracker := NewTracker(repo, 1)

	if err := tracker.ApplyUserTurn(context.Background(), "user-1", "app-1", "what time is it"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !repo.stored.IsRuptured {
		t.Fatalf("expected rupture to persist through neutral turn")
	}
}

func TestMetricsMissingRecordReturnsNil(t *testing.T) {
	repo := &fakeRepo{}
	tracker := NewTracker(repo, 1)

	metrics, err := tracker.Metrics(context.Background(), "user-1", "app-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if metrics != nil {
		t.Fatalf("expected nil metrics for missing record, got %+v", metrics)
	}
}

func TestMetricsMapsStoredRelationship(t *testing.T) {
	repo := &fakeRepo{stored: &types.Relationship{
		UserID:           "user-1",
		AppName:          "app-1",
		Score:            12,
		Tier:             string(behavior.TierCloseFriend),
		IsRuptured:       true,
		InteractionCount: establishedAfter,
		Trust:            0.8,
		Tension:          0.7,
	}}
	tracker := NewTracker(repo, 1)

	metrics, err := tracker.Metrics(context.Background(), "user-1", "app-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if metrics == nil {
		t.Fatalf("expected metrics for stored record")
	}
	if metrics.Tier != behavior.TierCloseFriend || !metrics.IsRuptured {
		t.Fatalf("unexpected metrics: %+v", metrics)
	}
	if metrics.Familiarity != behavior.FamiliarityEstablished {
		t.Fatalf("expected established familiarity, got %s", metrics.Familiarity)
	}
	if metrics.Dimensions.Trust != 0.8 || metrics.Dimensions.Tension != 0.7 {
		t.Fatalf("unexpected dimensions: %+v", metrics.Dimensions)
	}
}

func TestMetricsOfUnknownTierFallsBack(t *testing.T) {
	metrics := MetricsOf(&types.Relationship{Tier: "soulmate"})
	if metrics.Tier != behavior.TierAcquaintance {
		t.Fatalf("expected fallback to acquaintance, got %s", metrics.Tier)
	}
}

func TestFamiliarityStageBoundaries(t *testing.T) {
	if got := familiarityStage(0); got != behavior.FamiliarityEarly {
		t.Fatalf("expected early at 0, got %s", got)
	}
	if got := familiarityStage(developingAfter); got != behavior.FamiliarityDeveloping {
		t.Fatalf("expected developing at %d, got %s", developingAfter, got)
	}
	if got := familiarityStage(establishedAfter); got != behavior.FamiliarityEstablished {
		t.Fatalf("expected established at %d, got %s", establishedAfter, got)
	}
}

func TestMapTierCoversWholeScoreLine(t *testing.T) {
	expectations := []struct {
		score int
		tier  behavior.Tier
	}{
		{-20, behavior.TierAdversarial},
		{adversarialBelow, behavior.TierAdversarial},
		{rivalBelow, behavior.TierRival},
		{neutralNegativeBelow, behavior.TierNeutralNegative},
		{0, behavior.TierAcquaintance},
		{acquaintanceBelow, behavior.TierAcquaintance},
		{friendBelow, behavior.TierFriend},
		{closeFriendBelow, behavior.TierCloseFriend},
		{closeFriendBelow + 1, behavior.TierDeeplyLoving},
	}
	for _, expected := range expectations {
		if got := mapTier(expected.score); got != expected.tier {
			t.Fatalf("score %d: expected %s, got %s", expected.score, expected.tier, got)
		}
	}
}

func TestDimensionDriftStaysInRange(t *testing.T) {
	rel := &types.Relationship{Trust: 0.98, Affection: 0.99, Respect: 1, Tension: 0}
	applyDimensionDrift(rel, strongPositiveScore)
	if rel.Trust > 1 || rel.Affection > 1 || rel.Respect > 1 || rel.Tension < 0 {
		t.Fatalf("expected dimensions clamped, got %+v", rel)
	}

	rel = &types.Relationship{Trust: 0.02, Affection: 0, Respect: 0.01, Tension: 0.95}
	applyDimensionDrift(rel, strongNegativeScore)
	if rel.Trust < 0 || rel.Affection < 0 || rel.Respect < 0 || rel.Tension > 1 {
		t.Fatalf("expected dimensions clamped, got %+v", rel)
	}
}

func TestContextProvidersNeverLeakNumbers(t *testing.T) {
	rel := &types.Relationship{
		Score:            12,
		Tier:             string(behavior.TierCloseFriend),
		InteractionCount: 57,
		Trust:            0.82,
		Affection:        0.9,
		Respect:          0.2,
		Tension:          0.65,
	}

	for _, text := range []string{DimensionEffects(rel), CompactSummary(rel)} {
		for _, digit := range "0123456789" {
			if strings.ContainsRune(text, digit) {
				t.Fatalf("expected no digits in provider output, got %q", text)
			}
		}
	}
}

func TestDimensionEffectsMidRangeIsEmpty(t *testing.T) {
	rel := &types.Relationship{Trust: 0.5, Affection: 0.5, Respect: 0.5, Tension: 0.3}
	if got := DimensionEffects(rel); got != "" {
		t.Fatalf("expected empty effects for mid-range dimensions, got %q", got)
	}
}

func TestDimensionEffectsExtremes(t *testing.T) {
	rel := &types.Relationship{Trust: 0.8, Affection: 0.1, Respect: 0.2, Tension: 0.7}
	got := DimensionEffects(rel)
	if !strings.Contains(got, "trust them") {
		t.Fatalf("expected high-trust line, got %q", got)
	}
	if !strings.Contains(got, "not much fondness") {
		t.Fatalf("expected low-affection line, got %q", got)
	}
	if !strings.Contains(got, "respect") {
		t.Fatalf("expected low-respect line, got %q", got)
	}
	if !strings.Contains(got, "tension") {
		t.Fatalf("expected tension line, got %q", got)
	}
}

func TestCompactSummaryPerTier(t *testing.T) {
	summaries := map[behavior.Tier]string{}
	for _, tier := range []behavior.Tier{
		behavior.TierAdversarial,
		behavior.TierRival,
		behavior.TierNeutralNegative,
		behavior.TierAcquaintance,
		behavior.TierFriend,
		behavior.TierCloseFriend,
		behavior.TierDeeplyLoving,
	} {
		text := CompactSummary(&types.Relationship{Tier: string(tier)})
		if text == "" {
			t.Fatalf("expected summary for tier %s", tier)
		}
		summaries[tier] = text
	}
	if summaries[behavior.TierAdversarial] == summaries[behavior.TierDeeplyLoving] {
		t.Fatalf("expected tiers to read differently")
	}
}

func TestCompactSummaryAcquaintanceDependsOnFamiliarity(t *testing.T) {
	early := CompactSummary(&types.Relationship{Tier: string(behavior.TierAcquaintance)})
	settled := CompactSummary(&types.Relationship{
		Tier:             string(behavior.TierAcquaintance),
		InteractionCount: developingAfter,
	})
	if early == settled {
		t.Fatalf("expected familiarity to change the acquaintance summary")
	}
}
