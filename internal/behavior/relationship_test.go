package behavior

import "testing"

func TestParseTierRecognizesAllSeven(t *testing.T) {
	for _, tier := range []Tier{
		TierAdversarial, TierRival, TierNeutralNegative, TierAcquaintance,
		TierFriend, TierCloseFriend, TierDeeplyLoving,
	} {
		if got := ParseTier(string(tier)); got != tier {
			t.Fatalf("expected %s to parse to itself, got %s", tier, got)
		}
	}
}

func TestParseTierUnknownFallsBackToAcquaintance(t *testing.T) {
	for _, raw := range []string{"", "soulmate", "FRIEND ", " Close_Friend", "nemesis", "42"} {
		got := ParseTier(raw)
		want := TierAcquaintance
		switch raw {
		case "FRIEND ":
			want = TierFriend
		case " Close_Friend":
			want = TierCloseFriend
		}
		if got != want {
			t.Fatalf("ParseTier(%q): expected %s, got %s", raw, want, got)
		}
	}
}

func TestResolveNilIsStranger(t *testing.T) {
	resolved := Resolve(nil)
	if resolved != Stranger() {
		t.Fatalf("expected nil to resolve to the stranger default, got %#v", resolved)
	}
	if resolved.Tier != TierAcquaintance {
		t.Fatalf("expected stranger tier acquaintance, got %s", resolved.Tier)
	}
	if resolved.Familiarity != FamiliarityEarly {
		t.Fatalf("expected stranger familiarity early, got %s", resolved.Familiarity)
	}
}

func TestResolveNormalizesUnknownValues(t *testing.T) {
	resolved := Resolve(&RelationshipMetrics{Tier: Tier("bestie"), Familiarity: FamiliarityStage("ancient")})
	if resolved.Tier != TierAcquaintance {
		t.Fatalf("expected unknown tier to resolve to acquaintance, got %s", resolved.Tier)
	}
	if resolved.Familiarity != FamiliarityEarly {
		t.Fatalf("expected unknown stage to resolve to early, got %s", resolved.Familiarity)
	}
}

func TestResolveKeepsExplicitValues(t *testing.T) {
	metrics := &RelationshipMetrics{
		Tier:        TierCloseFriend,
		IsRuptured:  true,
		Familiarity: FamiliarityEstablished,
		Dimensions:  DimensionScores{Trust: 0.9, Affection: 0.8},
	}
	resolved := Resolve(metrics)
	if resolved != *metrics {
		t.Fatalf("expected explicit metrics to pass through, got %#v", resolved)
	}
}
