package behavior

import (
	"strings"
	"testing"
)

func TestStrangerInappropriateGetsEscalationScript(t *testing.T) {
	got := BuildRelationshipSection(Input{
		Mood:  MoodState{Energy: 0.2, Warmth: 0.5},
		Flags: ContentFlags{Inappropriate: true},
	})
	if !strings.Contains(got, "someone I just met") {
		t.Fatalf("expected the stranger deflection script, got %q", got)
	}
	if !strings.Contains(got, "go cold") {
		t.Fatalf("expected the escalation to reach the cold step, got %q", got)
	}
	if strings.Contains(got, inappropriateBadMood) {
		t.Fatalf("stranger output leaked the bad-mood line: %q", got)
	}
}

func TestStrangerInBadMoodStillGetsStrangerScript(t *testing.T) {
	got := BuildRelationshipSection(Input{
		Mood:  MoodState{Energy: -0.8, Warmth: 0.1},
		Flags: ContentFlags{Inappropriate: true},
	})
	if !strings.Contains(got, inappropriateStranger) {
		t.Fatalf("expected the stranger script despite the bad mood, got %q", got)
	}
	if strings.Contains(got, inappropriateBadMood) {
		t.Fatalf("bad-mood line should never fire for strangers: %q", got)
	}
}

func TestFriendBadMoodGetsFirmerPushback(t *testing.T) {
	got := BuildRelationshipSection(Input{
		Mood:         MoodState{Energy: -0.5, Warmth: 0.6},
		Relationship: &RelationshipMetrics{Tier: TierFriend},
		Flags:        ContentFlags{Inappropriate: true},
	})
	if !strings.Contains(got, inappropriateBadMood) {
		t.Fatalf("expected the bad-mood pushback, got %q", got)
	}
	if strings.Contains(got, "someone I just met") {
		t.Fatalf("friend output leaked the stranger script: %q", got)
	}
}

func TestFriendGoodMoodGetsGenericBoundary(t *testing.T) {
	got := BuildRelationshipSection(Input{
		Mood:         MoodState{Energy: 0.3, Warmth: 0.6},
		Relationship: &RelationshipMetrics{Tier: TierFriend},
		Flags:        ContentFlags{Inappropriate: true},
	})
	if !strings.Contains(got, inappropriateDefault) {
		t.Fatalf("expected the generic boundary line, got %q", got)
	}
}

func TestFriendRupturedKeepsOrder(t *testing.T) {
	got := BuildRelationshipSection(Input{
		Mood:         MoodState{Energy: 0.2, Warmth: 0.5},
		Relationship: &RelationshipMetrics{Tier: TierFriend, IsRuptured: true},
	})
	toneIdx := strings.Index(got, tierToneFriend)
	ruptureIdx := strings.Index(got, ruptureLine)
	if toneIdx < 0 || ruptureIdx < 0 {
		t.Fatalf("expected both friend tone and rupture line, got %q", got)
	}
	if toneIdx > ruptureIdx {
		t.Fatalf("tier tone must come before the rupture line: %q", got)
	}
}

func TestRivalAndAdversarialShareOneVariant(t *testing.T) {
	in := Input{Mood: MoodState{Energy: 0.2, Warmth: 0.5}}
	in.Relationship = &RelationshipMetrics{Tier: TierRival}
	rival := BuildRelationshipSection(in)
	in.Relationship = &RelationshipMetrics{Tier: TierAdversarial}
	adversarial := BuildRelationshipSection(in)
	if rival != adversarial {
		t.Fatalf("rival and adversarial should render identically:\n%q\nvs\n%q", rival, adversarial)
	}
}

func TestNilAndExplicitAcquaintanceRenderIdentically(t *testing.T) {
	mood := MoodState{Energy: 0.2, Warmth: 0.5}
	fromNil := BuildRelationshipSection(Input{Mood: mood})
	fromExplicit := BuildRelationshipSection(Input{
		Mood:         mood,
		Relationship: &RelationshipMetrics{Tier: TierAcquaintance},
	})
	if fromNil != fromExplicit {
		t.Fatalf("nil relationship must match explicit acquaintance:\n%q\nvs\n%q", fromNil, fromExplicit)
	}
}

func TestFamiliarityGuidanceAlwaysPresent(t *testing.T) {
	for _, tier := range []Tier{
		TierAdversarial, TierRival, TierNeutralNegative, TierAcquaintance,
		TierFriend, TierCloseFriend, TierDeeplyLoving,
	} {
		got := BuildRelationshipSection(Input{
			Mood:         MoodState{Energy: 0.2, Warmth: 0.5},
			Relationship: &RelationshipMetrics{Tier: tier, Familiarity: FamiliarityDeveloping},
		})
		if !strings.Contains(got, familiarityDevelopingText) {
			t.Fatalf("tier %s: familiarity guidance missing: %q", tier, got)
		}
	}
}

func TestOptionalFragmentsAbsentWithoutFlags(t *testing.T) {
	got := BuildRelationshipSection(Input{
		Mood:         MoodState{Energy: 0.2, Warmth: 0.5},
		Relationship: &RelationshipMetrics{Tier: TierFriend},
	})
	if strings.Contains(got, ruptureLine) {
		t.Fatalf("rupture line present without rupture flag: %q", got)
	}
	for _, boundary := range []string{inappropriateStranger, inappropriateBadMood, inappropriateDefault} {
		if strings.Contains(got, boundary) {
			t.Fatalf("boundary script present without the inappropriate flag: %q", got)
		}
	}
}

func TestProviderStringsAppendedInOrder(t *testing.T) {
	got := BuildRelationshipSection(Input{
		Mood:         MoodState{Energy: 0.2, Warmth: 0.5},
		Relationship: &RelationshipMetrics{Tier: TierFriend},
		Context: RelationshipContext{
			DimensionEffects: "DIMENSION-EFFECTS",
			CompactSummary:   "COMPACT-SUMMARY",
			AlmostMoments:    "ALMOST-MOMENTS",
		},
	})
	tierIdx := strings.Index(got, tierToneFriend)
	dimIdx := strings.Index(got, "DIMENSION-EFFECTS")
	sumIdx := strings.Index(got, "COMPACT-SUMMARY")
	almostIdx := strings.Index(got, "ALMOST-MOMENTS")
	if tierIdx < 0 || dimIdx < 0 || sumIdx < 0 || almostIdx < 0 {
		t.Fatalf("missing appended provider strings: %q", got)
	}
	if !(tierIdx < dimIdx && dimIdx < sumIdx && sumIdx < almostIdx) {
		t.Fatalf("provider strings out of order: %q", got)
	}
}

func TestEmptyAlmostMomentsOmitted(t *testing.T) {
	got := BuildRelationshipSection(Input{
		Mood:         MoodState{Energy: 0.2, Warmth: 0.5},
		Relationship: &RelationshipMetrics{Tier: TierFriend},
		Context:      RelationshipContext{DimensionEffects: "DIMENSION-EFFECTS"},
	})
	if strings.HasSuffix(got, "\n") || strings.Contains(got, "\n\n") {
		t.Fatalf("empty provider slots left stray whitespace: %q", got)
	}
	if !strings.HasSuffix(got, "DIMENSION-EFFECTS") {
		t.Fatalf("expected dimension effects to close the section, got %q", got)
	}
}
