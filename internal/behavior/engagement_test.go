package behavior

import (
	"strings"
	"testing"
)

func TestEngagementToneGrid(t *testing.T) {
	checks := []struct {
		energy float64
		warmth float64
		tone   string
	}{
		{-0.5, 0.2, toneReserved},
		{-0.5, 0.6, toneChill},
		{0.8, 0.9, toneSparkly},
		{0.8, 0.5, toneLively},
		{0.2, 0.2, toneCool},
		{0.2, 0.5, toneBalanced},
	}
	for _, check := range checks {
		tone, _ := EngagementTone(MoodState{Energy: check.energy, Warmth: check.warmth})
		if tone != check.tone {
			t.Fatalf("energy %v warmth %v: expected tone %q, got %q", check.energy, check.warmth, check.tone, tone)
		}
	}
}

func TestDirectiveEvaluatedIndependently(t *testing.T) {
	// Low energy with warm warmth: tone takes the chill branch but the
	// directive still follows the low-energy rule.
	tone, directive := EngagementTone(MoodState{Energy: -0.3, Warmth: 0.9})
	if tone != toneChill {
		t.Fatalf("expected chill tone, got %q", tone)
	}
	if directive != directiveLetLead {
		t.Fatalf("expected let-them-lead directive, got %q", directive)
	}

	// Guarded with normal energy: cool tone, safe-topics directive.
	tone, directive = EngagementTone(MoodState{Energy: 0.2, Warmth: 0.1})
	if tone != toneCool {
		t.Fatalf("expected cool tone, got %q", tone)
	}
	if directive != directiveSafe {
		t.Fatalf("expected safe-topics directive, got %q", directive)
	}

	// Nothing fires: balanced tone, mirroring directive.
	tone, directive = EngagementTone(MoodState{Energy: 0.2, Warmth: 0.5})
	if tone != toneBalanced {
		t.Fatalf("expected balanced tone, got %q", tone)
	}
	if directive != directiveMirror {
		t.Fatalf("expected mirroring directive, got %q", directive)
	}
}

func TestLowEnergyGuardedExample(t *testing.T) {
	tone, directive := EngagementTone(MoodState{Energy: -0.5, Warmth: 0.2})
	if tone != "reserved, low-effort, reactive" {
		t.Fatalf("expected reserved tone, got %q", tone)
	}
	if directive != directiveLetLead {
		t.Fatalf("expected the low-energy directive before the guarded one, got %q", directive)
	}
}

func TestGenuineMomentOverridesEveryGridCell(t *testing.T) {
	energies := []float64{-0.8, -0.2, 0, 0.3, 0.5, 0.9}
	warmths := []float64{0.1, 0.5, 0.75, 1}
	for _, energy := range energies {
		for _, warmth := range warmths {
			tone, directive := EngagementTone(MoodState{Energy: energy, Warmth: warmth, GenuineMoment: true})
			if tone != toneGenuine {
				t.Fatalf("energy %v warmth %v: genuine moment did not override tone, got %q", energy, warmth, tone)
			}
			if directive != directiveUnmask {
				t.Fatalf("energy %v warmth %v: genuine moment did not override directive, got %q", energy, warmth, directive)
			}
		}
	}
}

func TestBuildEngagementSectionCarriesFixedGuidance(t *testing.T) {
	got := BuildEngagementSection(Input{Mood: MoodState{Energy: 0.2, Warmth: 0.5}})
	if !strings.Contains(got, "Never interview") {
		t.Fatalf("expected anti-interviewer rule, got %q", got)
	}
	if !strings.Contains(got, "Curiosity scales with the relationship") {
		t.Fatalf("expected relationship-context note, got %q", got)
	}
	if !strings.Contains(got, toneBalanced) {
		t.Fatalf("expected balanced tone in section, got %q", got)
	}
}
