package behavior

import "testing"

func TestEnergyClassificationTotality(t *testing.T) {
	for _, energy := range []float64{-1, -0.5, -0.0001, 0, 0.25, 0.5, 0.5001, 0.75, 1, 2, -3} {
		mood := MoodState{Energy: energy, Warmth: 0.5}
		low, high := mood.IsLowEnergy(), mood.IsHighEnergy()
		if low && high {
			t.Fatalf("energy %v classified both low and high", energy)
		}
		normal := !low && !high
		count := 0
		for _, hit := range []bool{low, normal, high} {
			if hit {
				count++
			}
		}
		if count != 1 {
			t.Fatalf("energy %v matched %d classes, expected exactly 1", energy, count)
		}
	}
}

func TestEnergyBoundariesAreNormal(t *testing.T) {
	for _, energy := range []float64{0, 0.5} {
		mood := MoodState{Energy: energy, Warmth: 0.5}
		if mood.IsLowEnergy() || mood.IsHighEnergy() {
			t.Fatalf("energy %v should be normal, got low=%v high=%v", energy, mood.IsLowEnergy(), mood.IsHighEnergy())
		}
	}
}

func TestWarmthClassificationTotality(t *testing.T) {
	for _, warmth := range []float64{0, 0.1, 0.3999, 0.4, 0.55, 0.7, 0.7001, 0.9, 1} {
		mood := MoodState{Energy: 0.2, Warmth: warmth}
		guarded, warm := mood.IsGuarded(), mood.IsWarm()
		if guarded && warm {
			t.Fatalf("warmth %v classified both guarded and warm", warmth)
		}
		neutral := !guarded && !warm
		count := 0
		for _, hit := range []bool{guarded, neutral, warm} {
			if hit {
				count++
			}
		}
		if count != 1 {
			t.Fatalf("warmth %v matched %d classes, expected exactly 1", warmth, count)
		}
	}
}

func TestWarmthBoundariesAreNeutral(t *testing.T) {
	for _, warmth := range []float64{0.4, 0.7} {
		mood := MoodState{Energy: 0.2, Warmth: warmth}
		if mood.IsGuarded() || mood.IsWarm() {
			t.Fatalf("warmth %v should be neutral, got guarded=%v warm=%v", warmth, mood.IsGuarded(), mood.IsWarm())
		}
	}
}

func TestKnobsAgreeWithClassifications(t *testing.T) {
	for _, energy := range []float64{-0.8, 0, 0.3, 0.5, 0.9} {
		for _, warmth := range []float64{0.1, 0.4, 0.6, 0.7, 0.95} {
			mood := MoodState{Energy: energy, Warmth: warmth}
			knobs := mood.Knobs()

			wantPatience := PatienceModerate
			if mood.IsLowEnergy() {
				wantPatience = PatienceQuick
			} else if mood.IsHighEnergy() {
				wantPatience = PatienceSlow
			}
			if knobs.PatienceDecay != wantPatience {
				t.Fatalf("energy %v: expected patience %s, got %s", energy, wantPatience, knobs.PatienceDecay)
			}

			wantWarmth := WarmthNeutral
			if mood.IsGuarded() {
				wantWarmth = WarmthGuarded
			} else if mood.IsWarm() {
				wantWarmth = WarmthOpen
			}
			if knobs.WarmthAvailability != wantWarmth {
				t.Fatalf("warmth %v: expected availability %s, got %s", warmth, wantWarmth, knobs.WarmthAvailability)
			}
		}
	}
}

func TestNormalizePatienceUnknownFallsBack(t *testing.T) {
	if got := NormalizePatience(PatienceDecay("explosive")); got != PatienceModerate {
		t.Fatalf("expected moderate for unknown patience, got %s", got)
	}
	if got := NormalizePatience(PatienceQuick); got != PatienceQuick {
		t.Fatalf("expected quick to pass through, got %s", got)
	}
}

func TestNormalizeWarmthUnknownFallsBack(t *testing.T) {
	if got := NormalizeWarmth(WarmthAvailability("molten")); got != WarmthNeutral {
		t.Fatalf("expected neutral for unknown warmth, got %s", got)
	}
	if got := NormalizeWarmth(WarmthGuarded); got != WarmthGuarded {
		t.Fatalf("expected guarded to pass through, got %s", got)
	}
}
