package sentiment

// StateMachine drifts the mood vector turn by turn.
type StateMachine struct{}

const (
	positiveEnergyDelta = 0.10
	positiveWarmthDelta = 0.05
	genuineWarmthDelta  = 0.10
	negativeEnergyDelta = -0.20
	negativeWarmthDelta = -0.10
	// neutralRecovery pulls energy back toward zero on neutral turns.
	neutralRecovery = 0.05
	// streakThreshold is the run length at which repeated signals compound.
	streakThreshold  = 2
	streakMultiplier = 1.5
)

// State is the drifting mood vector plus streak bookkeeping.
type State struct {
	Energy        float64
	Warmth        float64
	LastSentiment string
	Streak        int
}

// NewStateMachine returns a StateMachine.
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// Update returns the next mood state after one classified turn. A
// sustained run of the same label moves the vector faster; negative
// signals cut deeper than positive ones lift.
func (s *StateMachine) Update(state State, label Label) State {
	streak := 1
	if state.LastSentiment == string(label) {
		streak = state.Streak + 1
	}

	multiplier := 1.0
	if streak >= streakThreshold {
		multiplier = streakMultiplier
	}

	switch label {
	case LabelPositive:
		state.Energy += positiveEnergyDelta * multiplier
		state.Warmth += positiveWarmthDelta * multiplier
	case LabelGenuine:
		state.Energy += positiveEnergyDelta * multiplier
		state.Warmth += genuineWarmthDelta * multiplier
	case LabelNegative:
		state.Energy += negativeEnergyDelta * multiplier
		state.Warmth += negativeWarmthDelta * multiplier
	case LabelNeutral:
		state.Energy = driftToward(state.Energy, 0, neutralRecovery)
	}

	state.Energy = ClampEnergy(state.Energy)
	state.Warmth = ClampWarmth(state.Warmth)
	state.LastSentiment = string(label)
	state.Streak = streak
	return state
}

// driftToward moves value toward target by at most step.
func driftToward(value, target, step float64) float64 {
	switch {
	case value > target+step:
		return value - step
	case value < target-step:
		return value + step
	default:
		return target
	}
}
