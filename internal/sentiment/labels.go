// Package sentiment classifies user turns and drifts the character's
// mood vector in response.
package sentiment

import "strings"

// Label is a per-turn sentiment classification of the user's message.
type Label string

const (
	LabelPositive Label = "Positive"
	LabelNegative Label = "Negative"
	LabelNeutral  Label = "Neutral"
	// LabelGenuine marks turns where the user is openly vulnerable or
	// emotionally sincere, not merely pleasant.
	LabelGenuine Label = "Genuine"
)

// ParseLabel normalizes raw classifier output into a Label. Unknown
// values fall back to Neutral.
func ParseLabel(raw string) Label {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "positive":
		return LabelPositive
	case "negative":
		return LabelNegative
	case "genuine":
		return LabelGenuine
	default:
		return LabelNeutral
	}
}

// ClampEnergy bounds energy to [-1, 1].
func ClampEnergy(value float64) float64 {
	switch {
	case value < -1:
		return -1
	case value > 1:
		return 1
	default:
		return value
	}
}

// ClampWarmth bounds warmth to [0, 1].
func ClampWarmth(value float64) float64 {
	switch {
	case value < 0:
		return 0
	case value > 1:
		return 1
	default:
		return value
	}
}
