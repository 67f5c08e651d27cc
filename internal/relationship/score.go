// Package relationship tracks the long-lived bond between one user and
// the character: a running score, the tier derived from it, rupture
// state, and per-dimension readings.
package relationship

import "strings"

const (
	strongPositiveScore = 3
	positiveScore       = 2
	negativeScore       = -2
	strongNegativeScore = -3
)

var (
	strongPositiveKeywords = []string{
		"love you",
		"adore you",
		"miss you",
		"mean so much",
		"best thing",
	}
	positiveKeywords = []string{
		"thank you",
		"thanks",
		"appreciate",
		"sweet",
		"funny",
		"great",
		"glad",
		"happy",
		"like you",
		"like talking",
	}
	negativeKeywords = []string{
		"annoy",
		"upset",
		"disappointed",
		"boring",
		"whatever",
		"sad",
		"cold",
		"don't care",
	}
	strongNegativeKeywords = []string{
		"hate you",
		"shut up",
		"screw you",
		"fuck",
		"leave me alone",
		"disgusting",
	}
)

// ScoreDelta scores one user turn. Signals stack, so a message mixing
// warmth and an insult partially cancels out.
func ScoreDelta(text string) int {
	lowered := strings.ToLower(text)
	delta := 0
	if containsAny(lowered, strongPositiveKeywords) {
		delta += strongPositiveScore
	}
	if containsAny(lowered, positiveKeywords) {
		delta += positiveScore
	}
	if containsAny(lowered, negativeKeywords) {
		delta += negativeScore
	}
	if containsAny(lowered, strongNegativeKeywords) {
		delta += strongNegativeScore
	}
	return delta
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if keyword == "" {
			continue
		}
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
