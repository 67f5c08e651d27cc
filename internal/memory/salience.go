package memory

import (
	"unicode/utf8"

	"github.com/easeaico/project-iris/internal/behavior"
	"github.com/easeaico/project-iris/internal/types"
)

// ComputeSalience calculates a deterministic salience score in [0,1] from
// key summary signals and the optional current mood. Hard moods make
// moments stick harder.
func ComputeSalience(summary types.MomentSummary, mood *behavior.MoodState) float64 {
	score := 0.0

	if summary.Summary != "" {
		score += 0.10
	}

	factsCount := len(summary.Facts)
	if factsCount > 3 {
		factsCount = 3
	}
	score += float64(factsCount) * 0.15

	commitCount := len(summary.Commitments)
	if commitCount > 2 {
		commitCount = 2
	}
	score += float64(commitCount) * 0.20

	feelingsCount := len(summary.Feelings)
	if feelingsCount > 2 {
		feelingsCount = 2
	}
	score += float64(feelingsCount) * 0.10

	if summary.TimeRange.Start != "" || summary.TimeRange.End != "" {
		score += 0.05
	}

	summaryLen := utf8.RuneCountInString(summary.Summary)
	if summaryLen >= 200 {
		score += 0.10
	} else if summaryLen >= 100 {
		score += 0.05
	}

	if mood != nil {
		switch {
		case mood.IsLowEnergy() || mood.IsGuarded():
			score += 0.10
		case mood.IsHighEnergy() || mood.IsWarm():
			score += 0.05
		}
	}

	return normalizeSalience(score)
}

func normalizeSalience(score float64) float64 {
	if score != score || score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
