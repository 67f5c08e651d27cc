package memory

import (
	"context"
	"fmt"
	"strings"

	"github.com/easeaico/project-iris/internal/types"
)

// AlmostProvider surfaces stored almost-moments, the near-miss emotional
// beats, as relationship context.
type AlmostProvider struct {
	moments MomentRepo
	limit   int
}

// NewAlmostProvider creates an AlmostProvider.
func NewAlmostProvider(moments MomentRepo, limit int) *AlmostProvider {
	if limit <= 0 {
		limit = 3
	}
	return &AlmostProvider{
		moments: moments,
		limit:   limit,
	}
}

// AlmostMoments formats the most recent almost-moments as one block.
// Returns an empty string when there is no such history.
func (p *AlmostProvider) AlmostMoments(ctx context.Context, userID, appName string) (string, error) {
	if p == nil || p.moments == nil {
		return "", fmt.Errorf("almost provider not configured")
	}

	moments, err := p.moments.GetRecentMoments(ctx, userID, appName, types.MomentTypeAlmost, p.limit)
	if err != nil {
		return "", err
	}

	var lines []string
	for _, moment := range moments {
		summary := strings.TrimSpace(moment.Summary)
		if summary == "" {
			continue
		}
		lines = append(lines, "- "+summary)
	}
	if len(lines) == 0 {
		return "", nil
	}

	return "There is unspoken history between you, moments that almost became something:\n" + strings.Join(lines, "\n"), nil
}
