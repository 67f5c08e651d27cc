package sentiment

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/adk/model"
	"google.golang.org/genai"
)

// Analyzer classifies conversation sentiment with a standalone model call.
// The main chat path embeds the label in structured output instead; this
// is the fallback for plain-text replies.
type Analyzer struct {
	model model.LLM
}

// NewAnalyzer returns an Analyzer.
func NewAnalyzer(m model.LLM) *Analyzer {
	return &Analyzer{model: m}
}

const analyzerInstruction = `You are a sentiment classifier for a one-on-one chat.
Return exactly one of these labels and nothing else: Positive, Negative, Neutral, Genuine.
Use Genuine only when the user is openly vulnerable or emotionally sincere, not merely friendly.`

// Analyze returns the sentiment label for text.
func (a *Analyzer) Analyze(ctx context.Context, text string) (Label, error) {
	if a == nil || a.model == nil {
		return LabelNeutral, fmt.Errorf("sentiment analyzer not configured")
	}

	if strings.TrimSpace(text) == "" {
		return LabelNeutral, nil
	}

	req := &model.LLMRequest{
		Contents: []*genai.Content{
			genai.NewContentFromText(analyzerInstruction, "system"),
			genai.NewContentFromText(text, "user"),
		},
	}

	seq := a.model.GenerateContent(ctx, req, false)
	var resp *model.LLMResponse
	var err error
	seq(func(r *model.LLMResponse, e error) bool {
		resp = r
		err = e
		return false
	})
	if err != nil {
		return LabelNeutral, err
	}

	return ParseLabel(extractLabel(resp)), nil
}

func extractLabel(resp *model.LLMResponse) string {
	if resp == nil || resp.Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Content.Parts {
		if part != nil && part.Text != "" {
			sb.WriteString(part.Text)
		}
	}
	return sb.String()
}
