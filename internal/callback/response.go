package callback

import (
	"log/slog"
	"strings"

	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/model"
	"google.golang.org/genai"

	"github.com/easeaico/project-iris/internal/sentiment"
	"github.com/easeaico/project-iris/internal/utils"
)

// NewResponseCallback parses structured JSON output, feeds the sentiment
// label into the mood pipeline, and rewrites the reply content so the user
// only sees the reply field. When the model skipped the JSON contract, the
// user turn is classified directly through the analyzer instead.
func NewResponseCallback(sentiments *sentiment.Service, analyzer *sentiment.Analyzer) llmagent.AfterModelCallback {
	return func(ctx agent.CallbackContext, resp *model.LLMResponse, err error) (*model.LLMResponse, error) {
		if err != nil {
			return nil, err
		}
		if resp == nil || resp.Content == nil {
			return nil, nil
		}
		if resp.Partial {
			return nil, nil
		}

		text := strings.TrimSpace(utils.ExtractContentText(resp.Content))
		if text == "" {
			return nil, nil
		}

		parsed, parseErr := utils.ParseCompanionOutput(text)
		if parseErr != nil {
			slog.Warn("failed to parse companion output", "error", parseErr.Error())
			if label, ok := analyzeUserTurn(ctx, analyzer); ok {
				applyLabel(ctx, sentiments, label)
			}
			return nil, nil
		}

		applyLabel(ctx, sentiments, sentiment.ParseLabel(parsed.Sentiment))

		resp.Content = genai.NewContentFromText(parsed.Reply, "assistant")
		return resp, nil
	}
}

func applyLabel(ctx agent.CallbackContext, sentiments *sentiment.Service, label sentiment.Label) {
	if sentiments != nil {
		if err := sentiments.UpdateFromLabel(ctx, label); err != nil {
			slog.Error("failed to update mood state", "error", err.Error())
		}
	}

	if label != sentiment.LabelGenuine {
		return
	}
	state := ctx.State()
	if state == nil {
		return
	}
	// Picked up by the next turn's behavior instruction.
	if err := state.Set("GenuineMoment", true); err != nil {
		slog.Warn("failed to set GenuineMoment", "error", err.Error())
	}
}

func analyzeUserTurn(ctx agent.CallbackContext, analyzer *sentiment.Analyzer) (sentiment.Label, bool) {
	if analyzer == nil {
		return sentiment.LabelNeutral, false
	}
	userText := strings.TrimSpace(utils.ExtractContentText(ctx.UserContent()))
	if userText == "" {
		return sentiment.LabelNeutral, false
	}
	label, err := analyzer.Analyze(ctx, userText)
	if err != nil {
		slog.Warn("failed to analyze user sentiment", "error", err.Error())
		return sentiment.LabelNeutral, false
	}
	return label, true
}
