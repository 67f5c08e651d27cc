package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"iter"
	"strings"
	"sync/atomic"

	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/model"
	"google.golang.org/adk/runner"
	"google.golang.org/adk/session"
	"google.golang.org/genai"

	"github.com/easeaico/project-iris/internal/types"
)

// Summarizer compresses a chat window into a structured moment summary.
type Summarizer interface {
	Summarize(ctx context.Context, content string) (types.MomentSummary, error)
}

const (
	momentSummarizerAppName = "project_iris_memory"
	momentSummarizerUserID  = "moment_summarizer"
)

// momentSummaryInstruction requires the model to return schema-shaped JSON only.
const momentSummaryInstruction = `You are a professional dialogue memory summarizer.
Your task is to compress the conversation history into a concise summary while preserving the most important information.

Extract and retain:
1. Key events and important decisions
2. Emotional shifts, near-miss intimate beats, and moments of real vulnerability
3. User-revealed personal info (preferences, habits, important dates, etc.)
4. Promises or agreements made by either party
5. The overall emotional tone

Output requirements:
- Use third-person narration
- Organize chronologically
- Keep the summary within 120-180 words
- Put emotional shifts and near-miss beats into the feelings list
- Return a valid JSON object that matches the output schema
- Do not include any extra keys or text outside the JSON object`

// momentSummarizer generates summaries with an isolated ADK agent.
type momentSummarizer struct {
	agent          agent.Agent
	runner         summarizerRunner
	sessionService session.Service
	counter        uint64
}

type summarizerRunner interface {
	Run(ctx context.Context, userID, sessionID string, msg *genai.Content, cfg agent.RunConfig) iter.Seq2[*session.Event, error]
}

// NewMomentSummarizer builds a Summarizer backed by an ADK llmagent.
func NewMomentSummarizer(ctx context.Context, llm model.LLM) (Summarizer, error) {
	if llm == nil {
		return nil, fmt.Errorf("llm model is required")
	}

	llmAgent, err := llmagent.New(llmagent.Config{
		Name:            "moment_summarizer",
		Description:     "Summarizes chat windows into structured moments",
		Model:           llm,
		Instruction:     momentSummaryInstruction,
		OutputSchema:    summaryOutputSchema(),
		IncludeContents: llmagent.IncludeContentsNone,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create moment summarizer agent: %w", err)
	}

	sessionService := session.InMemoryService()
	r, err := runner.New(runner.Config{
		AppName:        momentSummarizerAppName,
		Agent:          llmAgent,
		SessionService: sessionService,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create moment summarizer runner: %w", err)
	}

	return &momentSummarizer{
		agent:          llmAgent,
		runner:         r,
		sessionService: sessionService,
	}, nil
}

// Summarize returns a structured summary of the window content.
func (s *momentSummarizer) Summarize(ctx context.Context, content string) (types.MomentSummary, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return types.MomentSummary{}, nil
	}

	summarySessID := fmt.Sprintf("summary-%d", atomic.AddUint64(&s.counter, 1))
	if _, err := s.sessionService.Create(ctx, &session.CreateRequest{
		AppName:   momentSummarizerAppName,
		UserID:    momentSummarizerUserID,
		SessionID: summarySessID,
	}); err != nil {
		if _, getErr := s.sessionService.Get(ctx, &session.GetRequest{
			AppName:   momentSummarizerAppName,
			UserID:    momentSummarizerUserID,
			SessionID: summarySessID,
		}); getErr != nil {
			return types.MomentSummary{}, fmt.Errorf("failed to create summarizer session: %w", err)
		}
	}

	msg := genai.NewContentFromText(trimmed, "user")
	events := s.runner.Run(ctx, momentSummarizerUserID, summarySessID, msg, agent.RunConfig{
		StreamingMode: agent.StreamingModeNone,
	})

	var last string
	for event, err := range events {
		if err != nil {
			return types.MomentSummary{}, err
		}
		if event == nil || event.Content == nil {
			continue
		}
		if event.Author == "user" {
			continue
		}
		text := strings.TrimSpace(eventText(event))
		if text == "" {
			continue
		}
		last = text
		if event.IsFinalResponse() {
			break
		}
	}
	if last == "" {
		return types.MomentSummary{}, fmt.Errorf("empty summary response")
	}

	summary, err := parseSummaryJSON(last)
	if err != nil {
		return types.MomentSummary{}, err
	}
	summary.SalienceScore = normalizeSalience(summary.SalienceScore)
	return summary, nil
}

func summaryOutputSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"summary": {
				Type: genai.TypeString,
			},
			"facts": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
			"commitments": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
			"feelings": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
			"time_range": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"start": {Type: genai.TypeString},
					"end":   {Type: genai.TypeString},
				},
			},
			"salience_score": {
				Type: genai.TypeNumber,
			},
		},
		Required: []string{"summary"},
	}
}

// parseSummaryJSON extracts JSON from model output and decodes it.
func parseSummaryJSON(raw string) (types.MomentSummary, error) {
	clean := strings.TrimSpace(raw)
	start := strings.Index(clean, "{")
	end := strings.LastIndex(clean, "}")
	if start >= 0 && end > start {
		clean = clean[start : end+1]
	}
	var summary types.MomentSummary
	if err := json.Unmarshal([]byte(clean), &summary); err != nil {
		return types.MomentSummary{}, fmt.Errorf("failed to parse summary json: %w", err)
	}
	return summary, nil
}
