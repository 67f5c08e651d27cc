package memory

import (
	"context"
	"iter"
	"strings"
	"testing"

	"google.golang.org/adk/agent"
	"google.golang.org/adk/session"
	"google.golang.org/genai"

	"github.com/easeaico/project-iris/internal/behavior"
	"github.com/easeaico/project-iris/internal/types"
)

type fakeRunner struct {
	sessionService session.Service
	response       string
}

func (r *fakeRunner) Run(ctx context.Context, userID, sessionID string, msg *genai.Content, cfg agent.RunConfig) iter.Seq2[*session.Event, error] {
	return func(yield func(*session.Event, error) bool) {
		if _, err := r.sessionService.Get(ctx, &session.GetRequest{
			AppName:   momentSummarizerAppName,
			UserID:    userID,
			SessionID: sessionID,
		}); err != nil {
			yield(nil, err)
			return
		}

		event := session.NewEvent("summarizer-test")
		event.Author = "assistant"
		event.LLMResponse.Content = genai.NewContentFromText(r.response, "assistant")
		_ = yield(event, nil)
	}
}

func TestSummarizeCreatesSessionAndParsesOutput(t *testing.T) {
	sessionService := session.InMemoryService()
	summarizer := &momentSummarizer{
		runner:         &fakeRunner{sessionService: sessionService, response: `{"summary":"a late-night talk","facts":["they like the sea"],"commitments":["watch the sunrise together"],"feelings":["almost said too much"],"salience_score":3}`},
		sessionService: sessionService,
	}

	summary, err := summarizer.Summarize(context.Background(), "user: hi\nassistant: hello\n")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if summary.Summary != "a late-night talk" {
		t.Fatalf("expected parsed summary, got %q", summary.Summary)
	}
	if len(summary.Facts) != 1 || summary.Facts[0] != "they like the sea" {
		t.Fatalf("expected facts to be parsed, got %#v", summary.Facts)
	}
	if len(summary.Feelings) != 1 || summary.Feelings[0] != "almost said too much" {
		t.Fatalf("expected feelings to be parsed, got %#v", summary.Feelings)
	}
	if summary.SalienceScore != 1 {
		t.Fatalf("expected model salience clamped to 1, got %v", summary.SalienceScore)
	}
}

func TestSummarizeEmptyContentShortCircuits(t *testing.T) {
	sessionService := session.InMemoryService()
	summarizer := &momentSummarizer{
		runner:         &fakeRunner{sessionService: sessionService, response: `{"summary":"should not run"}`},
		sessionService: sessionService,
	}

	summary, err := summarizer.Summarize(context.Background(), "   ")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if summary.Summary != "" {
		t.Fatalf("expected empty summary for empty content, got %q", summary.Summary)
	}
}

func TestSummarizeStripsSurroundingProse(t *testing.T) {
	sessionService := session.InMemoryService()
	summarizer := &momentSummarizer{
		runner:         &fakeRunner{sessionService: sessionService, response: "Here you go:\n```json\n{\"summary\":\"clean\"}\n```"},
		sessionService: sessionService,
	}

	summary, err := summarizer.Summarize(context.Background(), "user: hi")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if summary.Summary != "clean" {
		t.Fatalf("expected JSON extracted from prose, got %q", summary.Summary)
	}
}

func TestComputeSalienceWeighsSignals(t *testing.T) {
	summary := types.MomentSummary{
		Summary:     "short",
		Facts:       []string{"one"},
		Commitments: []string{"promise"},
		Feelings:    []string{"shift"},
	}
	score := ComputeSalience(summary, nil)
	if score < 0.54 || score > 0.56 {
		t.Fatalf("expected score near 0.55, got %v", score)
	}
}

func TestComputeSalienceClampsToRange(t *testing.T) {
	summary := types.MomentSummary{
		Summary:     strings.Repeat("important ", 30),
		Facts:       []string{"a", "b", "c", "d"},
		Commitments: []string{"x", "y", "z"},
		Feelings:    []string{"e1", "e2", "e3"},
		TimeRange:   types.TimeRange{Start: "2026-01-01"},
	}
	score := ComputeSalience(summary, nil)
	if score != 1 {
		t.Fatalf("expected clamp to 1, got %v", score)
	}
}

func TestComputeSalienceMoodBoost(t *testing.T) {
	summary := types.MomentSummary{Summary: "short"}

	base := ComputeSalience(summary, nil)
	hard := ComputeSalience(summary, &behavior.MoodState{Energy: -0.5, Warmth: 0.5})
	bright := ComputeSalience(summary, &behavior.MoodState{Energy: 0.6, Warmth: 0.8})

	if hard <= bright || bright <= base {
		t.Fatalf("expected hard mood > bright mood > neutral, got %v / %v / %v", hard, bright, base)
	}
}

var _ Summarizer = (*momentSummarizer)(nil)
var _ summarizerRunner = (*fakeRunner)(nil)
