package memory

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	adkmemory "google.golang.org/adk/memory"
	"google.golang.org/adk/session"
	"google.golang.org/genai"

	"github.com/easeaico/project-iris/internal/behavior"
	"github.com/easeaico/project-iris/internal/types"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

const (
	defaultTopK       = 5
	defaultThreshold  = 0.7
	defaultWindowSize = 50
	// almostSalienceThreshold gates when a summarized window also leaves
	// an almost-moment behind.
	almostSalienceThreshold = 0.8
)

// MomentRepo persists and searches stored moments.
type MomentRepo interface {
	AddMoment(ctx context.Context, moment types.Moment) error
	GetRecentMoments(ctx context.Context, userID, appName, momentType string, limit int) ([]types.Moment, error)
	SearchSimilar(ctx context.Context, userID, appName, momentType string, embedding []float32, topK int, threshold float64) ([]types.RetrievedMoment, error)
}

// ChatWindowRepo persists rolling chat windows awaiting summarization.
type ChatWindowRepo interface {
	GetLatestWindow(ctx context.Context, userID, appName string) (*types.ChatHistory, error)
	CreateWindow(ctx context.Context, window types.ChatHistory) error
	AppendToWindow(ctx context.Context, id int, content string, turnCount int) error
	MarkSummarized(ctx context.Context, id int) error
	GetRecent(ctx context.Context, userID, appName string, limit int) ([]types.ChatHistory, error)
}

// MoodStateProvider reads the character's current mood vector, used to
// weight salience when a window is summarized.
type MoodStateProvider interface {
	GetMoodState(ctx context.Context, userID, appName string) (behavior.MoodState, error)
}

// Service implements ADK memory.Service on top of windowed summarization:
// turns accumulate in a chat window, full windows are summarized into
// moments, and Search retrieves moments by embedding similarity.
type service struct {
	embedder            Embedder
	moments             MomentRepo
	windows             ChatWindowRepo
	summarizer          Summarizer
	mood                MoodStateProvider
	topK                int
	similarityThreshold float64
	windowSize          int
}

// NewService returns a memory service. summarizer and mood may be nil;
// windows then accumulate without ever being summarized.
func NewService(embedder Embedder, moments MomentRepo, windows ChatWindowRepo, summarizer Summarizer, mood MoodStateProvider, topK int, threshold float64, windowSize int) adkmemory.Service {
	if topK <= 0 {
		topK = defaultTopK
	}
	if threshold <= 0 {
		threshold = defaultThreshold
	}
	if windowSize <= 0 {
		windowSize = defaultWindowSize
	}
	return &service{
		embedder:            embedder,
		moments:             moments,
		windows:             windows,
		summarizer:          summarizer,
		mood:                mood,
		topK:                topK,
		similarityThreshold: threshold,
		windowSize:          windowSize,
	}
}

// AddSession appends the session's newest exchange to the rolling window,
// and summarizes the window into a moment once it is full.
func (s *service) AddSession(ctx context.Context, sess session.Session) error {
	exchange := latestExchange(sess)
	if exchange == "" {
		return nil
	}

	userID := sess.UserID()
	appName := sess.AppName()

	window, err := s.windows.GetLatestWindow(ctx, userID, appName)
	if err != nil {
		return err
	}

	if window == nil {
		return s.windows.CreateWindow(ctx, types.ChatHistory{
			UserID:    userID,
			AppName:   appName,
			Content:   exchange,
			TurnCount: 1,
		})
	}

	content := window.Content + "\n" + exchange
	turnCount := window.TurnCount + 1
	if err := s.windows.AppendToWindow(ctx, window.ID, content, turnCount); err != nil {
		return err
	}

	if turnCount < s.windowSize || s.summarizer == nil {
		return nil
	}
	return s.summarizeWindow(ctx, userID, appName, window.ID, content)
}

// summarizeWindow compresses one full window into a stored moment and
// marks the window summarized.
func (s *service) summarizeWindow(ctx context.Context, userID, appName string, windowID int, content string) error {
	summary, err := s.summarizer.Summarize(ctx, content)
	if err != nil {
		return fmt.Errorf("failed to summarize window: %w", err)
	}
	if strings.TrimSpace(summary.Summary) == "" {
		return fmt.Errorf("empty window summary")
	}

	var mood *behavior.MoodState
	if s.mood != nil {
		state, moodErr := s.mood.GetMoodState(ctx, userID, appName)
		if moodErr != nil {
			slog.Warn("failed to load mood state for salience", "error", moodErr.Error(), "user_id", userID, "app_name", appName)
		} else {
			mood = &state
		}
	}
	salience := ComputeSalience(summary, mood)

	embedding, err := s.embedder.EmbedDocument(ctx, buildEmbeddingText(summary.Summary, summary.Facts, summary.Commitments))
	if err != nil {
		return err
	}

	if err := s.moments.AddMoment(ctx, types.Moment{
		UserID:      userID,
		AppName:     appName,
		Type:        types.MomentTypeChat,
		Summary:     summary.Summary,
		Facts:       summary.Facts,
		Commitments: summary.Commitments,
		Feelings:    summary.Feelings,
		TimeRange:   summary.TimeRange,
		Salience:    salience,
		Embedding:   embedding,
	}); err != nil {
		return err
	}

	if err := s.windows.MarkSummarized(ctx, windowID); err != nil {
		return err
	}

	// High-salience windows with emotional shifts also leave an
	// almost-moment for later relationship context.
	if salience >= almostSalienceThreshold && len(summary.Feelings) > 0 {
		if err := s.moments.AddMoment(ctx, types.Moment{
			UserID:   userID,
			AppName:  appName,
			Type:     types.MomentTypeAlmost,
			Summary:  strings.Join(summary.Feelings, "; "),
			Salience: salience,
		}); err != nil {
			slog.Warn("failed to store almost-moment", "error", err.Error(), "user_id", userID)
		}
	}
	return nil
}

// Search embeds the query and returns the closest stored moments.
func (s *service) Search(ctx context.Context, req *adkmemory.SearchRequest) (*adkmemory.SearchResponse, error) {
	if req == nil || req.Query == "" {
		return &adkmemory.SearchResponse{Memories: nil}, nil
	}

	vec, err := s.embedder.EmbedQuery(ctx, req.Query)
	if err != nil {
		return nil, err
	}

	moments, err := s.moments.SearchSimilar(ctx, req.UserID, req.AppName, types.MomentTypeChat, vec, s.topK, s.similarityThreshold)
	if err != nil {
		return nil, err
	}
	return &adkmemory.SearchResponse{Memories: ToMomentEntries(moments)}, nil
}

// ToMomentEntries converts retrieved moments into ADK memory entries.
func ToMomentEntries(moments []types.RetrievedMoment) []adkmemory.Entry {
	if len(moments) == 0 {
		return nil
	}
	results := make([]adkmemory.Entry, 0, len(moments))
	for _, m := range moments {
		results = append(results, adkmemory.Entry{
			Content:   genai.NewContentFromText(m.Content, genai.Role(m.Role)),
			Author:    m.Role,
			Timestamp: m.CreatedAt,
		})
	}
	return results
}

// latestExchange formats the newest user turn and everything after it,
// one line per event.
func latestExchange(sess session.Session) string {
	events := sess.Events()
	if events == nil || events.Len() == 0 {
		return ""
	}

	start := events.Len() - 1
	for i := events.Len() - 1; i >= 0; i-- {
		start = i
		if roleOf(events.At(i)) == RoleUser {
			break
		}
	}

	var lines []string
	for i := start; i < events.Len(); i++ {
		event := events.At(i)
		text := strings.TrimSpace(eventText(event))
		if text == "" {
			continue
		}
		lines = append(lines, formatMessage(roleOf(event), text))
	}
	return strings.Join(lines, "\n")
}

func roleOf(event *session.Event) string {
	if event == nil || event.Content == nil {
		return RoleAssistant
	}
	if event.Content.Role == RoleUser || event.Author == RoleUser {
		return RoleUser
	}
	return RoleAssistant
}

func eventText(event *session.Event) string {
	if event == nil || event.Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range event.Content.Parts {
		if part != nil && part.Text != "" {
			sb.WriteString(part.Text)
		}
	}
	return sb.String()
}

func formatMessage(role, text string) string {
	return fmt.Sprintf("%s: %s", role, text)
}

// buildEmbeddingText concatenates the high-value summary fields for
// vector retrieval.
func buildEmbeddingText(summary string, facts, commitments []string) string {
	var sb strings.Builder
	sb.WriteString(summary)
	appendList := func(title string, items []string) {
		if len(items) == 0 {
			return
		}
		sb.WriteString("\n")
		sb.WriteString(title)
		sb.WriteString(": ")
		for i, item := range items {
			if i > 0 {
				sb.WriteString(" ; ")
			}
			sb.WriteString(item)
		}
	}
	appendList("facts", facts)
	appendList("commitments", commitments)
	return sb.String()
}
