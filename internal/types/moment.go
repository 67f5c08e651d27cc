package types

import "time"

const (
	// MomentTypeChat is a summarized chat window.
	MomentTypeChat = "chat"
	// MomentTypePersona stores persona-defining moments.
	MomentTypePersona = "persona"
	// MomentTypeFacts stores extracted facts or preferences.
	MomentTypeFacts = "facts"
	// MomentTypeEvents stores notable events.
	MomentTypeEvents = "events"
	// MomentTypeAlmost stores near-miss emotional beats, surfaced later
	// as almost-moments context.
	MomentTypeAlmost = "almost"
)

// Moment is a stored shared-history record, designed for retrieval and
// summarization.
type Moment struct {
	ID      int    `json:"id"`
	UserID  string `json:"user_id"`
	AppName string `json:"app_name"`
	Type    string `json:"type"`
	// Summary stores the final summarized text used as the moment body.
	Summary string `json:"summary"`
	// Facts captures durable facts or preferences extracted from the window.
	Facts []string `json:"facts"`
	// Commitments captures promises, plans, or agreements.
	Commitments []string `json:"commitments"`
	// Feelings captures relationship or emotional shifts.
	Feelings []string `json:"feelings"`
	// TimeRange describes the period covered by the window.
	TimeRange TimeRange `json:"time_range"`
	// Salience is a 0-1 score indicating moment importance.
	Salience  float64   `json:"salience_score"`
	Embedding []float32 `json:"-"` // embedding vectors, not serialized
	CreatedAt time.Time `json:"created_at"`
}

// ChatHistory is a bundled chat window stored separately from moments.
type ChatHistory struct {
	ID         int       `json:"id"`
	UserID     string    `json:"user_id"`
	AppName    string    `json:"app_name"`
	Content    string    `json:"content"`
	TurnCount  int       `json:"turn_count"`
	Summarized bool      `json:"summarized"`
	CreatedAt  time.Time `json:"created_at"`
}

// TimeRange describes the covered period of a moment window.
type TimeRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// MomentSummary is the structured output of the summarizer.
type MomentSummary struct {
	Summary string `json:"summary"`
	// Facts, Commitments, Feelings are extracted lists to improve retrieval.
	Facts       []string  `json:"facts"`
	Commitments []string  `json:"commitments"`
	Feelings    []string  `json:"feelings"`
	TimeRange   TimeRange `json:"time_range"`
	// SalienceScore is normalized to [0,1] by the caller.
	SalienceScore float64 `json:"salience_score"`
}

// RetrievedMoment is a retrieved moment snippet.
type RetrievedMoment struct {
	Content    string    `json:"content"`
	Role       string    `json:"role"`
	Type       string    `json:"type"`
	Similarity float64   `json:"similarity"`
	CreatedAt  time.Time `json:"created_at"`
}
