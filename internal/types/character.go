package types

import "time"

// Character is the persisted persona profile, including its evolving
// mood vector.
type Character struct {
	ID              int       `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Appearance      string    `json:"appearance"`
	Personality     string    `json:"personality"`
	Scenario        string    `json:"scenario"`
	FirstMessage    string    `json:"first_message"`
	ExampleDialogue string    `json:"example_dialogue"`
	SystemPrompt    string    `json:"system_prompt"`
	SystemPromptRaw string    `json:"system_prompt_raw"`
	AvatarPath      string    `json:"avatar_path"`
	AvatarURL       string    `json:"avatar_url"`
	Energy          float64   `json:"energy"`
	Warmth          float64   `json:"warmth"`
	LastSentiment   string    `json:"last_sentiment"`
	SentimentStreak int       `json:"sentiment_streak"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CharacterCard is a decoded character card as exported by common
// card editors.
type CharacterCard struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Personality string `json:"personality"`
	Scenario    string `json:"scenario"`
	FirstMes    string `json:"first_mes"`
	MesExample  string `json:"mes_example"`

	CreatorNotes            string `json:"creator_notes,omitempty"`
	SystemPrompt            string `json:"system_prompt,omitempty"`
	PostHistoryInstructions string `json:"post_history_instructions,omitempty"`
}

// V2CardWrapper unwraps cards that nest the payload under a data field.
type V2CardWrapper struct {
	Data CharacterCard `json:"data"`
}

// Character converts the card into a persistable profile.
func (c CharacterCard) Character() Character {
	return Character{
		Name:            c.Name,
		Description:     c.Description,
		Personality:     c.Personality,
		Scenario:        c.Scenario,
		FirstMessage:    c.FirstMes,
		ExampleDialogue: c.MesExample,
		SystemPrompt:    c.SystemPrompt,
		SystemPromptRaw: c.SystemPrompt,
		Warmth:          0.5,
	}
}
