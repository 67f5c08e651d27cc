package types

import "time"

// Relationship is the persisted relationship between one user and one
// character: the running score, the tier derived from it, the rupture
// flag, and the per-dimension readings.
type Relationship struct {
	ID               int       `json:"id"`
	UserID           string    `json:"user_id"`
	AppName          string    `json:"app_name"`
	CharacterID      int       `json:"character_id"`
	Score            int       `json:"score"`
	Tier             string    `json:"tier"`
	IsRuptured       bool      `json:"is_ruptured"`
	InteractionCount int       `json:"interaction_count"`
	Trust            float64   `json:"trust"`
	Affection        float64   `json:"affection"`
	Respect          float64   `json:"respect"`
	Tension          float64   `json:"tension"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
