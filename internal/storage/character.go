package storage

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/easeaico/project-iris/internal/sentiment"
	"github.com/easeaico/project-iris/internal/types"
)

type characterModel struct {
	ID              int
	Name            string
	Description     string
	Appearance      string
	Personality     string
	Scenario        string
	FirstMessage    string `gorm:"column:first_mes"`
	ExampleDialogue string `gorm:"column:mes_example"`
	SystemPrompt    string
	SystemPromptRaw string
	AvatarPath      string
	AvatarURL       string `gorm:"column:avatar_url"`
	Energy          float64
	Warmth          float64
	LastSentiment   string
	SentimentStreak int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (characterModel) TableName() string {
	return "characters"
}

// characterRepo accesses character data.
type characterRepo struct {
	db *gorm.DB
}

// NewCharacterRepo returns a CharacterRepo.
func NewCharacterRepo(db *gorm.DB) sentiment.CharacterRepo {
	return &characterRepo{db: db}
}

func (r *characterRepo) GetByID(ctx context.Context, id int) (*types.Character, error) {
	var model characterModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		return nil, fmt.Errorf("failed to get character by id: %w", err)
	}
	return characterFromModel(model), nil
}

func (r *characterRepo) GetDefault(ctx context.Context) (*types.Character, error) {
	var model characterModel
	if err := r.db.WithContext(ctx).Order("id ASC").Limit(1).First(&model).Error; err != nil {
		return nil, fmt.Errorf("failed to get default character: %w", err)
	}
	return characterFromModel(model), nil
}

func (r *characterRepo) UpdateMood(ctx context.Context, id int, energy, warmth float64, lastSentiment string, streak int) error {
	if err := r.db.WithContext(ctx).
		Model(&characterModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"energy":           energy,
			"warmth":           warmth,
			"last_sentiment":   lastSentiment,
			"sentiment_streak": streak,
		}).Error; err != nil {
		return fmt.Errorf("failed to update character mood: %w", err)
	}
	return nil
}

// ImportCharacter inserts a character profile and assigns its generated ID.
func (s *Store) ImportCharacter(ctx context.Context, character *types.Character) (int, error) {
	model := characterToModel(character)
	if err := s.db.WithContext(ctx).Create(&model).Error; err != nil {
		return 0, fmt.Errorf("failed to insert character: %w", err)
	}
	character.ID = model.ID
	return model.ID, nil
}

func characterFromModel(model characterModel) *types.Character {
	return &types.Character{
		ID:              model.ID,
		Name:            model.Name,
		Description:     model.Description,
		Appearance:      model.Appearance,
		Personality:     model.Personality,
		Scenario:        model.Scenario,
		FirstMessage:    model.FirstMessage,
		ExampleDialogue: model.ExampleDialogue,
		SystemPrompt:    model.SystemPrompt,
		SystemPromptRaw: model.SystemPromptRaw,
		AvatarPath:      model.AvatarPath,
		AvatarURL:       model.AvatarURL,
		Energy:          model.Energy,
		Warmth:          model.Warmth,
		LastSentiment:   model.LastSentiment,
		SentimentStreak: model.SentimentStreak,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
}

func characterToModel(character *types.Character) characterModel {
	return characterModel{
		ID:              character.ID,
		Name:            character.Name,
		Description:     character.Description,
		Appearance:      character.Appearance,
		Personality:     character.Personality,
		Scenario:        character.Scenario,
		FirstMessage:    character.FirstMessage,
		ExampleDialogue: character.ExampleDialogue,
		SystemPrompt:    character.SystemPrompt,
		SystemPromptRaw: character.SystemPromptRaw,
		AvatarPath:      character.AvatarPath,
		AvatarURL:       character.AvatarURL,
		Energy:          character.Energy,
		Warmth:          character.Warmth,
		LastSentiment:   character.LastSentiment,
		SentimentStreak: character.SentimentStreak,
	}
}
