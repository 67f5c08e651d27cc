package sentiment

import (
	"context"
	"fmt"

	"github.com/easeaico/project-iris/internal/behavior"
	"github.com/easeaico/project-iris/internal/types"
)

// CharacterRepo defines mood fetch and update behavior.
type CharacterRepo interface {
	GetByID(ctx context.Context, id int) (*types.Character, error)
	GetDefault(ctx context.Context) (*types.Character, error)
	UpdateMood(ctx context.Context, id int, energy, warmth float64, lastSentiment string, streak int) error
}

// Service drifts and persists the character mood vector.
type Service struct {
	stateMachine *StateMachine
	characters   CharacterRepo
	characterID  int
}

// NewService returns a new sentiment service.
func NewService(stateMachine *StateMachine, characters CharacterRepo, characterID int) *Service {
	return &Service{
		stateMachine: stateMachine,
		characters:   characters,
		characterID:  characterID,
	}
}

// UpdateFromLabel applies one classified turn to the persisted mood vector.
func (s *Service) UpdateFromLabel(ctx context.Context, label Label) error {
	if s == nil || s.stateMachine == nil {
		return fmt.Errorf("sentiment service not configured")
	}
	if s.characters == nil {
		return fmt.Errorf("character repo is nil")
	}

	character, err := s.loadCharacter(ctx)
	if err != nil {
		return err
	}

	next := s.stateMachine.Update(State{
		Energy:        character.Energy,
		Warmth:        character.Warmth,
		LastSentiment: character.LastSentiment,
		Streak:        character.SentimentStreak,
	}, label)

	if err := s.characters.UpdateMood(ctx, character.ID, next.Energy, next.Warmth, next.LastSentiment, next.Streak); err != nil {
		return fmt.Errorf("failed to update mood: %w", err)
	}
	return nil
}

// CurrentMood reads the persisted mood vector for instruction building.
func (s *Service) CurrentMood(ctx context.Context) (behavior.MoodState, error) {
	if s == nil || s.characters == nil {
		return behavior.MoodState{}, fmt.Errorf("sentiment service not configured")
	}

	character, err := s.loadCharacter(ctx)
	if err != nil {
		return behavior.MoodState{}, err
	}
	return behavior.MoodState{
		Energy: character.Energy,
		Warmth: character.Warmth,
	}, nil
}

func (s *Service) loadCharacter(ctx context.Context) (*types.Character, error) {
	var character *types.Character
	if s.characterID > 0 {
		char, err := s.characters.GetByID(ctx, s.characterID)
		if err != nil {
			return nil, fmt.Errorf("failed to get character by id: %w", err)
		}
		character = char
	} else {
		char, err := s.characters.GetDefault(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get default character: %w", err)
		}
		character = char
	}

	if character == nil {
		return nil, fmt.Errorf("character not found")
	}
	return character, nil
}
