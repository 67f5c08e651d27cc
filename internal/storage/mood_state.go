package storage

import (
	"context"
	"fmt"

	"github.com/easeaico/project-iris/internal/behavior"
	"github.com/easeaico/project-iris/internal/sentiment"
	"github.com/easeaico/project-iris/internal/types"
)

// MoodStateProvider implements memory.MoodStateProvider using character data.
type MoodStateProvider struct {
	characters  sentiment.CharacterRepo
	characterID int
}

// NewMoodStateProvider returns a provider for the character's mood vector.
func NewMoodStateProvider(characters sentiment.CharacterRepo, characterID int) *MoodStateProvider {
	return &MoodStateProvider{
		characters:  characters,
		characterID: characterID,
	}
}

// GetMoodState returns the current mood vector for the configured character.
func (p *MoodStateProvider) GetMoodState(ctx context.Context, userID, appName string) (behavior.MoodState, error) {
	if p.characters == nil {
		return behavior.MoodState{}, fmt.Errorf("character repo is nil")
	}

	var character *types.Character
	if p.characterID > 0 {
		char, getErr := p.characters.GetByID(ctx, p.characterID)
		if getErr != nil {
			return behavior.MoodState{}, fmt.Errorf("failed to get character by id: %w", getErr)
		}
		character = char
	} else {
		char, getErr := p.characters.GetDefault(ctx)
		if getErr != nil {
			return behavior.MoodState{}, fmt.Errorf("failed to get default character: %w", getErr)
		}
		character = char
	}

	if character == nil {
		return behavior.MoodState{}, fmt.Errorf("character not found")
	}

	return behavior.MoodState{
		Energy: character.Energy,
		Warmth: character.Warmth,
	}, nil
}
