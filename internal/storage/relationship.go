package storage

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/easeaico/project-iris/internal/relationship"
	"github.com/easeaico/project-iris/internal/types"
)

type relationshipModel struct {
	ID               int
	UserID           string
	AppName          string
	CharacterID      int
	Score            int
	Tier             string
	IsRuptured       bool
	InteractionCount int
	Trust            float64
	Affection        float64
	Respect          float64
	Tension          float64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (relationshipModel) TableName() string {
	return "relationships"
}

// relationshipRepo accesses relationship records.
type relationshipRepo struct {
	db *gorm.DB
}

// NewRelationshipRepo returns a relationship Repo.
func NewRelationshipRepo(db *gorm.DB) relationship.Repo {
	return &relationshipRepo{db: db}
}

// Get returns the relationship for a user, or nil when none exists yet.
func (r *relationshipRepo) Get(ctx context.Context, userID, appName string) (*types.Relationship, error) {
	var model relationshipModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND app_name = ?", userID, appName).
		Find(&model).Error; err != nil {
		return nil, fmt.Errorf("failed to get relationship: %w", err)
	}
	if model.ID == 0 {
		return nil, nil
	}
	return relationshipFromModel(model), nil
}

// Save creates the record on first write and updates it afterwards.
func (r *relationshipRepo) Save(ctx context.Context, rel *types.Relationship) error {
	model := relationshipToModel(rel)
	if err := r.db.WithContext(ctx).Save(&model).Error; err != nil {
		return fmt.Errorf("failed to save relationship: %w", err)
	}
	rel.ID = model.ID
	return nil
}

func relationshipFromModel(model relationshipModel) *types.Relationship {
	return &types.Relationship{
		ID:               model.ID,
		UserID:           model.UserID,
		AppName:          model.AppName,
		CharacterID:      model.CharacterID,
		Score:            model.Score,
		Tier:             model.Tier,
		IsRuptured:       model.IsRuptured,
		InteractionCount: model.InteractionCount,
		Trust:            model.Trust,
		Affection:        model.Affection,
		Respect:          model.Respect,
		Tension:          model.Tension,
		CreatedAt:        model.CreatedAt,
		UpdatedAt:        model.UpdatedAt,
	}
}

func relationshipToModel(rel *types.Relationship) relationshipModel {
	return relationshipModel{
		ID:               rel.ID,
		UserID:           rel.UserID,
		AppName:          rel.AppName,
		CharacterID:      rel.CharacterID,
		Score:            rel.Score,
		Tier:             rel.Tier,
		IsRuptured:       rel.IsRuptured,
		InteractionCount: rel.InteractionCount,
		Trust:            rel.Trust,
		Affection:        rel.Affection,
		Respect:          rel.Respect,
		Tension:          rel.Tension,
	}
}
