// Package storage implements the persistence layer on PostgreSQL via GORM.
package storage

import (
	"context"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/easeaico/project-iris/internal/memory"
	"github.com/easeaico/project-iris/internal/relationship"
	"github.com/easeaico/project-iris/internal/sentiment"
)

// Store holds the DB pool and repositories.
type Store struct {
	db            *gorm.DB
	Characters    sentiment.CharacterRepo
	Relationships relationship.Repo
	Moments       memory.MomentRepo
	ChatWindows   memory.ChatWindowRepo
}

// NewStore initializes the PostgreSQL pool and repositories.
func NewStore(ctx context.Context, databaseURL string) (*Store, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &Store{
		db:            db,
		Characters:    NewCharacterRepo(db),
		Relationships: NewRelationshipRepo(db),
		Moments:       NewMomentRepo(db),
		ChatWindows:   NewChatWindowRepo(db),
	}
	return store, nil
}

func (s *Store) DB() *gorm.DB {
	return s.db
}

func (s *Store) Close() {
	if s.db == nil {
		return
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return
	}
	_ = sqlDB.Close()
}
