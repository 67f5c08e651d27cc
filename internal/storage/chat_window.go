package storage

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/easeaico/project-iris/internal/memory"
	"github.com/easeaico/project-iris/internal/types"
)

// chatWindowModel maps to the chat_histories table.
type chatWindowModel struct {
	ID         int
	UserID     string
	AppName    string
	Content    string
	TurnCount  int
	Summarized bool
	CreatedAt  time.Time
}

func (chatWindowModel) TableName() string {
	return "chat_histories"
}

// chatWindowRepo accesses chat window data.
type chatWindowRepo struct {
	db *gorm.DB
}

// NewChatWindowRepo returns a ChatWindowRepo.
func NewChatWindowRepo(db *gorm.DB) memory.ChatWindowRepo {
	return &chatWindowRepo{db: db}
}

func (r *chatWindowRepo) CreateWindow(ctx context.Context, window types.ChatHistory) error {
	record := chatWindowModel{
		UserID:     window.UserID,
		AppName:    window.AppName,
		Content:    window.Content,
		TurnCount:  window.TurnCount,
		Summarized: window.Summarized,
	}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return fmt.Errorf("failed to insert chat window: %w", err)
	}
	return nil
}

func (r *chatWindowRepo) GetLatestWindow(ctx context.Context, userID, appName string) (*types.ChatHistory, error) {
	query := r.db.WithContext(ctx).
		Where("summarized = ?", false).
		Order("created_at DESC").
		Limit(1)
	if userID != "" {
		query = query.Where("user_id = ?", userID)
	}
	if appName != "" {
		query = query.Where("app_name = ?", appName)
	}

	var record chatWindowModel
	if err := query.Find(&record).Error; err != nil {
		return nil, fmt.Errorf("failed to query latest chat window: %w", err)
	}
	if record.ID == 0 {
		return nil, nil
	}
	result := chatWindowFromModel(record)
	return &result, nil
}

// AppendToWindow replaces the window content, guarding against concurrent
// appends by matching the expected prior turn count.
func (r *chatWindowRepo) AppendToWindow(ctx context.Context, id int, content string, turnCount int) error {
	if err := r.db.WithContext(ctx).
		Model(&chatWindowModel{}).
		Where("id = ?", id).
		Where("turn_count = ?", turnCount-1).
		Updates(map[string]any{
			"content":    content,
			"turn_count": turnCount,
		}).Error; err != nil {
		return fmt.Errorf("failed to update chat window: %w", err)
	}
	return nil
}

func (r *chatWindowRepo) GetRecent(ctx context.Context, userID, appName string, limit int) ([]types.ChatHistory, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit)
	if userID != "" {
		query = query.Where("user_id = ?", userID)
	}
	if appName != "" {
		query = query.Where("app_name = ?", appName)
	}

	var records []chatWindowModel
	if err := query.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to query chat windows: %w", err)
	}

	results := make([]types.ChatHistory, 0, len(records))
	for _, record := range records {
		results = append(results, chatWindowFromModel(record))
	}

	// Oldest -> newest
	for i, j := 0, len(results)-1; i < j; i, j = i+1, j-1 {
		results[i], results[j] = results[j], results[i]
	}
	return results, nil
}

func (r *chatWindowRepo) MarkSummarized(ctx context.Context, id int) error {
	if err := r.db.WithContext(ctx).
		Model(&chatWindowModel{}).
		Where("id = ?", id).
		Update("summarized", true).Error; err != nil {
		return fmt.Errorf("failed to mark chat window summarized: %w", err)
	}
	return nil
}

func chatWindowFromModel(model chatWindowModel) types.ChatHistory {
	return types.ChatHistory{
		ID:         model.ID,
		UserID:     model.UserID,
		AppName:    model.AppName,
		Content:    model.Content,
		TurnCount:  model.TurnCount,
		Summarized: model.Summarized,
		CreatedAt:  model.CreatedAt,
	}
}
