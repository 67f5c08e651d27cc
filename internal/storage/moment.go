package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"github.com/easeaico/project-iris/internal/memory"
	"github.com/easeaico/project-iris/internal/types"
)

// momentModel maps to the moments table.
type momentModel struct {
	ID      int
	UserID  string
	AppName string
	Type    string
	Summary string
	// Facts/Commitments/Feelings/TimeRange are stored as JSONB for retrieval filters.
	Facts       json.RawMessage `gorm:"type:jsonb"`
	Commitments json.RawMessage `gorm:"type:jsonb"`
	Feelings    json.RawMessage `gorm:"type:jsonb"`
	TimeRange   json.RawMessage `gorm:"type:jsonb"`
	// Salience is a 0-1 importance score, used in ranking.
	Salience float64 `gorm:"column:salience_score"`
	// Embedding stores the vector representation for similarity search.
	Embedding *pgvector.Vector `gorm:"type:vector"`
	CreatedAt time.Time
}

func (momentModel) TableName() string {
	return "moments"
}

// momentRepo accesses moment data.
type momentRepo struct {
	db *gorm.DB
}

// NewMomentRepo returns a MomentRepo.
func NewMomentRepo(db *gorm.DB) memory.MomentRepo {
	return &momentRepo{db: db}
}

func (r *momentRepo) AddMoment(ctx context.Context, moment types.Moment) error {
	var vector *pgvector.Vector
	if len(moment.Embedding) > 0 {
		v := pgvector.NewVector(moment.Embedding)
		vector = &v
	}
	// Marshal structured fields into JSONB.
	facts, err := marshalJSON(moment.Facts)
	if err != nil {
		return fmt.Errorf("failed to encode moment facts: %w", err)
	}
	commitments, err := marshalJSON(moment.Commitments)
	if err != nil {
		return fmt.Errorf("failed to encode moment commitments: %w", err)
	}
	feelings, err := marshalJSON(moment.Feelings)
	if err != nil {
		return fmt.Errorf("failed to encode moment feelings: %w", err)
	}
	timeRange, err := marshalJSON(moment.TimeRange)
	if err != nil {
		return fmt.Errorf("failed to encode moment time range: %w", err)
	}
	record := momentModel{
		UserID:      moment.UserID,
		AppName:     moment.AppName,
		Type:        moment.Type,
		Summary:     moment.Summary,
		Facts:       facts,
		Commitments: commitments,
		Feelings:    feelings,
		TimeRange:   timeRange,
		Salience:    moment.Salience,
		Embedding:   vector,
	}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return fmt.Errorf("failed to insert moment: %w", err)
	}
	return nil
}

func (r *momentRepo) GetRecentMoments(ctx context.Context, userID, appName, momentType string, limit int) ([]types.Moment, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit)
	if userID != "" {
		query = query.Where("user_id = ?", userID)
	}
	if appName != "" {
		query = query.Where("app_name = ?", appName)
	}
	if momentType != "" {
		query = query.Where("type = ?", momentType)
	}

	var records []momentModel
	if err := query.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to query moments: %w", err)
	}

	results := make([]types.Moment, 0, len(records))
	for _, record := range records {
		results = append(results, momentFromModel(record))
	}

	// Oldest -> newest
	for i, j := 0, len(results)-1; i < j; i, j = i+1, j-1 {
		results[i], results[j] = results[j], results[i]
	}
	return results, nil
}

func (r *momentRepo) SearchSimilar(ctx context.Context, userID, appName, momentType string, embedding []float32, topK int, threshold float64) ([]types.RetrievedMoment, error) {
	if len(embedding) == 0 {
		return nil, nil
	}

	// Filter by cosine similarity and then re-rank by salience.
	conditions := "embedding IS NOT NULL AND 1 - (embedding <=> $1) > $2"
	args := []any{pgvector.NewVector(embedding), threshold}
	argIndex := 3

	if userID != "" {
		conditions += fmt.Sprintf(" AND user_id = $%d", argIndex)
		args = append(args, userID)
		argIndex++
	}
	if appName != "" {
		conditions += fmt.Sprintf(" AND app_name = $%d", argIndex)
		args = append(args, appName)
		argIndex++
	}
	if momentType != "" {
		conditions += fmt.Sprintf(" AND type = $%d", argIndex)
		args = append(args, momentType)
		argIndex++
	}

	query := fmt.Sprintf(`
		SELECT 'assistant' AS role, summary AS content, type, created_at,
		       1 - (embedding <=> $1) AS similarity
		FROM moments
		WHERE %s
		ORDER BY (0.85 * (1 - (embedding <=> $1)) + 0.15 * COALESCE(salience_score, 0)) DESC
		LIMIT $%d`, conditions, argIndex)

	args = append(args, topK)

	var results []types.RetrievedMoment
	if err := r.db.WithContext(ctx).
		Raw(query, args...).
		Scan(&results).Error; err != nil {
		return nil, fmt.Errorf("failed to search similar moments: %w", err)
	}
	return results, nil
}

// momentFromModel converts database model to domain struct.
func momentFromModel(model momentModel) types.Moment {
	var facts []string
	var commitments []string
	var feelings []string
	var timeRange types.TimeRange
	_ = unmarshalJSON(model.Facts, &facts)
	_ = unmarshalJSON(model.Commitments, &commitments)
	_ = unmarshalJSON(model.Feelings, &feelings)
	_ = unmarshalJSON(model.TimeRange, &timeRange)
	return types.Moment{
		ID:          model.ID,
		UserID:      model.UserID,
		AppName:     model.AppName,
		Type:        model.Type,
		Summary:     model.Summary,
		Facts:       facts,
		Commitments: commitments,
		Feelings:    feelings,
		TimeRange:   timeRange,
		Salience:    model.Salience,
		CreatedAt:   model.CreatedAt,
	}
}

// marshalJSON encodes a value into JSONB, returning nil for empty values.
func marshalJSON(value any) (json.RawMessage, error) {
	if value == nil {
		return nil, nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	return json.RawMessage(raw), nil
}

// unmarshalJSON decodes JSONB into the provided target.
func unmarshalJSON(data json.RawMessage, target any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, target)
}
