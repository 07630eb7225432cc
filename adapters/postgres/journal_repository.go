package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"parmatma/models"
	"parmatma/ports"
)

// symptomRepository implements the SymptomRepository interface
type symptomRepository struct {
	db *sqlx.DB
}

// NewSymptomRepository creates a new symptom entry repository
func NewSymptomRepository(db *sqlx.DB) ports.SymptomRepository {
	return &symptomRepository{db: db}
}

// Create inserts a new symptom entry
func (r *symptomRepository) Create(ctx context.Context, entry *models.SymptomEntry) error {
	query := `INSERT INTO symptom_entries (id, user_id, symptoms, response, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.ExecContext(ctx, query,
		entry.ID, entry.UserID, entry.Symptoms, entry.Response, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create symptom entry: %w", err)
	}
	return nil
}

// ListByUser retrieves all symptom entries for a user, newest first
func (r *symptomRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.SymptomEntry, error) {
	query := `SELECT id, user_id, symptoms, response, created_at
		FROM symptom_entries WHERE user_id = $1 ORDER BY created_at DESC`

	var entries []*models.SymptomEntry
	if err := r.db.SelectContext(ctx, &entries, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list symptom entries: %w", err)
	}
	return entries, nil
}

// Latest retrieves the most recent symptom entry, or nil if none exist
func (r *symptomRepository) Latest(ctx context.Context, userID uuid.UUID) (*models.SymptomEntry, error) {
	query := `SELECT id, user_id, symptoms, response, created_at
		FROM symptom_entries WHERE user_id = $1 ORDER BY created_at DESC LIMIT 1`

	var entry models.SymptomEntry
	if err := r.db.GetContext(ctx, &entry, query, userID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest symptom entry: %w", err)
	}
	return &entry, nil
}

// moodRepository implements the MoodRepository interface
type moodRepository struct {
	db *sqlx.DB
}

// NewMoodRepository creates a new mood entry repository
func NewMoodRepository(db *sqlx.DB) ports.MoodRepository {
	return &moodRepository{db: db}
}

// Create inserts a new mood entry
func (r *moodRepository) Create(ctx context.Context, entry *models.MoodEntry) error {
	query := `INSERT INTO mental_health_entries (id, user_id, mood_note, sentiment, response, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, query,
		entry.ID, entry.UserID, entry.MoodNote, entry.Sentiment, entry.Response, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create mood entry: %w", err)
	}
	return nil
}

// ListByUser retrieves all mood entries for a user, newest first
func (r *moodRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.MoodEntry, error) {
	query := `SELECT id, user_id, mood_note, sentiment, response, created_at
		FROM mental_health_entries WHERE user_id = $1 ORDER BY created_at DESC`

	var entries []*models.MoodEntry
	if err := r.db.SelectContext(ctx, &entries, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list mood entries: %w", err)
	}
	return entries, nil
}
