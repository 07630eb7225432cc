package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"parmatma/internal/errors"
	"parmatma/models"
	"parmatma/ports"
)

// profileRepository implements the ProfileRepository interface
type profileRepository struct {
	db *sqlx.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *sqlx.DB) ports.ProfileRepository {
	return &profileRepository{db: db}
}

// Create inserts a new profile row. Profiles are insert-only.
func (r *profileRepository) Create(ctx context.Context, profile *models.UserProfile) error {
	query := `INSERT INTO users (id, name, age, gender, height_cm, weight_kg, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		profile.ID, profile.Name, profile.Age, profile.Gender,
		profile.HeightCm, profile.WeightKg, profile.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

// GetByID retrieves a profile by its ID
func (r *profileRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.UserProfile, error) {
	query := `SELECT id, name, age, gender, height_cm, weight_kg, created_at
		FROM users WHERE id = $1`

	var profile models.UserProfile
	if err := r.db.GetContext(ctx, &profile, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NotFound("profile")
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &profile, nil
}
