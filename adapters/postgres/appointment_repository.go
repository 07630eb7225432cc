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

// appointmentRepository implements the AppointmentRepository interface
type appointmentRepository struct {
	db *sqlx.DB
}

// NewAppointmentRepository creates a new appointment repository
func NewAppointmentRepository(db *sqlx.DB) ports.AppointmentRepository {
	return &appointmentRepository{db: db}
}

// Create inserts a new appointment
func (r *appointmentRepository) Create(ctx context.Context, appt *models.Appointment) error {
	query := `INSERT INTO appointments (id, user_id, specialty, location, date, time, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.ExecContext(ctx, query,
		appt.ID, appt.UserID, appt.Specialty, appt.Location,
		appt.Date, appt.Time, appt.Status, appt.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

// ListByUser retrieves all appointments for a user, newest first
func (r *appointmentRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Appointment, error) {
	query := `SELECT id, user_id, specialty, location, date, time, status, created_at
		FROM appointments WHERE user_id = $1 ORDER BY created_at DESC`

	var appts []*models.Appointment
	if err := r.db.SelectContext(ctx, &appts, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appts, nil
}

// Latest retrieves the most recent appointment for a user, or nil if none exist
func (r *appointmentRepository) Latest(ctx context.Context, userID uuid.UUID) (*models.Appointment, error) {
	query := `SELECT id, user_id, specialty, location, date, time, status, created_at
		FROM appointments WHERE user_id = $1 ORDER BY created_at DESC LIMIT 1`

	var appt models.Appointment
	if err := r.db.GetContext(ctx, &appt, query, userID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest appointment: %w", err)
	}
	return &appt, nil
}
