package ports

import (
	"context"

	"github.com/google/uuid"

	"parmatma/models"
)

// ProfileRepository persists user profiles. Profiles are insert-only.
type ProfileRepository interface {
	Create(ctx context.Context, profile *models.UserProfile) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.UserProfile, error)
}

// AppointmentRepository persists doctor appointments.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *models.Appointment) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Appointment, error)
	Latest(ctx context.Context, userID uuid.UUID) (*models.Appointment, error)
}

// SymptomRepository persists symptom-checker entries.
type SymptomRepository interface {
	Create(ctx context.Context, entry *models.SymptomEntry) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.SymptomEntry, error)
	Latest(ctx context.Context, userID uuid.UUID) (*models.SymptomEntry, error)
}

// MoodRepository persists mental-health chat entries.
type MoodRepository interface {
	Create(ctx context.Context, entry *models.MoodEntry) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.MoodEntry, error)
}
