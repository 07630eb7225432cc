package app

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"parmatma/models"
)

// Mock implementations for testing

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Create(ctx context.Context, profile *models.UserProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.UserProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) Create(ctx context.Context, appt *models.Appointment) error {
	args := m.Called(ctx, appt)
	return args.Error(0)
}

func (m *MockAppointmentRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Appointment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) Latest(ctx context.Context, userID uuid.UUID) (*models.Appointment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

type MockSymptomRepository struct {
	mock.Mock
}

func (m *MockSymptomRepository) Create(ctx context.Context, entry *models.SymptomEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockSymptomRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.SymptomEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.SymptomEntry), args.Error(1)
}

func (m *MockSymptomRepository) Latest(ctx context.Context, userID uuid.UUID) (*models.SymptomEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SymptomEntry), args.Error(1)
}

type MockMoodRepository struct {
	mock.Mock
}

func (m *MockMoodRepository) Create(ctx context.Context, entry *models.MoodEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockMoodRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.MoodEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.MoodEntry), args.Error(1)
}

// fixedScorer returns the same polarity for any text.
type fixedScorer struct {
	score float64
}

func (f fixedScorer) Score(text string) float64 {
	return f.score
}
