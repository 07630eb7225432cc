package app

import (
	"context"
	"time"

	"github.com/google/uuid"

	"parmatma/domain/bmi"
	"parmatma/models"
	"parmatma/ports"
)

// ProfileService saves personal details and derives BMI results from them.
type ProfileService struct {
	profiles ports.ProfileRepository
}

// NewProfileService creates a new profile service
func NewProfileService(profiles ports.ProfileRepository) *ProfileService {
	return &ProfileService{profiles: profiles}
}

// ProfileInput carries the personal-details form fields.
type ProfileInput struct {
	Name     string        `json:"name"`
	Age      int           `json:"age"`
	Gender   models.Gender `json:"gender"`
	HeightCm float64       `json:"height_cm"`
	WeightKg float64       `json:"weight_kg"`
}

// Save validates and persists a new profile row and returns it together with
// the computed BMI. Resubmitting creates a new row; profiles are insert-only.
func (s *ProfileService) Save(ctx context.Context, input ProfileInput) (*models.UserProfile, *bmi.Result, error) {
	profile := &models.UserProfile{
		ID:        uuid.New(),
		Name:      input.Name,
		Age:       input.Age,
		Gender:    input.Gender,
		HeightCm:  input.HeightCm,
		WeightKg:  input.WeightKg,
		CreatedAt: time.Now(),
	}
	if err := profile.Validate(); err != nil {
		return nil, nil, err
	}
	if err := s.profiles.Create(ctx, profile); err != nil {
		return nil, nil, err
	}
	result := bmi.Compute(profile.WeightKg, profile.HeightCm)
	return profile, &result, nil
}

// Get loads a saved profile.
func (s *ProfileService) Get(ctx context.Context, id uuid.UUID) (*models.UserProfile, error) {
	return s.profiles.GetByID(ctx, id)
}

// BMI recomputes the BMI result for a saved profile.
func (s *ProfileService) BMI(ctx context.Context, id uuid.UUID) (*bmi.Result, error) {
	profile, err := s.profiles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	result := bmi.Compute(profile.WeightKg, profile.HeightCm)
	return &result, nil
}
