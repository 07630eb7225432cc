package models

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"parmatma/internal/errors"
)

// Gender is the self-reported gender label on a profile
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// UserProfile represents one saved set of personal details.
// Profiles are insert-only; resubmitting the form creates a new row.
type UserProfile struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Age       int       `json:"age" db:"age"`
	Gender    Gender    `json:"gender" db:"gender"`
	HeightCm  float64   `json:"height_cm" db:"height_cm"`
	WeightKg  float64   `json:"weight_kg" db:"weight_kg"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Validate checks the profile fields against the form constraints
func (p *UserProfile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.InvalidInput("name is required")
	}
	if p.Age < 5 || p.Age > 120 {
		return errors.InvalidInput("age must be between 5 and 120")
	}
	switch p.Gender {
	case GenderMale, GenderFemale, GenderOther:
	default:
		return errors.InvalidInput("gender must be Male, Female or Other")
	}
	if p.HeightCm < 100 || p.HeightCm > 250 {
		return errors.InvalidInput("height must be between 100 and 250 cm")
	}
	if p.WeightKg < 20 || p.WeightKg > 200 {
		return errors.InvalidInput("weight must be between 20 and 200 kg")
	}
	return nil
}
