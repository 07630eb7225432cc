package models

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"parmatma/internal/errors"
)

// Specialty is the doctor specialty selected when booking
type Specialty string

const (
	SpecialtyGeneral       Specialty = "General"
	SpecialtyCardiologist  Specialty = "Cardiologist"
	SpecialtyDermatologist Specialty = "Dermatologist"
	SpecialtyDentist       Specialty = "Dentist"
	SpecialtyOther         Specialty = "Other"
)

// AppointmentStatus tracks the lifecycle of a booking
type AppointmentStatus string

const (
	AppointmentBooked    AppointmentStatus = "Booked"
	AppointmentCancelled AppointmentStatus = "Cancelled"
)

// Appointment represents a booked doctor visit
type Appointment struct {
	ID        uuid.UUID         `json:"id" db:"id"`
	UserID    uuid.UUID         `json:"user_id" db:"user_id"`
	Specialty Specialty         `json:"specialty" db:"specialty"`
	Location  string            `json:"location" db:"location"`
	Date      string            `json:"date" db:"date"`
	Time      string            `json:"time" db:"time"`
	Status    AppointmentStatus `json:"status" db:"status"`
	CreatedAt time.Time         `json:"created_at" db:"created_at"`
}

// Validate checks that all booking fields are present and well formed
func (a *Appointment) Validate() error {
	if a.UserID == uuid.Nil {
		return errors.InvalidInput("profile is required before booking")
	}
	if strings.TrimSpace(a.Location) == "" {
		return errors.InvalidInput("location is required")
	}
	switch a.Specialty {
	case SpecialtyGeneral, SpecialtyCardiologist, SpecialtyDermatologist, SpecialtyDentist, SpecialtyOther:
	default:
		return errors.InvalidInput("unknown specialty")
	}
	if _, err := time.Parse("2006-01-02", a.Date); err != nil {
		return errors.InvalidInput("date must be YYYY-MM-DD")
	}
	if _, err := time.Parse("15:04", a.Time); err != nil {
		return errors.InvalidInput("time must be HH:MM")
	}
	return nil
}
