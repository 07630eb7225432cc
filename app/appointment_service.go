package app

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"parmatma/models"
	"parmatma/ports"
)

// AppointmentService books doctor visits and serves the telemedicine
// platform directory.
type AppointmentService struct {
	appointments ports.AppointmentRepository
}

// NewAppointmentService creates a new appointment service
func NewAppointmentService(appointments ports.AppointmentRepository) *AppointmentService {
	return &AppointmentService{appointments: appointments}
}

// BookingInput carries the appointment form fields.
type BookingInput struct {
	UserID    uuid.UUID        `json:"user_id"`
	Specialty models.Specialty `json:"specialty"`
	Location  string           `json:"location"`
	Date      string           `json:"date"`
	Time      string           `json:"time"`
}

// Book validates and stores a new appointment with status Booked.
func (s *AppointmentService) Book(ctx context.Context, input BookingInput) (*models.Appointment, error) {
	appt := &models.Appointment{
		ID:        uuid.New(),
		UserID:    input.UserID,
		Specialty: input.Specialty,
		Location:  input.Location,
		Date:      input.Date,
		Time:      input.Time,
		Status:    models.AppointmentBooked,
		CreatedAt: time.Now(),
	}
	if err := appt.Validate(); err != nil {
		return nil, err
	}
	if err := s.appointments.Create(ctx, appt); err != nil {
		return nil, err
	}
	return appt, nil
}

// List returns the user's appointments, newest first.
func (s *AppointmentService) List(ctx context.Context, userID uuid.UUID) ([]*models.Appointment, error) {
	return s.appointments.ListByUser(ctx, userID)
}

// metroPlatforms is the static consultation directory for metro cities.
var metroPlatforms = map[string][]models.TelehealthPlatform{
	"mumbai": {
		{Name: "Practo", URL: "https://www.practo.com", Description: "Video & in-clinic consults"},
		{Name: "Apollo 24|7", URL: "https://www.apollo247.com", Description: "Hospital network telemedicine"},
		{Name: "MFine", URL: "https://www.mfine.co", Description: "AI-driven video consults"},
	},
	"bangalore": {
		{Name: "Practo", URL: "https://www.practo.com/bangalore", Description: "Bangalore specialists"},
		{Name: "MFine", URL: "https://www.mfine.co", Description: "Video consultations"},
		{Name: "DocPrime", URL: "https://www.docprime.com", Description: "24/7 video consults"},
	},
	"delhi": {
		{Name: "Practo", URL: "https://www.practo.com/delhi", Description: "Delhi doctors"},
		{Name: "Apollo 24|7", URL: "https://www.apollo247.com", Description: "Hospital network telemedicine"},
		{Name: "1mg", URL: "https://www.1mg.com", Description: "Teleconsults and medicine"},
	},
}

// defaultPlatforms is served for any city outside the metro directory.
var defaultPlatforms = []models.TelehealthPlatform{
	{Name: "Practo", URL: "https://www.practo.com", Description: "Quick and easy appointments"},
	{Name: "Apollo 24|7", URL: "https://www.apollo247.com", Description: "Trusted provider"},
	{Name: "MFine", URL: "https://www.mfine.co", Description: "Video and audio consults"},
	{Name: "1mg", URL: "https://www.1mg.com", Description: "Consult and medicine delivery"},
	{Name: "DocPrime", URL: "https://www.docprime.com", Description: "Video appointments"},
}

// Platforms returns the telemedicine directory entries for a city.
func (s *AppointmentService) Platforms(city string) []models.TelehealthPlatform {
	key := strings.ToLower(strings.TrimSpace(city))
	if platforms, ok := metroPlatforms[key]; ok {
		return platforms
	}
	return defaultPlatforms
}
