package app

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"parmatma/models"
)

func TestBook_Success(t *testing.T) {
	repo := new(MockAppointmentRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(a *models.Appointment) bool {
		return a.Status == models.AppointmentBooked && a.Specialty == models.SpecialtyDentist
	})).Return(nil)

	svc := NewAppointmentService(repo)
	appt, err := svc.Book(context.Background(), BookingInput{
		UserID:    uuid.New(),
		Specialty: models.SpecialtyDentist,
		Location:  "Mumbai",
		Date:      "2025-07-01",
		Time:      "10:30",
	})
	require.NoError(t, err)

	assert.Equal(t, models.AppointmentBooked, appt.Status)
	repo.AssertExpectations(t)
}

func TestBook_ValidationFailures(t *testing.T) {
	repo := new(MockAppointmentRepository)
	svc := NewAppointmentService(repo)
	valid := BookingInput{
		UserID:    uuid.New(),
		Specialty: models.SpecialtyGeneral,
		Location:  "Delhi",
		Date:      "2025-07-01",
		Time:      "10:30",
	}

	tests := []struct {
		name   string
		mutate func(*BookingInput)
	}{
		{"missing profile", func(b *BookingInput) { b.UserID = uuid.Nil }},
		{"missing location", func(b *BookingInput) { b.Location = "  " }},
		{"unknown specialty", func(b *BookingInput) { b.Specialty = "Wizard" }},
		{"bad date", func(b *BookingInput) { b.Date = "01-07-2025" }},
		{"bad time", func(b *BookingInput) { b.Time = "10:30 PM" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := valid
			tt.mutate(&input)
			_, err := svc.Book(context.Background(), input)
			require.Error(t, err)
		})
	}
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPlatforms_MetroDirectory(t *testing.T) {
	svc := NewAppointmentService(new(MockAppointmentRepository))

	mumbai := svc.Platforms("  Mumbai ")
	require.Len(t, mumbai, 3)
	assert.Equal(t, "Practo", mumbai[0].Name)

	fallback := svc.Platforms("Pune")
	assert.Len(t, fallback, 5)
}
