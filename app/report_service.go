package app

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"parmatma/adapters/excel"
	"parmatma/domain/bmi"
	"parmatma/domain/wellness"
	"parmatma/models"
	"parmatma/ports"
)

// ReportService assembles the downloadable text reports and the habit
// spreadsheet export.
type ReportService struct {
	profiles     ports.ProfileRepository
	symptoms     ports.SymptomRepository
	moods        ports.MoodRepository
	appointments ports.AppointmentRepository
}

// NewReportService creates a new report service
func NewReportService(profiles ports.ProfileRepository, symptoms ports.SymptomRepository, moods ports.MoodRepository, appointments ports.AppointmentRepository) *ReportService {
	return &ReportService{
		profiles:     profiles,
		symptoms:     symptoms,
		moods:        moods,
		appointments: appointments,
	}
}

// loadHistories fetches the three per-user journals concurrently.
func (s *ReportService) loadHistories(ctx context.Context, userID uuid.UUID) ([]*models.SymptomEntry, []*models.MoodEntry, []*models.Appointment, error) {
	var (
		symptoms []*models.SymptomEntry
		moods    []*models.MoodEntry
		appts    []*models.Appointment
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		symptoms, err = s.symptoms.ListByUser(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		moods, err = s.moods.ListByUser(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		appts, err = s.appointments.ListByUser(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, nil, err
	}
	return symptoms, moods, appts, nil
}

// FullReport renders the complete user history as plain text: personal
// details, symptoms, appointments and mental-health entries.
func (s *ReportService) FullReport(ctx context.Context, userID uuid.UUID) (string, error) {
	profile, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	symptoms, moods, appts, err := s.loadHistories(ctx, userID)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Personal Details:\nName: %s Age: %d Gender: %s Height: %.1f Weight: %.1f Registered On: %s\n",
		profile.Name, profile.Age, profile.Gender, profile.HeightCm, profile.WeightKg,
		profile.CreatedAt.Format("2006-01-02 15:04:05"))

	b.WriteString("\nSymptoms:\n")
	for _, e := range symptoms {
		fmt.Fprintf(&b, "Date: %s Symptoms: %s Analysis: %s\n",
			e.CreatedAt.Format("2006-01-02 15:04:05"), e.Symptoms, e.Response)
	}

	b.WriteString("\nDoctor Appointments:\n")
	for _, a := range appts {
		fmt.Fprintf(&b, "Date: %s Time: %s Specialty: %s Location: %s Status: %s\n",
			a.Date, a.Time, a.Specialty, a.Location, a.Status)
	}

	b.WriteString("\nMental Health:\n")
	for _, m := range moods {
		fmt.Fprintf(&b, "Date: %s Note: %s Sentiment: %.2f Advice: %s\n",
			m.CreatedAt.Format("2006-01-02 15:04:05"), m.MoodNote, m.Sentiment, m.Response)
	}
	return b.String(), nil
}

// MedicalSummary renders the short medical report: identity, BMI with advice,
// and the most recent appointment and symptom entry.
func (s *ReportService) MedicalSummary(ctx context.Context, userID uuid.UUID) (string, error) {
	profile, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}

	var lastAppt *models.Appointment
	var lastSymptom *models.SymptomEntry
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		lastAppt, err = s.appointments.Latest(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		lastSymptom, err = s.symptoms.Latest(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return "", err
	}

	result := bmi.Compute(profile.WeightKg, profile.HeightCm)

	var b strings.Builder
	fmt.Fprintf(&b, "Medical Report for %s (as of %s)\n\n",
		profile.Name, time.Now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Age: %d Gender: %s Height: %.1f Weight: %.1f BMI: %.2f (%s)\n",
		profile.Age, profile.Gender, profile.HeightCm, profile.WeightKg, result.BMI, result.Category)
	fmt.Fprintf(&b, "\nBMI Advice: %s\n", result.Advice)
	if lastAppt != nil {
		fmt.Fprintf(&b, "\nRecent Appointment: %s %s [%s] in %s, Status: %s\n",
			lastAppt.Date, lastAppt.Time, lastAppt.Specialty, lastAppt.Location, lastAppt.Status)
	}
	if lastSymptom != nil {
		fmt.Fprintf(&b, "\nLatest Symptom: %s (%s)\n", lastSymptom.Symptoms, lastSymptom.Response)
	}
	b.WriteString("\nPlease consult a healthcare professional for diagnosis and treatment.\n")
	return b.String(), nil
}

// ExportHabits renders the session's habit history (and its summary, when one
// can be computed) as an .xlsx download.
func (s *ReportService) ExportHabits(records []wellness.Record, summary *wellness.Summary) (*bytes.Buffer, error) {
	return excel.WriteHabitWorkbook(records, summary)
}
