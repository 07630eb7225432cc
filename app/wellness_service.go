package app

import (
	"time"

	"parmatma/domain/wellness"
	"parmatma/internal/session"
	"parmatma/ports"
)

// WellnessService wires daily-habit submissions into a session's history and
// serves summaries over it. The sentiment scorer runs once per submission;
// the stored polarity is never recomputed.
type WellnessService struct {
	scorer ports.SentimentScorer
}

// NewWellnessService creates a new wellness service
func NewWellnessService(scorer ports.SentimentScorer) *WellnessService {
	return &WellnessService{scorer: scorer}
}

// DailyInput carries one habit form submission.
type DailyInput struct {
	Date            time.Time
	SleepHours      float64
	ExerciseMinutes float64
	MealQuality     wellness.MealQuality
	MoodText        string
}

// RecordDay scores the mood text, assembles the record and appends it to the
// session history. Validation failures leave the history untouched.
func (s *WellnessService) RecordDay(state *session.State, input DailyInput) (*wellness.Record, error) {
	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}
	record := wellness.Record{
		Date:            date,
		SleepHours:      input.SleepHours,
		ExerciseMinutes: input.ExerciseMinutes,
		MealQuality:     input.MealQuality,
		MoodText:        input.MoodText,
		Sentiment:       s.scorer.Score(input.MoodText),
	}
	if err := state.RecordDay(record); err != nil {
		return nil, err
	}
	return &record, nil
}

// Summary computes the wellness summary as of now.
func (s *WellnessService) Summary(state *session.State) (*wellness.Summary, error) {
	return state.Summary(time.Now())
}

// SummaryAsOf computes the wellness summary against an explicit reference day.
func (s *WellnessService) SummaryAsOf(state *session.State, asOf time.Time) (*wellness.Summary, error) {
	return state.Summary(asOf)
}

// Trend returns the sentiment trend series for the time-series panel.
func (s *WellnessService) Trend(state *session.State) (*wellness.Trend, error) {
	return state.Trend()
}

// History returns the raw ordered records for tabular display.
func (s *WellnessService) History(state *session.State) []wellness.Record {
	return state.HabitRecords()
}
