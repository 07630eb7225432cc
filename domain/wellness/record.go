package wellness

import (
	"errors"
	"fmt"
	"math"
	"time"
	"unicode/utf8"
)

// Domain errors for habit ingestion and summary computation
var (
	ErrInvalidCategory  = errors.New("meal quality is not a recognized category")
	ErrTextTooLong      = errors.New("mood text exceeds the maximum length")
	ErrInvalidMeasure   = errors.New("measure must be finite and non-negative")
	ErrInsufficientData = errors.New("insufficient data: no habit records yet")
)

// MaxMoodTextLen bounds the free-text mood note, matching the entry form limit.
const MaxMoodTextLen = 200

// MealQuality is the categorical meal label on a daily record
type MealQuality string

const (
	MealHealthy   MealQuality = "Healthy"
	MealAverage   MealQuality = "Average"
	MealUnhealthy MealQuality = "Unhealthy"
)

// mealScores maps each label onto its numeric contribution to the score.
var mealScores = map[MealQuality]float64{
	MealHealthy:   1.0,
	MealAverage:   0.5,
	MealUnhealthy: 0.0,
}

// Score returns the numeric value for the meal label.
func (m MealQuality) Score() (float64, error) {
	score, ok := mealScores[m]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCategory, string(m))
	}
	return score, nil
}

// Record is one user-submitted daily habit entry. Sentiment is derived from
// MoodText by the external scorer at ingestion time and never recomputed.
type Record struct {
	Date            time.Time   `json:"date"`
	SleepHours      float64     `json:"sleep_hours"`
	ExerciseMinutes float64     `json:"exercise_minutes"`
	MealQuality     MealQuality `json:"meal_quality"`
	MoodText        string      `json:"mood_text"`
	Sentiment       float64     `json:"sentiment"`
}

// Validate checks a candidate record before it may enter a history. Sleep and
// exercise are only required to be finite and non-negative; range clamping is
// the entry form's job.
func (r *Record) Validate() error {
	if _, err := r.MealQuality.Score(); err != nil {
		return err
	}
	if utf8.RuneCountInString(r.MoodText) > MaxMoodTextLen {
		return fmt.Errorf("%w: %d > %d", ErrTextTooLong, utf8.RuneCountInString(r.MoodText), MaxMoodTextLen)
	}
	for _, v := range []float64{r.SleepHours, r.ExerciseMinutes} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return ErrInvalidMeasure
		}
	}
	return nil
}

// MealScore returns the numeric meal value; Validate must have passed.
func (r *Record) MealScore() float64 {
	score, _ := r.MealQuality.Score()
	return score
}
