package wellness

import "time"

// Summary bundles the decayed dimension averages, the combined wellness score,
// the per-dimension feedback list and the qualitative prediction.
type Summary struct {
	AsOf          time.Time `json:"as_of"`
	Days          int       `json:"days"`
	SleepAvg      float64   `json:"sleep_avg"`
	ExerciseAvg   float64   `json:"exercise_avg"`
	MealAvg       float64   `json:"meal_avg"`
	SentimentAvg  float64   `json:"sentiment_avg"`
	WellnessScore float64   `json:"wellness_score"`
	Feedback      []string  `json:"feedback"`
	Prediction    string    `json:"prediction"`
}

// ComputeSummary derives the full summary from the history as of the given
// date, using the default decay. It is a pure function of (history, asOf):
// recomputing without an intervening RecordDay yields an identical result.
// An empty history returns ErrInsufficientData, never a zero score.
func ComputeSummary(h *History, asOf time.Time) (*Summary, error) {
	return ComputeSummaryWithDecay(h, asOf, DefaultDecay)
}

// ComputeSummaryWithDecay is ComputeSummary with an explicit decay base.
func ComputeSummaryWithDecay(h *History, asOf time.Time, decay float64) (*Summary, error) {
	if h.Len() == 0 {
		return nil, ErrInsufficientData
	}
	dates := h.dates()

	sleepAvg, _ := TimeWeightedAverage(h.column(func(r Record) float64 { return r.SleepHours }), dates, asOf, decay)
	exerciseAvg, _ := TimeWeightedAverage(h.column(func(r Record) float64 { return r.ExerciseMinutes }), dates, asOf, decay)
	mealAvg, _ := TimeWeightedAverage(h.column(func(r Record) float64 { return r.MealScore() }), dates, asOf, decay)
	sentimentAvg, _ := TimeWeightedAverage(h.column(func(r Record) float64 { return r.Sentiment }), dates, asOf, decay)

	// Each term is normalized onto roughly [0,1] before the four are averaged
	// equally. Out-of-range inputs can push the score outside [0,1]; it is not
	// clamped.
	score := (sleepAvg/12 + exerciseAvg/120 + mealAvg + (sentimentAvg+1)/2) / 4

	s := &Summary{
		AsOf:          asOf,
		Days:          h.Len(),
		SleepAvg:      sleepAvg,
		ExerciseAvg:   exerciseAvg,
		MealAvg:       mealAvg,
		SentimentAvg:  sentimentAvg,
		WellnessScore: score,
	}
	s.Feedback = feedbackFor(s)
	s.Prediction = predictionFor(score)
	return s, nil
}
