package wellness

import "time"

// History is the append-only ordered sequence of daily records owned by one
// session. Insertion order is submission order; duplicate and out-of-order
// dates are allowed and all count toward the averages.
type History struct {
	records []Record
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{}
}

// RecordDay validates the candidate record and appends it. No deduplication by
// date is performed; a rejected record leaves the history untouched.
func (h *History) RecordDay(r Record) error {
	if err := r.Validate(); err != nil {
		return err
	}
	h.records = append(h.records, r)
	return nil
}

// Len reports the number of recorded days.
func (h *History) Len() int {
	return len(h.records)
}

// Records returns a copy of the history in submission order.
func (h *History) Records() []Record {
	out := make([]Record, len(h.records))
	copy(out, h.records)
	return out
}

// dates returns the parallel date sequence for weighting.
func (h *History) dates() []time.Time {
	out := make([]time.Time, len(h.records))
	for i, r := range h.records {
		out[i] = r.Date
	}
	return out
}

// column extracts one numeric dimension as a parallel value sequence.
func (h *History) column(pick func(Record) float64) []float64 {
	out := make([]float64, len(h.records))
	for i, r := range h.records {
		out[i] = pick(r)
	}
	return out
}
