package wellness

import (
	"math"
	"time"
)

// DefaultDecay is the per-day weight shrinkage applied to older records.
const DefaultDecay = 0.8

// daysBetween returns whole calendar days from d to asOf, ignoring
// time-of-day and zone offsets within the day.
func daysBetween(asOf, d time.Time) int {
	asOfDay := time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, time.UTC)
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	return int(asOfDay.Sub(day).Hours() / 24)
}

// TimeWeightedAverage computes the decay-weighted mean of values, where each
// value's weight is decay^daysAgo relative to asOf. values and dates are
// parallel sequences. Returns ok=false for an empty input rather than zero.
//
// daysAgo is deliberately not clamped at zero: a future-dated entry gets a
// weight above 1 and so more influence, not less. See DESIGN.md before
// "fixing" it.
func TimeWeightedAverage(values []float64, dates []time.Time, asOf time.Time, decay float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	var weightedSum, weightSum float64
	for i, v := range values {
		w := math.Pow(decay, float64(daysBetween(asOf, dates[i])))
		weightedSum += v * w
		weightSum += w
	}
	return weightedSum / weightSum, true
}
