package wellness

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTimeWeightedAverage_EmptyInput(t *testing.T) {
	avg, ok := TimeWeightedAverage(nil, nil, day(2025, 6, 1), DefaultDecay)

	assert.False(t, ok, "empty input must signal no value, not zero")
	assert.Equal(t, 0.0, avg)
}

func TestTimeWeightedAverage_SameDayEqualsArithmeticMean(t *testing.T) {
	asOf := day(2025, 6, 1)
	values := []float64{2, 4, 9}
	dates := []time.Time{asOf, asOf, asOf}

	avg, ok := TimeWeightedAverage(values, dates, asOf, DefaultDecay)

	assert.True(t, ok)
	assert.InDelta(t, 5.0, avg, 1e-12, "all weights are 1 when every date equals asOf")
}

func TestTimeWeightedAverage_OneDayOldWeightRatio(t *testing.T) {
	asOf := day(2025, 6, 2)
	values := []float64{10, 0}
	dates := []time.Time{asOf, asOf.AddDate(0, 0, -1)}

	// weight(d)=1, weight(d-1)=0.8, so avg = 10*1 / 1.8
	avg, ok := TimeWeightedAverage(values, dates, asOf, 0.8)

	assert.True(t, ok)
	assert.InDelta(t, 10.0/1.8, avg, 1e-12)
}

func TestTimeWeightedAverage_SingleValue(t *testing.T) {
	asOf := day(2025, 6, 2)

	avg, ok := TimeWeightedAverage([]float64{3.5}, []time.Time{asOf.AddDate(0, 0, -7)}, asOf, 0.8)

	assert.True(t, ok)
	assert.InDelta(t, 3.5, avg, 1e-12, "a single value averages to itself regardless of age")
}

// Future-dated entries get weight decay^negative > 1, i.e. amplified rather
// than diminished influence. This test pins that behavior down; see DESIGN.md.
func TestTimeWeightedAverage_FutureDatesAmplified(t *testing.T) {
	asOf := day(2025, 6, 1)
	values := []float64{0, 10}
	dates := []time.Time{asOf, asOf.AddDate(0, 0, 1)}

	// weight(asOf)=1, weight(asOf+1)=1/0.8=1.25, avg = 12.5/2.25
	avg, ok := TimeWeightedAverage(values, dates, asOf, 0.8)

	assert.True(t, ok)
	assert.InDelta(t, 12.5/2.25, avg, 1e-12)
	assert.Greater(t, avg, 5.0, "the future-dated value outweighs the current one")
}

func TestTimeWeightedAverage_IgnoresTimeOfDay(t *testing.T) {
	asOf := time.Date(2025, 6, 2, 1, 0, 0, 0, time.UTC)
	late := time.Date(2025, 6, 1, 23, 30, 0, 0, time.UTC)

	avg, ok := TimeWeightedAverage([]float64{10, 0}, []time.Time{asOf, late}, asOf, 0.8)

	assert.True(t, ok)
	assert.InDelta(t, 10.0/1.8, avg, 1e-12, "a late-evening entry still counts as one calendar day old")
}
