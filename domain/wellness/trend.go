package wellness

import (
	"time"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// TrendPoint is one plotted sentiment observation.
type TrendPoint struct {
	Date      time.Time `json:"date"`
	Sentiment float64   `json:"sentiment"`
}

// Trend carries the data behind the mood-over-time panel: the raw series in
// submission order plus descriptive statistics and a least-squares slope in
// sentiment units per day. Display support only; none of it feeds the score.
type Trend struct {
	Points    []TrendPoint `json:"points"`
	Mean      float64      `json:"mean"`
	Min       float64      `json:"min"`
	Max       float64      `json:"max"`
	StdDev    float64      `json:"std_dev"`
	SlopeDay  float64      `json:"slope_per_day"`
	Improving bool         `json:"improving"`
}

// SentimentTrend summarizes the sentiment series of the history. An empty
// history returns ErrInsufficientData.
func SentimentTrend(h *History) (*Trend, error) {
	if h.Len() == 0 {
		return nil, ErrInsufficientData
	}

	records := h.records
	points := make([]TrendPoint, len(records))
	values := make([]float64, len(records))
	offsets := make([]float64, len(records))
	first := records[0].Date
	for i, r := range records {
		points[i] = TrendPoint{Date: r.Date, Sentiment: r.Sentiment}
		values[i] = r.Sentiment
		offsets[i] = float64(daysBetween(r.Date, first))
	}

	mean, _ := stats.Mean(values)
	min, _ := stats.Min(values)
	max, _ := stats.Max(values)
	sd, _ := stats.StandardDeviation(values)

	// A regression needs at least two distinct day offsets; duplicate-date
	// histories keep a zero slope instead of a NaN.
	var slope float64
	for _, off := range offsets {
		if off != offsets[0] {
			_, slope = stat.LinearRegression(offsets, values, nil, false)
			break
		}
	}

	return &Trend{
		Points:    points,
		Mean:      mean,
		Min:       min,
		Max:       max,
		StdDev:    sd,
		SlopeDay:  slope,
		Improving: slope > 0,
	}, nil
}
