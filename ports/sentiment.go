package ports

// SentimentScorer scores free text for emotional polarity in [-1, 1].
// The wellness aggregator stores the score alongside each record at ingestion
// and never recomputes it.
type SentimentScorer interface {
	Score(text string) float64
}
