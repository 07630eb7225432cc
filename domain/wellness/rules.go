package wellness

// feedbackRule pairs a predicate over a dimension average with its message.
// Rules within a dimension are tried in order; the first match wins.
type feedbackRule struct {
	matches func(avg float64) bool
	message string
}

// feedbackDimension is one scored habit dimension with its ordered rule set.
type feedbackDimension struct {
	name  string
	pick  func(s *Summary) float64
	rules []feedbackRule
}

// The rule tables are data so the thresholds stay testable independently of
// the averaging math. Order of dimensions is fixed: sleep, exercise, meals,
// sentiment.
var feedbackDimensions = []feedbackDimension{
	{
		name: "sleep",
		pick: func(s *Summary) float64 { return s.SleepAvg },
		rules: []feedbackRule{
			{func(avg float64) bool { return avg < 6 }, "Try to get at least 7 hours of quality sleep for better rest."},
			{func(avg float64) bool { return avg > 9 }, "Excellent sleep habits! Keep it up."},
			{func(avg float64) bool { return true }, "Your sleep is moderate; fine tuning can boost your energy."},
		},
	},
	{
		name: "exercise",
		pick: func(s *Summary) float64 { return s.ExerciseAvg },
		rules: []feedbackRule{
			{func(avg float64) bool { return avg < 20 }, "Increase your daily exercise to 30+ minutes to improve health."},
			{func(avg float64) bool { return avg > 60 }, "Great exercise routine! Stay consistent."},
			{func(avg float64) bool { return true }, "You are moderately active; more activity can help."},
		},
	},
	{
		name: "meals",
		pick: func(s *Summary) float64 { return s.MealAvg },
		rules: []feedbackRule{
			{func(avg float64) bool { return avg < 0.4 }, "Consider healthier meals to support your wellbeing."},
			{func(avg float64) bool { return true }, "Your meal quality is good; balance is key."},
		},
	},
	{
		name: "sentiment",
		pick: func(s *Summary) float64 { return s.SentimentAvg },
		rules: []feedbackRule{
			{func(avg float64) bool { return avg < 0 }, "Focus on mental wellness: mindfulness or talking to someone may help."},
			{func(avg float64) bool { return true }, "Your mood looks positive; keep nurturing mental health."},
		},
	},
}

// feedbackFor evaluates every dimension's table against the summary, returning
// one message per dimension in the fixed order.
func feedbackFor(s *Summary) []string {
	out := make([]string, 0, len(feedbackDimensions))
	for _, dim := range feedbackDimensions {
		avg := dim.pick(s)
		for _, rule := range dim.rules {
			if rule.matches(avg) {
				out = append(out, rule.message)
				break
			}
		}
	}
	return out
}

// Prediction messages keyed by score band. Thresholds are mutually exclusive
// and checked low band first.
const (
	predictionDecline = "Your current habits suggest potential decline in both mental and physical health if unchanged. Prioritize self-care."
	predictionSustain = "You are on a healthy path! Continuing your habits should sustain good mind & body balance."
	predictionMixed   = "Your habits are mixed; small positive changes can lead to meaningful improvements."
)

// predictionFor maps the wellness score onto its qualitative outlook.
func predictionFor(score float64) string {
	switch {
	case score < 0.4:
		return predictionDecline
	case score > 0.7:
		return predictionSustain
	default:
		return predictionMixed
	}
}
