package models

// ChatRole identifies the author of a chat message
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatMessage is one turn in the mental-health support conversation
type ChatMessage struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}

// EmotionLabel buckets a sentiment polarity for display
type EmotionLabel string

const (
	EmotionPositive EmotionLabel = "Positive"
	EmotionNeutral  EmotionLabel = "Neutral"
	EmotionNegative EmotionLabel = "Negative"
)

// EmotionFor maps a polarity score onto its display bucket
func EmotionFor(sentiment float64) EmotionLabel {
	switch {
	case sentiment > 0.2:
		return EmotionPositive
	case sentiment > -0.2:
		return EmotionNeutral
	default:
		return EmotionNegative
	}
}

// SupportTipFor returns the canned coaching line shown with each emotion bucket
func SupportTipFor(emotion EmotionLabel) string {
	switch emotion {
	case EmotionNegative:
		return "Feeling down? Take a short break, breathe deeply, or reach out to someone you trust."
	case EmotionPositive:
		return "Glad to hear you're feeling good! Keep up the positive mindset."
	default:
		return "Thanks for sharing. Remember, support is available whenever you need it."
	}
}
