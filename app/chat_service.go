package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"parmatma/internal/errors"
	"parmatma/internal/session"
	"parmatma/models"
	"parmatma/ports"
)

// chatWindow is how many trailing turns are folded into each prompt.
const chatWindow = 10

// fallbackReply is used when the model produces empty text.
const fallbackReply = "I'm here to help."

// ChatService runs the mental-health support conversation: prompt assembly
// from the trailing transcript window, sentiment scoring of the user's
// message, and persistence of the exchange.
type ChatService struct {
	generator   ports.TextGenerator
	scorer      ports.SentimentScorer
	moods       ports.MoodRepository
	model       string
	instruction string
}

// NewChatService creates a new chat service
func NewChatService(generator ports.TextGenerator, scorer ports.SentimentScorer, moods ports.MoodRepository, model, instruction string) *ChatService {
	if instruction == "" {
		instruction = "Short, kind, supportive replies under 100 words."
	}
	return &ChatService{
		generator:   generator,
		scorer:      scorer,
		moods:       moods,
		model:       model,
		instruction: instruction,
	}
}

// ChatResult is one completed exchange with its sentiment reading.
type ChatResult struct {
	Reply      string              `json:"reply"`
	Sentiment  float64             `json:"sentiment"`
	Emotion    models.EmotionLabel `json:"emotion"`
	SupportTip string              `json:"support_tip"`
}

// Send appends the user's message to the session transcript, generates the
// coach reply from the last turns, and scores the message for sentiment.
func (s *ChatService) Send(ctx context.Context, state *session.State, text string) (*ChatResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.InvalidInput("message is required")
	}

	window := state.AppendChat(models.ChatMessage{Role: models.ChatRoleUser, Content: text}, chatWindow)

	var convo strings.Builder
	for _, msg := range window {
		fmt.Fprintf(&convo, "%s: %s\n", titleCase(string(msg.Role)), msg.Content)
	}

	reply, err := s.generator.GenerateText(ctx, ports.GenerateRequest{
		Model:             s.model,
		Prompt:            convo.String(),
		SystemInstruction: s.instruction,
	})
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(reply) == "" {
		reply = fallbackReply
	}
	state.AppendChat(models.ChatMessage{Role: models.ChatRoleAssistant, Content: reply}, chatWindow)

	sentiment := s.scorer.Score(text)
	emotion := models.EmotionFor(sentiment)

	result := &ChatResult{
		Reply:      reply,
		Sentiment:  sentiment,
		Emotion:    emotion,
		SupportTip: models.SupportTipFor(emotion),
	}

	if userID := state.Profile(); userID != uuid.Nil {
		entry := &models.MoodEntry{
			ID:        uuid.New(),
			UserID:    userID,
			MoodNote:  text,
			Sentiment: sentiment,
			Response:  reply,
			CreatedAt: time.Now(),
		}
		if err := s.moods.Create(ctx, entry); err != nil {
			return nil, errors.Wrap(err, "failed to store mood entry")
		}
	}
	return result, nil
}

// Transcript returns the session's full conversation so far.
func (s *ChatService) Transcript(state *session.State) []models.ChatMessage {
	return state.Transcript()
}

// titleCase capitalizes the first letter for the "User: ..." /
// "Assistant: ..." prompt lines.
func titleCase(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}
