package app

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"parmatma/adapters/llm"
	"parmatma/models"
)

func TestChatSend_BuildsWindowedPrompt(t *testing.T) {
	gen := &llm.MockGenerator{Response: "That sounds hard. Be kind to yourself."}
	moods := new(MockMoodRepository)
	svc := NewChatService(gen, fixedScorer{score: -0.5}, moods, "gemini-2.0-flash-001", "")
	state := newSessionState(t)

	result, err := svc.Send(context.Background(), state, "I feel very low today")
	require.NoError(t, err)

	assert.Equal(t, "That sounds hard. Be kind to yourself.", result.Reply)
	assert.Equal(t, models.EmotionNegative, result.Emotion)
	assert.Contains(t, result.SupportTip, "Feeling down?")

	require.Len(t, gen.Requests, 1)
	assert.Contains(t, gen.Requests[0].Prompt, "User: I feel very low today")
	assert.Equal(t, "Short, kind, supportive replies under 100 words.", gen.Requests[0].SystemInstruction)

	transcript := svc.Transcript(state)
	require.Len(t, transcript, 2)
	assert.Equal(t, models.ChatRoleAssistant, transcript[1].Role)
}

func TestChatSend_WindowKeepsLastTenTurns(t *testing.T) {
	gen := &llm.MockGenerator{Response: "ok"}
	svc := NewChatService(gen, fixedScorer{}, new(MockMoodRepository), "gemini-2.0-flash-001", "")
	state := newSessionState(t)

	for i := 0; i < 8; i++ {
		_, err := svc.Send(context.Background(), state, "message number "+strings.Repeat("x", i+1))
		require.NoError(t, err)
	}

	last := gen.Requests[len(gen.Requests)-1]
	assert.Equal(t, 10, strings.Count(last.Prompt, "\n"), "prompt holds exactly ten turns")
}

func TestChatSend_EmotionBuckets(t *testing.T) {
	tests := []struct {
		score   float64
		emotion models.EmotionLabel
	}{
		{0.5, models.EmotionPositive},
		{0.2, models.EmotionNeutral},
		{0.0, models.EmotionNeutral},
		{-0.2, models.EmotionNegative},
		{-0.9, models.EmotionNegative},
	}
	for _, tt := range tests {
		svc := NewChatService(&llm.MockGenerator{Response: "ok"}, fixedScorer{score: tt.score}, new(MockMoodRepository), "m", "")
		result, err := svc.Send(context.Background(), newSessionState(t), "hello")
		require.NoError(t, err)
		assert.Equal(t, tt.emotion, result.Emotion, "score %v", tt.score)
	}
}

func TestChatSend_FallbackReplyOnEmptyText(t *testing.T) {
	gen := &llm.MockGenerator{Response: "   "}
	svc := NewChatService(gen, fixedScorer{}, new(MockMoodRepository), "m", "")

	result, err := svc.Send(context.Background(), newSessionState(t), "hello")
	require.NoError(t, err)

	assert.Equal(t, "I'm here to help.", result.Reply)
}

func TestChatSend_PersistsMoodEntryForSavedProfile(t *testing.T) {
	moods := new(MockMoodRepository)
	moods.On("Create", mock.Anything, mock.MatchedBy(func(e *models.MoodEntry) bool {
		return e.MoodNote == "feeling anxious" && e.Sentiment == -0.5
	})).Return(nil)

	svc := NewChatService(&llm.MockGenerator{Response: "breathe"}, fixedScorer{score: -0.5}, moods, "m", "")
	state := newSessionState(t)
	state.SetProfile(uuid.New())

	_, err := svc.Send(context.Background(), state, "feeling anxious")
	require.NoError(t, err)

	moods.AssertExpectations(t)
}

func TestChatSend_SkipsPersistenceWithoutProfile(t *testing.T) {
	moods := new(MockMoodRepository)
	svc := NewChatService(&llm.MockGenerator{Response: "ok"}, fixedScorer{}, moods, "m", "")

	_, err := svc.Send(context.Background(), newSessionState(t), "hello")
	require.NoError(t, err)

	moods.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestChatSend_RejectsBlankMessage(t *testing.T) {
	svc := NewChatService(&llm.MockGenerator{}, fixedScorer{}, new(MockMoodRepository), "m", "")

	_, err := svc.Send(context.Background(), newSessionState(t), "   ")

	require.Error(t, err)
}
