package models

import (
	"time"

	"github.com/google/uuid"
)

// SymptomEntry is one symptom-checker request and the AI analysis it produced
type SymptomEntry struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Symptoms  string    `json:"symptoms" db:"symptoms"`
	Response  string    `json:"response" db:"response"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// MoodEntry is one mental-health chat exchange with its sentiment polarity
type MoodEntry struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	MoodNote  string    `json:"mood_note" db:"mood_note"`
	Sentiment float64   `json:"sentiment" db:"sentiment"`
	Response  string    `json:"response" db:"response"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
