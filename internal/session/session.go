// Package session owns the per-visitor state that never reaches the
// database: the wellness history, the chat transcript, and the link to the
// saved profile. Each session gets its own explicit State instance; there is
// no ambient shared state between sessions.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"parmatma/domain/wellness"
	"parmatma/models"
)

// State is the volatile memory of one user session.
type State struct {
	ID         uuid.UUID
	ProfileID  uuid.UUID
	History    *wellness.History
	Chat       []models.ChatMessage
	CreatedAt  time.Time
	LastActive time.Time

	mu sync.Mutex
}

// Manager hands out and tracks session states keyed by session ID.
type Manager struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*State
}

// NewManager creates an empty session manager.
func NewManager() *Manager {
	return &Manager{sessions: make(map[uuid.UUID]*State)}
}

// Get returns the state for the given session ID, creating it if the ID is
// unknown or nil. The returned bool reports whether a new session was minted,
// in which case the caller should re-issue the cookie.
func (m *Manager) Get(id uuid.UUID) (*State, bool) {
	m.mu.RLock()
	if state, ok := m.sessions[id]; ok {
		m.mu.RUnlock()
		state.touch()
		return state, false
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()
	if state, ok := m.sessions[id]; ok {
		state.touch()
		return state, false
	}

	now := time.Now()
	state := &State{
		ID:         uuid.New(),
		History:    wellness.NewHistory(),
		CreatedAt:  now,
		LastActive: now,
	}
	m.sessions[state.ID] = state
	return state, true
}

// Drop removes a session and its state.
func (m *Manager) Drop(id uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

// Count reports the number of live sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

func (s *State) touch() {
	s.mu.Lock()
	s.LastActive = time.Now()
	s.mu.Unlock()
}

// SetProfile records the saved profile backing this session.
func (s *State) SetProfile(profileID uuid.UUID) {
	s.mu.Lock()
	s.ProfileID = profileID
	s.mu.Unlock()
}

// Profile returns the profile ID, or uuid.Nil when none is saved yet.
func (s *State) Profile() uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ProfileID
}

// RecordDay appends one habit record to this session's history under the
// session lock.
func (s *State) RecordDay(r wellness.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.History.RecordDay(r)
}

// Summary computes the wellness summary over this session's history.
func (s *State) Summary(asOf time.Time) (*wellness.Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return wellness.ComputeSummary(s.History, asOf)
}

// Trend computes the sentiment trend over this session's history.
func (s *State) Trend() (*wellness.Trend, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return wellness.SentimentTrend(s.History)
}

// HabitRecords returns a copy of the recorded days in submission order.
func (s *State) HabitRecords() []wellness.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.History.Records()
}

// AppendChat adds one message to the transcript and returns the last n turns
// for prompt assembly.
func (s *State) AppendChat(msg models.ChatMessage, lastN int) []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Chat = append(s.Chat, msg)
	start := len(s.Chat) - lastN
	if start < 0 {
		start = 0
	}
	window := make([]models.ChatMessage, len(s.Chat)-start)
	copy(window, s.Chat[start:])
	return window
}

// Transcript returns a copy of the full chat history.
func (s *State) Transcript() []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ChatMessage, len(s.Chat))
	copy(out, s.Chat)
	return out
}
