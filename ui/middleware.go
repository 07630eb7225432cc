package ui

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"parmatma/internal/session"
)

const (
	sessionCookie    = "parmatma_session"
	sessionCookieAge = 60 * 60 * 24 * 7
	sessionKey       = "session_state"
)

// sessionMiddleware resolves the caller's session from the cookie, minting a
// fresh session (and re-issuing the cookie) when the cookie is absent or
// stale. Handlers read the state back with sessionState.
func (s *Server) sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var id uuid.UUID
		if raw, err := c.Cookie(sessionCookie); err == nil {
			if parsed, err := uuid.Parse(raw); err == nil {
				id = parsed
			}
		}

		state, created := s.sessions.Get(id)
		if created {
			c.SetCookie(sessionCookie, state.ID.String(), sessionCookieAge, "/", "", false, true)
		}
		c.Set(sessionKey, state)
		c.Next()
	}
}

// sessionState pulls the session state the middleware attached.
func sessionState(c *gin.Context) *session.State {
	state, ok := c.Get(sessionKey)
	if !ok {
		// Routes are always registered behind the middleware; reaching here
		// means a wiring bug, not a user error.
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "session not initialized"})
		return nil
	}
	return state.(*session.State)
}
