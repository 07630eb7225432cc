package ui

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"parmatma/internal/errors"
)

type chatRequest struct {
	Message string `json:"message"`
}

// handleChatSend runs one mental-health chat exchange.
func (s *Server) handleChatSend(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errors.InvalidInput("invalid chat payload"))
		return
	}

	result, err := s.chat.Send(c.Request.Context(), sessionState(c), req.Message)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// handleChatHistory returns the session's full transcript.
func (s *Server) handleChatHistory(c *gin.Context) {
	transcript := s.chat.Transcript(sessionState(c))
	c.JSON(http.StatusOK, gin.H{
		"messages": transcript,
		"count":    len(transcript),
	})
}
