package ui

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"parmatma/app"
	"parmatma/internal/errors"
)

// handleSaveProfile stores a new profile row, links it to the session and
// returns it together with the computed BMI.
func (s *Server) handleSaveProfile(c *gin.Context) {
	var input app.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		writeError(c, errors.InvalidInput("invalid profile payload"))
		return
	}

	profile, result, err := s.profiles.Save(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	sessionState(c).SetProfile(profile.ID)

	c.JSON(http.StatusCreated, gin.H{
		"profile": profile,
		"bmi":     result,
	})
}

// handleGetProfile returns the profile saved in this session.
func (s *Server) handleGetProfile(c *gin.Context) {
	id := sessionState(c).Profile()
	if id == uuid.Nil {
		writeError(c, errors.NotFound("profile"))
		return
	}

	profile, err := s.profiles.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// handleBMI recomputes the BMI result for the session's profile.
func (s *Server) handleBMI(c *gin.Context) {
	id := sessionState(c).Profile()
	if id == uuid.Nil {
		writeError(c, errors.NotFound("profile"))
		return
	}

	result, err := s.profiles.BMI(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
