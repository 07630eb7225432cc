package ui

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"parmatma/app"
	"parmatma/internal/errors"
)

// handleNutritionPlan generates a nutrition plan for the session's profile.
func (s *Server) handleNutritionPlan(c *gin.Context) {
	var input app.NutritionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		writeError(c, errors.InvalidInput("invalid nutrition payload"))
		return
	}
	input.ProfileID = sessionState(c).Profile()

	response, err := s.coach.NutritionPlan(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// handleExerciseRoutine generates a workout routine for the session's profile.
func (s *Server) handleExerciseRoutine(c *gin.Context) {
	var input app.ExerciseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		writeError(c, errors.InvalidInput("invalid exercise payload"))
		return
	}
	input.ProfileID = sessionState(c).Profile()

	response, err := s.coach.ExerciseRoutine(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

type symptomRequest struct {
	Symptoms string `json:"symptoms"`
}

// handleSymptomCheck runs the symptom predictor. The exchange is stored only
// when the session has a saved profile.
func (s *Server) handleSymptomCheck(c *gin.Context) {
	var req symptomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errors.InvalidInput("invalid symptom payload"))
		return
	}

	response, err := s.coach.CheckSymptoms(c.Request.Context(), sessionState(c).Profile(), req.Symptoms)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}
