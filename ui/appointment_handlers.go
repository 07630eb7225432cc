package ui

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"parmatma/app"
	"parmatma/internal/errors"
)

// handleBookAppointment books a doctor visit for the session's profile.
func (s *Server) handleBookAppointment(c *gin.Context) {
	var input app.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		writeError(c, errors.InvalidInput("invalid booking payload"))
		return
	}
	input.UserID = sessionState(c).Profile()

	appt, err := s.appointments.Book(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// handleListAppointments returns the session profile's bookings.
func (s *Server) handleListAppointments(c *gin.Context) {
	userID := sessionState(c).Profile()
	if userID == uuid.Nil {
		writeError(c, errors.NotFound("profile"))
		return
	}

	appts, err := s.appointments.List(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"appointments": appts,
		"count":        len(appts),
	})
}

// handlePlatforms serves the telemedicine directory for a city.
func (s *Server) handlePlatforms(c *gin.Context) {
	city := c.Query("city")
	c.JSON(http.StatusOK, gin.H{
		"city":      city,
		"platforms": s.appointments.Platforms(city),
	})
}
