package ui

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"parmatma/internal/errors"
)

// handleHospitalSearch geocodes the location query and lists nearby hospitals.
func (s *Server) handleHospitalSearch(c *gin.Context) {
	location := strings.TrimSpace(c.Query("location"))
	if location == "" {
		writeError(c, errors.InvalidInput("location query is required"))
		return
	}

	search, err := s.emergency.FindHospitals(c.Request.Context(), location)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, search)
}
