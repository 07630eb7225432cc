package ui

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"parmatma/internal/errors"
)

// handleFullReport streams the complete user history as a text download.
func (s *Server) handleFullReport(c *gin.Context) {
	userID := sessionState(c).Profile()
	if userID == uuid.Nil {
		writeError(c, errors.NotFound("profile"))
		return
	}

	report, err := s.reports.FullReport(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="health_report.txt"`)
	c.String(http.StatusOK, report)
}

// handleMedicalSummary streams the short medical report as a text download.
func (s *Server) handleMedicalSummary(c *gin.Context) {
	userID := sessionState(c).Profile()
	if userID == uuid.Nil {
		writeError(c, errors.NotFound("profile"))
		return
	}

	report, err := s.reports.MedicalSummary(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="medical_report.txt"`)
	c.String(http.StatusOK, report)
}
