package ui

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"parmatma/app"
	"parmatma/domain/wellness"
	"parmatma/internal/errors"
)

// dailyRecordRequest is the habit entry form payload. Date is optional and
// defaults to today.
type dailyRecordRequest struct {
	Date            string  `json:"date"`
	SleepHours      float64 `json:"sleep_hours"`
	ExerciseMinutes float64 `json:"exercise_minutes"`
	MealQuality     string  `json:"meal_quality"`
	MoodText        string  `json:"mood_text"`
}

// handleRecordDay appends one habit record to the session history.
func (s *Server) handleRecordDay(c *gin.Context) {
	var req dailyRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, errors.InvalidInput("invalid habit record payload"))
		return
	}

	var date time.Time
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			writeError(c, errors.InvalidInput("date must be YYYY-MM-DD"))
			return
		}
		date = parsed
	}

	record, err := s.wellness.RecordDay(sessionState(c), app.DailyInput{
		Date:            date,
		SleepHours:      req.SleepHours,
		ExerciseMinutes: req.ExerciseMinutes,
		MealQuality:     wellness.MealQuality(req.MealQuality),
		MoodText:        req.MoodText,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

// handleHabitHistory returns the session's records in submission order.
func (s *Server) handleHabitHistory(c *gin.Context) {
	records := s.wellness.History(sessionState(c))
	c.JSON(http.StatusOK, gin.H{
		"records": records,
		"count":   len(records),
	})
}

// handleWellnessSummary computes the decay-weighted summary. An optional
// as_of query pins the reference day; it defaults to today.
func (s *Server) handleWellnessSummary(c *gin.Context) {
	state := sessionState(c)

	var summary *wellness.Summary
	var err error
	if asOf := c.Query("as_of"); asOf != "" {
		parsed, parseErr := time.Parse("2006-01-02", asOf)
		if parseErr != nil {
			writeError(c, errors.InvalidInput("as_of must be YYYY-MM-DD"))
			return
		}
		summary, err = s.wellness.SummaryAsOf(state, parsed)
	} else {
		summary, err = s.wellness.Summary(state)
	}
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// handleSentimentTrend serves the mood time-series panel data.
func (s *Server) handleSentimentTrend(c *gin.Context) {
	trend, err := s.wellness.Trend(sessionState(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, trend)
}

// handleHabitExport streams the habit history as an .xlsx download.
func (s *Server) handleHabitExport(c *gin.Context) {
	state := sessionState(c)
	records := s.wellness.History(state)

	// The summary sheet is included when one can be computed.
	summary, err := s.wellness.Summary(state)
	if err != nil {
		summary = nil
	}

	buf, err := s.reports.ExportHabits(records, summary)
	if err != nil {
		writeError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="habit_history.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
