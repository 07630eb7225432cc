package ui

import (
	"log"

	"github.com/gin-gonic/gin"

	"parmatma/app"
	"parmatma/internal/session"
)

// Server is the JSON API surface of the application. Every route runs behind
// the session middleware, so handlers always have a session state to work
// against.
type Server struct {
	router       *gin.Engine
	sessions     *session.Manager
	wellness     *app.WellnessService
	profiles     *app.ProfileService
	coach        *app.CoachService
	chat         *app.ChatService
	appointments *app.AppointmentService
	emergency    *app.EmergencyService
	reports      *app.ReportService
}

// Services bundles the application services the server routes to.
type Services struct {
	Wellness     *app.WellnessService
	Profiles     *app.ProfileService
	Coach        *app.CoachService
	Chat         *app.ChatService
	Appointments *app.AppointmentService
	Emergency    *app.EmergencyService
	Reports      *app.ReportService
}

// NewServer creates the API server and registers all routes.
func NewServer(sessions *session.Manager, services Services) *Server {
	s := &Server{
		router:       gin.Default(),
		sessions:     sessions,
		wellness:     services.Wellness,
		profiles:     services.Profiles,
		coach:        services.Coach,
		chat:         services.Chat,
		appointments: services.Appointments,
		emergency:    services.Emergency,
		reports:      services.Reports,
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	api.Use(s.sessionMiddleware())

	api.POST("/profile", s.handleSaveProfile)
	api.GET("/profile", s.handleGetProfile)
	api.GET("/profile/bmi", s.handleBMI)

	api.POST("/wellness/records", s.handleRecordDay)
	api.GET("/wellness/records", s.handleHabitHistory)
	api.GET("/wellness/summary", s.handleWellnessSummary)
	api.GET("/wellness/trend", s.handleSentimentTrend)
	api.GET("/wellness/export", s.handleHabitExport)

	api.POST("/coach/nutrition", s.handleNutritionPlan)
	api.POST("/coach/exercise", s.handleExerciseRoutine)
	api.POST("/coach/symptoms", s.handleSymptomCheck)

	api.POST("/chat", s.handleChatSend)
	api.GET("/chat/history", s.handleChatHistory)

	api.POST("/appointments", s.handleBookAppointment)
	api.GET("/appointments", s.handleListAppointments)
	api.GET("/telemedicine/platforms", s.handlePlatforms)

	api.GET("/emergency/hospitals", s.handleHospitalSearch)

	api.GET("/reports/full", s.handleFullReport)
	api.GET("/reports/medical", s.handleMedicalSummary)
}

// Start starts the web server
func (s *Server) Start(addr string) error {
	log.Printf("Starting Parmatma API on http://%s", addr)
	return s.router.Run(addr)
}

// Router exposes the underlying engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}
