package container

import (
	"context"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"

	"parmatma/adapters/geo"
	"parmatma/adapters/llm"
	"parmatma/adapters/postgres"
	"parmatma/app"
	"parmatma/internal/config"
	"parmatma/internal/migration"
	"parmatma/internal/sentiment"
	"parmatma/internal/session"
	"parmatma/ports"
)

// Container holds all application dependencies and manages their lifecycle
type Container struct {
	Config *config.Config

	// Infrastructure
	DB       *sqlx.DB
	Sessions *session.Manager

	// Repositories (data access layer)
	ProfileRepo     ports.ProfileRepository
	AppointmentRepo ports.AppointmentRepository
	SymptomRepo     ports.SymptomRepository
	MoodRepo        ports.MoodRepository

	// External clients
	Generator ports.TextGenerator
	Geocoder  ports.Geocoder
	Hospitals ports.HospitalFinder
	Scorer    ports.SentimentScorer

	// Application services
	Wellness     *app.WellnessService
	Profiles     *app.ProfileService
	Coach        *app.CoachService
	Chat         *app.ChatService
	Appointments *app.AppointmentService
	Emergency    *app.EmergencyService
	Reports      *app.ReportService
}

// New creates a new dependency injection container
func New(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	return &Container{
		Config:   cfg,
		Sessions: session.NewManager(),
	}, nil
}

// InitWithDatabase wires all components that sit behind the database
// connection: migrations, repositories, external clients and services.
func (c *Container) InitWithDatabase(ctx context.Context, db *sqlx.DB) error {
	if db == nil {
		return fmt.Errorf("database connection cannot be nil")
	}
	c.DB = db

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("database connection test failed: %w", err)
	}
	if err := migration.NewRunner().Run(ctx, db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	c.initRepositories()
	if err := c.initClients(); err != nil {
		return fmt.Errorf("failed to initialize external clients: %w", err)
	}
	c.initServices()

	log.Printf("Container initialized successfully with database connection")
	return nil
}

// initRepositories initializes data access repositories
func (c *Container) initRepositories() {
	c.ProfileRepo = postgres.NewProfileRepository(c.DB)
	c.AppointmentRepo = postgres.NewAppointmentRepository(c.DB)
	c.SymptomRepo = postgres.NewSymptomRepository(c.DB)
	c.MoodRepo = postgres.NewMoodRepository(c.DB)
}

// initClients initializes the outbound service clients
func (c *Container) initClients() error {
	generator, err := llm.NewGeminiClient(&c.Config.AI)
	if err != nil {
		return err
	}
	c.Generator = generator
	c.Geocoder = geo.NewNominatimClient(&c.Config.Geo)
	c.Hospitals = geo.NewOverpassClient(&c.Config.Geo)
	c.Scorer = sentiment.NewScorer()
	return nil
}

// initServices wires the application services over the repositories and
// clients.
func (c *Container) initServices() {
	c.Wellness = app.NewWellnessService(c.Scorer)
	c.Profiles = app.NewProfileService(c.ProfileRepo)
	c.Coach = app.NewCoachService(c.Generator, c.ProfileRepo, c.SymptomRepo, c.Config.AI.Model)
	c.Chat = app.NewChatService(c.Generator, c.Scorer, c.MoodRepo, c.Config.AI.ChatModel, c.Config.AI.ChatContext)
	c.Appointments = app.NewAppointmentService(c.AppointmentRepo)
	c.Emergency = app.NewEmergencyService(c.Geocoder, c.Hospitals, c.Config.Geo.HospitalRadius)
	c.Reports = app.NewReportService(c.ProfileRepo, c.SymptomRepo, c.MoodRepo, c.AppointmentRepo)
}

// Close releases held resources.
func (c *Container) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
