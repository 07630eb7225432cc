package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"parmatma/internal/config"
	"parmatma/internal/container"
	"parmatma/internal/errors"
	"parmatma/internal/ops"
	"parmatma/ui"
)

// initDatabase initializes the PostgreSQL database connection
func initDatabase(appConfig *config.Config) (*sqlx.DB, error) {
	if appConfig.Database.URL == "" {
		return nil, errors.ConfigInvalid("DATABASE_URL is required")
	}

	db, err := sqlx.Connect("postgres", appConfig.Database.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}
	return db, nil
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if appConfig.Server.GinMode != "" {
		gin.SetMode(appConfig.Server.GinMode)
	}

	db, err := initDatabase(appConfig)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	c, err := container.New(appConfig)
	if err != nil {
		log.Fatalf("Failed to create container: %v", err)
	}
	if err := c.InitWithDatabase(context.Background(), db); err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}
	defer func() {
		if err := c.Close(); err != nil {
			log.Printf("Shutdown: %v", err)
		}
	}()

	if appConfig.Ops.Enabled {
		sidecar := ops.NewServer(c.Sessions)
		go func() {
			if err := sidecar.Start(":" + appConfig.Ops.Port); err != nil {
				log.Printf("Ops sidecar failed: %v", err)
			}
		}()
	}

	server := ui.NewServer(c.Sessions, ui.Services{
		Wellness:     c.Wellness,
		Profiles:     c.Profiles,
		Coach:        c.Coach,
		Chat:         c.Chat,
		Appointments: c.Appointments,
		Emergency:    c.Emergency,
		Reports:      c.Reports,
	})
	if err := server.Start(":" + appConfig.Server.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
