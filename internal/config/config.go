package config

import (
	"os"
	"strconv"
	"time"

	"parmatma/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Database DatabaseConfig
	AI       AIConfig
	Geo      GeoConfig
	Server   ServerConfig
	Ops      OpsConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	URL     string
	SSLMode string
}

// AIConfig holds generative-language API settings
type AIConfig struct {
	APIKey      string
	Model       string
	ChatModel   string
	BaseURL     string
	Timeout     time.Duration
	MaxRetries  int
	ChatContext string
}

// GeoConfig holds geocoding and map-query settings
type GeoConfig struct {
	NominatimURL   string
	OverpassURL    string
	UserAgent      string
	Timeout        time.Duration
	HospitalRadius int
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// OpsConfig holds the operational sidecar settings (health, pprof)
type OpsConfig struct {
	Port    string
	Enabled bool
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{}

	dbConfig, err := loadDatabaseConfig()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load database configuration")
	}
	config.Database = *dbConfig

	aiConfig, err := loadAIConfig()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load AI configuration")
	}
	config.AI = *aiConfig

	config.Geo = *loadGeoConfig()
	config.Server = *loadServerConfig()
	config.Ops = *loadOpsConfig()

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadDatabaseConfig() (*DatabaseConfig, error) {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		return nil, errors.ConfigInvalid("DATABASE_URL is required")
	}

	return &DatabaseConfig{
		URL:     url,
		SSLMode: getEnvOrDefault("SSL_MODE", "disable"),
	}, nil
}

func loadAIConfig() (*AIConfig, error) {
	apiKey := os.Getenv("GOOGLE_API_KEY")
	if apiKey == "" {
		return nil, errors.ConfigInvalid("GOOGLE_API_KEY is required")
	}

	model := os.Getenv("GENERATIVE_MODEL")
	if model == "" {
		model = "gemini-2.0-flash-001"
	}

	return &AIConfig{
		APIKey:      apiKey,
		Model:       model,
		ChatModel:   getEnvOrDefault("CHAT_MODEL", model),
		BaseURL:     getEnvOrDefault("GENERATIVE_BASE_URL", "https://generativelanguage.googleapis.com"),
		Timeout:     time.Duration(getEnvIntOrDefault("AI_TIMEOUT_SECONDS", 60)) * time.Second,
		MaxRetries:  getEnvIntOrDefault("AI_MAX_RETRIES", 3),
		ChatContext: "Short, kind, supportive replies under 100 words.",
	}, nil
}

func loadGeoConfig() *GeoConfig {
	return &GeoConfig{
		NominatimURL:   getEnvOrDefault("NOMINATIM_URL", "https://nominatim.openstreetmap.org"),
		OverpassURL:    getEnvOrDefault("OVERPASS_URL", "https://overpass-api.de/api/interpreter"),
		UserAgent:      getEnvOrDefault("GEO_USER_AGENT", "ParmatmaHealthApp/1.0"),
		Timeout:        time.Duration(getEnvIntOrDefault("GEO_TIMEOUT_SECONDS", 15)) * time.Second,
		HospitalRadius: getEnvIntOrDefault("HOSPITAL_RADIUS_METERS", 5000),
	}
}

func loadServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:    getEnvOrDefault("PORT", "8080"),
		GinMode: getEnvOrDefault("GIN_MODE", "debug"),
	}
}

func loadOpsConfig() *OpsConfig {
	return &OpsConfig{
		Port:    getEnvOrDefault("OPS_PORT", "6060"),
		Enabled: getEnvBoolOrDefault("OPS_ENABLED", true),
	}
}

func validateConfig(config *Config) error {
	if config.Database.URL == "" {
		return errors.ConfigInvalid("database URL is required")
	}
	if config.AI.APIKey == "" {
		return errors.ConfigInvalid("generative API key is required")
	}
	if config.Geo.HospitalRadius <= 0 {
		return errors.ConfigInvalid("hospital search radius must be positive")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
