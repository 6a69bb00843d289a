package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/ndewijer/ynab-compass/internal/viewstate"
)

// Config holds all configuration for the application
type Config struct {
	Server ServerConfig
	YNAB   YNABConfig
	View   ViewConfig
	CORS   CORSConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// YNABConfig holds the remote budgeting service connection settings.
// The token is carried as an opaque string; this application never
// inspects or refreshes it.
type YNABConfig struct {
	BaseURL string
	Token   string
}

// ViewConfig holds defaults for new transaction view sessions.
type ViewConfig struct {
	DefaultTimeline viewstate.Period
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		YNAB: YNABConfig{
			BaseURL: getEnv("YNAB_BASE_URL", "https://api.ynab.com/v1"),
			Token:   os.Getenv("YNAB_API_TOKEN"),
		},
		View: ViewConfig{
			DefaultTimeline: viewstate.Period(getEnv("DEFAULT_TIMELINE", string(viewstate.PeriodMonth))),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
	}

	if config.YNAB.Token == "" {
		return nil, fmt.Errorf("YNAB_API_TOKEN is required")
	}

	if !config.View.DefaultTimeline.Valid() {
		return nil, fmt.Errorf("invalid DEFAULT_TIMELINE %q", config.View.DefaultTimeline)
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
