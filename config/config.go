package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds application configuration loaded from environment variables
type Config struct {
	PGURL    string
	Port     string
	ModelDir string
	LogLevel string
}

// Load reads configuration from a .env file merged with environment
// variables. Shell values take precedence over .env values.
func Load() (*Config, error) {
	// Ignore a missing .env file; shell env is enough on its own
	_ = godotenv.Load()

	pgURL := os.Getenv("PG_URL")
	if pgURL == "" {
		return nil, fmt.Errorf("PG_URL environment variable is required")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	modelDir := os.Getenv("MODEL_DIR")
	if modelDir == "" {
		modelDir = "models"
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	return &Config{
		PGURL:    pgURL,
		Port:     port,
		ModelDir: modelDir,
		LogLevel: logLevel,
	}, nil
}
