package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the engine configuration
type Config struct {
	Port     int    `validate:"required,gt=0,lte=65535"`
	LogLevel string `validate:"required,oneof=debug DEBUG info INFO warn WARN error ERROR"`
	LogDir   string `validate:"required"`
	DataDir  string `validate:"required"`
	APIKey   string `validate:"required"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel: getEnv("LOG_LEVEL", "INFO"),
		LogDir:   getEnv("LOG_DIR", "logs"),
		DataDir:  getEnv("DATA_DIR", "data"),
		APIKey:   getEnv("API_KEY", ""),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// StatePath returns the location of the versioned state document.
func (c *Config) StatePath() string {
	return filepath.Join(c.DataDir, StateFilename)
}

// AnalyticsPath returns the location of the SQLite review log.
func (c *Config) AnalyticsPath() string {
	return filepath.Join(c.DataDir, AnalyticsFilename)
}
