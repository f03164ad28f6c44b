package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	Environment string
	LogLevel    string

	// Default scoring weights used when the caller supplies none
	CommentWeight float64
	ViewWeight    float64

	// Rendering hints passed through to external renderers
	Dimension      string
	HighlightCount int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Environment:    getEnv("ENVIRONMENT", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		CommentWeight:  getEnvFloat("COMMENT_WEIGHT", 0.5),
		ViewWeight:     getEnvFloat("VIEW_WEIGHT", 0.5),
		Dimension:      getEnv("DIMENSION", "2d"),
		HighlightCount: getEnvInt("HIGHLIGHT_COUNT", 5),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks configuration sanity before anything runs
func (c *Config) Validate() error {
	if c.CommentWeight < 0 || c.CommentWeight > 1 {
		return fmt.Errorf("COMMENT_WEIGHT must be in [0,1], got %g", c.CommentWeight)
	}
	if c.ViewWeight < 0 || c.ViewWeight > 1 {
		return fmt.Errorf("VIEW_WEIGHT must be in [0,1], got %g", c.ViewWeight)
	}
	if c.HighlightCount < 0 {
		return fmt.Errorf("HIGHLIGHT_COUNT cannot be negative, got %d", c.HighlightCount)
	}
	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvFloat gets a float environment variable with a default value
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
