package config

import (
	"fmt"
	"os"

	"github.com/fadedpez/gamefairy/internal/logging"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Visions is the internal state the real game fairy proclaims from
	Visions string

	// LogLevel is the minimum level written by the logger
	LogLevel logging.Level

	// Environment
	Environment string // "development" or "production"
}

// Load reads the configuration from environment variables, after loading a
// .env file from the working directory if one exists
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// Only return error if file exists but couldn't be loaded
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	return FromEnv()
}

// FromEnv builds a Config from the current process environment only
func FromEnv() (*Config, error) {
	level, err := logging.ParseLevel(getEnvWithDefault("LOG_LEVEL", "INFO"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	cfg := &Config{
		Visions:     getEnvWithDefault("FAIRY_VISIONS", "tie"),
		LogLevel:    level,
		Environment: getEnvWithDefault("ENVIRONMENT", "development"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate checks the configuration is usable
func (c *Config) validate() error {
	if c.Environment != "development" && c.Environment != "production" {
		return fmt.Errorf("ENVIRONMENT must be development or production, got %q", c.Environment)
	}
	return nil
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// getEnvWithDefault returns environment variable value or default if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
