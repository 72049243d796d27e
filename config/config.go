package config

import (
	"fmt"
	"os"
	"strconv"
)

const defaultPort = "5000"

// Config holds all configuration for the application. Everything comes
// from the process environment; the generative-backend credential is read
// separately by the LLM service.
type Config struct {
	// Server configuration
	ServerPort string

	// Database configuration
	DatabaseURL string

	// Redis configuration (optional; rate limiting is skipped without it)
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string
}

// LoadConfig creates a new Config instance from environment variables.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerPort:    os.Getenv("PORT"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RedisHost:     os.Getenv("REDIS_HOST"),
		RedisPort:     os.Getenv("REDIS_PORT"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisURL:      os.Getenv("REDIS_URL"),
	}

	if cfg.ServerPort == "" {
		cfg.ServerPort = defaultPort
	}
	if cfg.RedisPort == "" {
		cfg.RedisPort = "6379"
	}
	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		db, err := strconv.Atoi(dbStr)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB value %q: %w", dbStr, err)
		}
		cfg.RedisDB = db
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// HasRedis reports whether a Redis endpoint is configured.
func (c *Config) HasRedis() bool {
	return c.RedisHost != "" || c.RedisURL != ""
}
