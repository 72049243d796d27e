package config

import "fmt"

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the configuration is usable for the current
// environment.
func ValidateConfig(cfg *Config) error {
	if cfg.DatabaseURL == "" {
		return ValidationError{Field: "DATABASE_URL", Message: "required environment variable is not set"}
	}
	if cfg.ServerPort == "" {
		return ValidationError{Field: "PORT", Message: "must not be empty"}
	}
	return nil
}
