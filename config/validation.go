package config

import "fmt"

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks the assembled configuration. A missing database host
// is allowed; the server falls back to the built-in seed catalog. A JWT
// secret is required in production; outside it an empty secret is tolerated
// so local runs and tests need no setup.
func ValidateConfig(cfg *Config) error {
	if cfg.JWTSecret == "" && IsProduction() {
		return ValidationError{Field: "JWT_SECRET", Message: "required in production"}
	}
	if cfg.DBHost != "" {
		if cfg.DBUser == "" {
			return ValidationError{Field: "DB_USER", Message: "required when DB_HOST is set"}
		}
		if cfg.DBName == "" {
			return ValidationError{Field: "DB_NAME", Message: "required when DB_HOST is set"}
		}
	}
	if cfg.PageSize <= 0 {
		return ValidationError{Field: "SEARCH_PAGE_SIZE", Message: "must be positive"}
	}
	if cfg.MaxRelaxationSteps < 0 {
		return ValidationError{Field: "SEARCH_MAX_RELAXATION_STEPS", Message: "must not be negative"}
	}
	if cfg.PantryMinMatch < 0 || cfg.PantryMinMatch > 1 {
		return ValidationError{Field: "PANTRY_MIN_MATCH", Message: "must be between 0 and 1"}
	}
	return nil
}
