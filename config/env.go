package config

import (
	"os"
)

// Environment selects how configuration is sourced. Development, Test and CI
// read plain environment variables and may run without a database (the server
// then serves the built-in seed catalog); Production reads Docker secrets and
// enforces the stricter validation rules.
type Environment string

const (
	Development Environment = "development"
	Test        Environment = "test"
	CI          Environment = "ci"
	Production  Environment = "production"
)

// GetEnvironment resolves the runtime environment. CI pipelines are detected
// through the conventional CI=true variable; everything else comes from ENV,
// defaulting to development.
func GetEnvironment() Environment {
	if os.Getenv("CI") == "true" {
		return CI
	}

	switch os.Getenv("ENV") {
	case "production":
		return Production
	case "test":
		return Test
	case "ci":
		return CI
	default:
		return Development
	}
}

// IsProduction reports whether secret-backed configuration and the strict
// validation rules apply.
func IsProduction() bool {
	return GetEnvironment() == Production
}
