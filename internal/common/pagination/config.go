// Package pagination provides cursor-based (keyset) pagination shared by
// every list endpoint: signed continuation tokens, composable filter
// predicates, sort strategies with a unique-id tiebreaker, and a generic
// page executor.
package pagination

import (
	"os"
	"strconv"
	"time"
)

// Config holds pagination configuration settings.
// These values can be loaded from environment variables or config files.
type Config struct {
	DefaultLimit int           // Default items per page (typically 20)
	MaxLimit     int           // Maximum allowed items per page (typically 100)
	TokenTTL     time.Duration // Validity window of continuation tokens
}

// DefaultConfig returns the default pagination configuration.
// Default values: limit=20, max=100, ttl=60m
func DefaultConfig() Config {
	return Config{
		DefaultLimit: 20,
		MaxLimit:     100,
		TokenTTL:     time.Hour,
	}
}

// LoadFromEnv loads pagination config from environment variables.
// Supported environment variables:
//   - PAGINATION_DEFAULT_LIMIT: Default items per page
//   - PAGINATION_MAX_LIMIT: Maximum items per page
//   - CURSOR_TTL: Continuation token validity (e.g. "60m", "2h")
//
// Falls back to DefaultConfig() if environment variables are not set.
func LoadFromEnv() Config {
	cfg := Config{
		DefaultLimit: getEnvAsInt("PAGINATION_DEFAULT_LIMIT", 20),
		MaxLimit:     getEnvAsInt("PAGINATION_MAX_LIMIT", 100),
		TokenTTL:     time.Hour,
	}
	if raw := os.Getenv("CURSOR_TTL"); raw != "" {
		if ttl, err := time.ParseDuration(raw); err == nil && ttl > 0 {
			cfg.TokenTTL = ttl
		}
	}
	return cfg
}

// getEnvAsInt retrieves an environment variable and parses it as an integer.
// Returns the default value if the variable is not set or cannot be parsed.
func getEnvAsInt(key string, defaultValue int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultValue
	}
	return val
}
