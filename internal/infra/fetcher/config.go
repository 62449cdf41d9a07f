package fetcher

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"tooldex/pkg/config"
)

// MetadataFetchConfig controls security and behavior of metadata fetching.
//
// Security settings:
//   - DenyPrivateIPs: Prevents SSRF by blocking private IP addresses
//   - MaxBodySize: Prevents memory exhaustion from oversized responses
//   - MaxRedirects: Prevents infinite redirect loops
//   - Timeout: Prevents resource starvation from slow servers
type MetadataFetchConfig struct {
	// Enabled controls whether metadata enrichment runs at all. When
	// false submissions keep only the fields the submitter provided.
	Enabled bool

	// Timeout is the maximum duration for a single HTTP request.
	Timeout time.Duration

	// MaxBodySize is the maximum HTTP response body size in bytes,
	// enforced while reading, not from the Content-Length header.
	MaxBodySize int64

	// MaxRedirects is the maximum number of redirects to follow. Each
	// redirect target is re-validated against the private IP policy.
	MaxRedirects int

	// DenyPrivateIPs rejects URLs resolving to private, loopback, or
	// link-local addresses. Should always be true in production.
	DenyPrivateIPs bool

	// RequestsPerSecond caps outbound fetch throughput across all
	// submissions so a burst of tool registrations does not hammer
	// third-party sites.
	RequestsPerSecond float64
}

// DefaultConfig returns production-ready defaults for metadata fetching.
func DefaultConfig() MetadataFetchConfig {
	return MetadataFetchConfig{
		Enabled:        true,
		Timeout:        10 * time.Second,
		MaxBodySize:    5 * 1024 * 1024, // 5MB
		MaxRedirects:   5,
		DenyPrivateIPs: true,

		RequestsPerSecond: 2,
	}
}

// Validate checks the configuration for values that could cause security
// or stability problems.
func (c *MetadataFetchConfig) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.Timeout)
	}

	minBodySize := int64(1024)              // 1KB
	maxBodySize := int64(100 * 1024 * 1024) // 100MB
	if c.MaxBodySize < minBodySize || c.MaxBodySize > maxBodySize {
		return fmt.Errorf("max body size must be between %d and %d bytes, got %d", minBodySize, maxBodySize, c.MaxBodySize)
	}

	if c.MaxRedirects < 0 || c.MaxRedirects > 10 {
		return fmt.Errorf("max redirects must be between 0 and 10, got %d", c.MaxRedirects)
	}

	if c.RequestsPerSecond <= 0 || c.RequestsPerSecond > 100 {
		return fmt.Errorf("requests per second must be between 0 and 100, got %v", c.RequestsPerSecond)
	}
	return nil
}

// LoadConfigFromEnv loads configuration from environment variables,
// falling back to defaults for unset variables and failing on invalid
// values.
//
// Environment variables:
//   - METADATA_FETCH_ENABLED: "true" or "false" (default: true)
//   - METADATA_FETCH_TIMEOUT: duration string, e.g. "10s"
//   - METADATA_FETCH_MAX_BODY_SIZE: integer in bytes
//   - METADATA_FETCH_MAX_REDIRECTS: integer
//   - METADATA_FETCH_DENY_PRIVATE_IPS: "true" or "false" (default: true)
//   - METADATA_FETCH_RPS: float, outbound requests per second (default: 2)
func LoadConfigFromEnv() (MetadataFetchConfig, error) {
	cfg := DefaultConfig()

	cfg.Enabled = config.GetEnvBool("METADATA_FETCH_ENABLED", cfg.Enabled)
	if val := os.Getenv("METADATA_FETCH_TIMEOUT"); val != "" {
		parsed, err := time.ParseDuration(val)
		if err != nil {
			return cfg, fmt.Errorf("invalid METADATA_FETCH_TIMEOUT: %v (expected format: '10s', '1m')", err)
		}
		cfg.Timeout = parsed
	}
	if val := os.Getenv("METADATA_FETCH_MAX_BODY_SIZE"); val != "" {
		parsed, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid METADATA_FETCH_MAX_BODY_SIZE: %v", err)
		}
		cfg.MaxBodySize = parsed
	}
	if val := os.Getenv("METADATA_FETCH_MAX_REDIRECTS"); val != "" {
		parsed, err := strconv.Atoi(val)
		if err != nil {
			return cfg, fmt.Errorf("invalid METADATA_FETCH_MAX_REDIRECTS: %v", err)
		}
		cfg.MaxRedirects = parsed
	}
	cfg.DenyPrivateIPs = config.GetEnvBool("METADATA_FETCH_DENY_PRIVATE_IPS", cfg.DenyPrivateIPs)
	if val := os.Getenv("METADATA_FETCH_RPS"); val != "" {
		parsed, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid METADATA_FETCH_RPS: %v", err)
		}
		cfg.RequestsPerSecond = parsed
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}
