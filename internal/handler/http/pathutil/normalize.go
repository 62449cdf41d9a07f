package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// pathPatterns defines the list of patterns for dynamic routes.
// Patterns are evaluated in order from most specific to least specific.
// Pre-compiled at initialization for optimal performance (<1μs per operation).
var pathPatterns = []*PathPattern{
	// Tool routes with IDs or slugs
	{Pattern: regexp.MustCompile(`^/tools/slug/[^/]+$`), Template: "/tools/slug/:slug"},
	{Pattern: regexp.MustCompile(`^/tools/[^/]+/sponsorships$`), Template: "/tools/:id/sponsorships"},
	{Pattern: regexp.MustCompile(`^/tools/[^/]+/affiliate-links$`), Template: "/tools/:id/affiliate-links"},
	{Pattern: regexp.MustCompile(`^/tools/[^/]+/tags/[^/]+$`), Template: "/tools/:id/tags/:tagId"},
	{Pattern: regexp.MustCompile(`^/tools/[^/]+$`), Template: "/tools/:id"},

	// Category routes with IDs or slugs
	{Pattern: regexp.MustCompile(`^/categories/slug/[^/]+$`), Template: "/categories/slug/:slug"},
	{Pattern: regexp.MustCompile(`^/categories/[^/]+$`), Template: "/categories/:id"},

	// Tag routes with IDs
	{Pattern: regexp.MustCompile(`^/tags/[^/]+$`), Template: "/tags/:id"},

	// Sponsorship and affiliate-link routes with IDs
	{Pattern: regexp.MustCompile(`^/sponsorships/[^/]+$`), Template: "/sponsorships/:id"},
	{Pattern: regexp.MustCompile(`^/affiliate-links/[^/]+$`), Template: "/affiliate-links/:id"},
}

// NormalizePath normalizes dynamic URL paths to prevent metrics label cardinality explosion.
// It converts paths with IDs (e.g., /tools/3f1a...) to template format (e.g., /tools/:id).
// Static paths remain unchanged.
//
// Performance: <1μs per operation (pre-compiled regex patterns)
//
// Examples:
//
//	NormalizePath("/tools/3f1a2b3c")        // "/tools/:id"
//	NormalizePath("/tools/slug/alpha-cli")  // "/tools/slug/:slug"
//	NormalizePath("/categories/9d8c7b6a")   // "/categories/:id"
//	NormalizePath("/tools")                 // "/tools" (unchanged)
//	NormalizePath("/health")                // "/health" (unchanged)
//	NormalizePath("/metrics")               // "/metrics" (unchanged)
//
// Query parameters and trailing slashes are handled:
//
//	NormalizePath("/tools/3f1a?x=1")        // "/tools/:id"
//	NormalizePath("/tools/3f1a/")           // "/tools/:id"
func NormalizePath(path string) string {
	// Strip query parameters if present
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	// Strip trailing slash if present (except for root path)
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	// Try to match against known patterns
	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}

	// No match found, return original path
	// This is safe - static paths like /health, /metrics, /auth/token
	// and collection endpoints like /tools will pass through unchanged
	return path
}

// GetExpectedCardinality returns the expected number of unique path labels
// after normalization. This is useful for capacity planning and monitoring.
func GetExpectedCardinality() int {
	// Count template patterns
	templateCount := len(pathPatterns)

	// Estimate static endpoints
	staticCount := 10 // /health, /metrics, /auth/token, collection roots, etc.

	// Total expected cardinality
	return templateCount + staticCount
}
