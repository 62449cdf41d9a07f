package pathutil

import (
	"testing"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		// Tool routes with IDs (should be normalized)
		{
			name:     "tool with uuid",
			path:     "/tools/3f1a2b3c-4d5e-6f70-8190-a1b2c3d4e5f6",
			expected: "/tools/:id",
		},
		{
			name:     "tool with trailing slash",
			path:     "/tools/3f1a2b3c/",
			expected: "/tools/:id",
		},
		{
			name:     "tool with query params",
			path:     "/tools/3f1a2b3c?fields=name",
			expected: "/tools/:id",
		},
		{
			name:     "tool by slug",
			path:     "/tools/slug/alpha-cli",
			expected: "/tools/slug/:slug",
		},
		{
			name:     "tool sponsorships",
			path:     "/tools/3f1a2b3c/sponsorships",
			expected: "/tools/:id/sponsorships",
		},
		{
			name:     "tool affiliate links",
			path:     "/tools/3f1a2b3c/affiliate-links",
			expected: "/tools/:id/affiliate-links",
		},
		{
			name:     "tool tag attachment",
			path:     "/tools/3f1a2b3c/tags/9d8c7b6a",
			expected: "/tools/:id/tags/:tagId",
		},

		// Category routes
		{
			name:     "category with uuid",
			path:     "/categories/9d8c7b6a",
			expected: "/categories/:id",
		},
		{
			name:     "category by slug",
			path:     "/categories/slug/dev-tools",
			expected: "/categories/slug/:slug",
		},

		// Tag, sponsorship, affiliate-link routes
		{
			name:     "tag with uuid",
			path:     "/tags/9d8c7b6a",
			expected: "/tags/:id",
		},
		{
			name:     "sponsorship with uuid",
			path:     "/sponsorships/9d8c7b6a",
			expected: "/sponsorships/:id",
		},
		{
			name:     "affiliate link with uuid",
			path:     "/affiliate-links/9d8c7b6a",
			expected: "/affiliate-links/:id",
		},

		// Static paths (should pass through unchanged)
		{
			name:     "tools collection",
			path:     "/tools",
			expected: "/tools",
		},
		{
			name:     "categories collection",
			path:     "/categories",
			expected: "/categories",
		},
		{
			name:     "health endpoint",
			path:     "/health",
			expected: "/health",
		},
		{
			name:     "metrics endpoint",
			path:     "/metrics",
			expected: "/metrics",
		},
		{
			name:     "auth token endpoint",
			path:     "/auth/token",
			expected: "/auth/token",
		},
		{
			name:     "root path",
			path:     "/",
			expected: "/",
		},
		{
			name:     "unknown nested path",
			path:     "/unknown/path/123",
			expected: "/unknown/path/123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizePath(tt.path)
			if got != tt.expected {
				t.Errorf("NormalizePath(%q) = %q, want %q", tt.path, got, tt.expected)
			}
		})
	}
}

func TestGetExpectedCardinality(t *testing.T) {
	n := GetExpectedCardinality()
	if n < len(pathPatterns) {
		t.Errorf("expected cardinality %d to cover at least the %d template patterns", n, len(pathPatterns))
	}
}
