// Package entity defines the core domain entities and validation logic for
// the application: tools, categories, tags, sponsorships, and affiliate
// links, along with their validation rules and domain-specific errors.
package entity

import (
	"fmt"
	"regexp"
	"time"
)

// Tool statuses. Only active tools appear in public listings.
const (
	ToolStatusActive   = "active"
	ToolStatusPending  = "pending"
	ToolStatusArchived = "archived"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Tool represents one catalogued tool in the directory.
type Tool struct {
	ID          string
	CategoryID  string
	Name        string
	Slug        string
	Tagline     string
	Description string
	WebsiteURL  string
	Featured    bool
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks the Tool's fields. It does not touch the database;
// uniqueness of the slug is enforced by the repository.
func (t *Tool) Validate() error {
	if t.Name == "" {
		return &ValidationError{Field: "name", Message: "name is required"}
	}
	if len(t.Name) > 200 {
		return &ValidationError{Field: "name", Message: "name must not exceed 200 characters"}
	}
	if t.Slug == "" {
		return &ValidationError{Field: "slug", Message: "slug is required"}
	}
	if !slugPattern.MatchString(t.Slug) {
		return &ValidationError{Field: "slug", Message: "slug must be lowercase alphanumerics separated by hyphens"}
	}
	if t.CategoryID == "" {
		return &ValidationError{Field: "category_id", Message: "category_id is required"}
	}
	if err := ValidateURL(t.WebsiteURL); err != nil {
		return err
	}
	if t.Status == "" {
		t.Status = ToolStatusPending
	}
	switch t.Status {
	case ToolStatusActive, ToolStatusPending, ToolStatusArchived:
	default:
		return &ValidationError{
			Field:   "status",
			Message: fmt.Sprintf("invalid status: %s (must be active, pending, or archived)", t.Status),
		}
	}
	return nil
}
