package entity

import "time"

// Category groups tools into one browsable section of the directory.
type Category struct {
	ID          string
	Name        string
	Slug        string
	Description string
	CreatedAt   time.Time
}

// Validate checks the Category's fields.
func (c *Category) Validate() error {
	if c.Name == "" {
		return &ValidationError{Field: "name", Message: "name is required"}
	}
	if c.Slug == "" {
		return &ValidationError{Field: "slug", Message: "slug is required"}
	}
	if !slugPattern.MatchString(c.Slug) {
		return &ValidationError{Field: "slug", Message: "slug must be lowercase alphanumerics separated by hyphens"}
	}
	return nil
}

// Tag is a free-form label attached to tools via the tool_tags join table.
type Tag struct {
	ID   string
	Name string
	Slug string
}

// Validate checks the Tag's fields.
func (t *Tag) Validate() error {
	if t.Name == "" {
		return &ValidationError{Field: "name", Message: "name is required"}
	}
	if t.Slug == "" || !slugPattern.MatchString(t.Slug) {
		return &ValidationError{Field: "slug", Message: "slug must be lowercase alphanumerics separated by hyphens"}
	}
	return nil
}
