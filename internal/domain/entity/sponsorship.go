package entity

import "time"

// Sponsorship is a time-boxed paid placement for one tool. Active
// sponsorships boost the tool's position in ranked listings, weighted by
// PriorityWeight. The active window is half-open: [StartDate, EndDate).
type Sponsorship struct {
	ID             string
	ToolID         string
	PriorityWeight int
	IsActive       bool
	StartDate      time.Time
	EndDate        time.Time
	CreatedAt      time.Time
}

// ActiveAt reports whether the sponsorship boosts rankings at the given
// instant.
func (s *Sponsorship) ActiveAt(now time.Time) bool {
	return s.IsActive && !now.Before(s.StartDate) && now.Before(s.EndDate)
}

// Validate checks the Sponsorship's fields.
func (s *Sponsorship) Validate() error {
	if s.ToolID == "" {
		return &ValidationError{Field: "tool_id", Message: "tool_id is required"}
	}
	if s.PriorityWeight < 0 {
		return &ValidationError{Field: "priority_weight", Message: "priority_weight cannot be negative"}
	}
	if s.StartDate.IsZero() || s.EndDate.IsZero() {
		return &ValidationError{Field: "start_date", Message: "start_date and end_date are required"}
	}
	if !s.EndDate.After(s.StartDate) {
		return &ValidationError{Field: "end_date", Message: "end_date must be after start_date"}
	}
	return nil
}

// AffiliateLink is a revenue link for one tool. Presence of any affiliate
// link boosts the tool in ranked listings, below sponsorship boosts.
type AffiliateLink struct {
	ID        string
	ToolID    string
	URL       string
	Network   string
	CreatedAt time.Time
}

// Validate checks the AffiliateLink's fields.
func (a *AffiliateLink) Validate() error {
	if a.ToolID == "" {
		return &ValidationError{Field: "tool_id", Message: "tool_id is required"}
	}
	return ValidateURL(a.URL)
}
