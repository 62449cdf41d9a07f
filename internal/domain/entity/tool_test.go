package entity_test

import (
	"errors"
	"testing"
	"time"

	"tooldex/internal/domain/entity"
)

func validTool() entity.Tool {
	return entity.Tool{
		ID:         "d7a7f566-31b6-4a0e-9e35-0f4c0e5a9d01",
		CategoryID: "cat-1",
		Name:       "Plausible",
		Slug:       "plausible",
		Tagline:    "Privacy-friendly analytics",
		WebsiteURL: "https://plausible.io",
		Status:     entity.ToolStatusActive,
	}
}

func TestTool_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*entity.Tool)
		wantErr bool
	}{
		{"valid", func(*entity.Tool) {}, false},
		{"missing name", func(tl *entity.Tool) { tl.Name = "" }, true},
		{"missing slug", func(tl *entity.Tool) { tl.Slug = "" }, true},
		{"uppercase slug", func(tl *entity.Tool) { tl.Slug = "Plausible" }, true},
		{"slug with spaces", func(tl *entity.Tool) { tl.Slug = "pl au" }, true},
		{"missing category", func(tl *entity.Tool) { tl.CategoryID = "" }, true},
		{"bad scheme", func(tl *entity.Tool) { tl.WebsiteURL = "ftp://example.com" }, true},
		{"unknown status", func(tl *entity.Tool) { tl.Status = "hidden" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tool := validTool()
			tt.mutate(&tool)
			err := tool.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() err=%v, wantErr=%v", err, tt.wantErr)
			}
		})
	}
}

func TestTool_Validate_DefaultsStatus(t *testing.T) {
	t.Parallel()

	tool := validTool()
	tool.Status = ""
	if err := tool.Validate(); err != nil {
		t.Fatalf("Validate err=%v", err)
	}
	if tool.Status != entity.ToolStatusPending {
		t.Errorf("status = %q, want pending", tool.Status)
	}
}

func TestSponsorship_ActiveAt(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	sp := entity.Sponsorship{ToolID: "t", PriorityWeight: 50, IsActive: true, StartDate: start, EndDate: end}

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"before window", start.Add(-time.Minute), false},
		{"window start is inclusive", start, true},
		{"inside window", start.AddDate(0, 0, 10), true},
		{"window end is exclusive", end, false},
	}
	for _, tt := range tests {
		if got := sp.ActiveAt(tt.at); got != tt.want {
			t.Errorf("%s: ActiveAt = %v, want %v", tt.name, got, tt.want)
		}
	}

	inactive := sp
	inactive.IsActive = false
	if inactive.ActiveAt(start.Add(time.Hour)) {
		t.Error("deactivated sponsorship must not be active inside its window")
	}
}

func TestSponsorship_Validate(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	sp := entity.Sponsorship{ToolID: "t", PriorityWeight: 10, StartDate: start, EndDate: start.AddDate(0, 1, 0)}
	if err := sp.Validate(); err != nil {
		t.Fatalf("Validate err=%v", err)
	}

	inverted := sp
	inverted.EndDate = start.Add(-time.Hour)
	if err := inverted.Validate(); err == nil {
		t.Error("inverted window accepted")
	}

	negative := sp
	negative.PriorityWeight = -1
	var verr *entity.ValidationError
	if err := negative.Validate(); !errors.As(err, &verr) {
		t.Errorf("negative weight err=%v, want ValidationError", err)
	}
}
