// Package tool provides HTTP handlers for tool catalogue endpoints.
// It includes handlers for listing (with cursor pagination and ranking),
// fetching, creating, updating, and deleting tools.
package tool

import (
	"time"

	"tooldex/internal/domain/entity"
	"tooldex/internal/repository"
)

// DTO represents the JSON structure for tool data transfer.
type DTO struct {
	ID           string    `json:"id" example:"3f1a2b3c-4d5e-6f70-8190-a1b2c3d4e5f6"`
	CategoryID   string    `json:"categoryId" example:"9d8c7b6a-5e4f-3d2c-1b0a-f9e8d7c6b5a4"`
	CategoryName string    `json:"categoryName,omitempty" example:"Developer Tools"`
	Name         string    `json:"name" example:"Alpha CLI"`
	Slug         string    `json:"slug" example:"alpha-cli"`
	Tagline      string    `json:"tagline" example:"A fast command line tool"`
	Description  string    `json:"description" example:"Alpha CLI automates release chores."`
	WebsiteURL   string    `json:"websiteUrl" example:"https://alpha.example.com"`
	Featured     bool      `json:"featured" example:"false"`
	Sponsored    bool      `json:"sponsored" example:"false"`
	Status       string    `json:"status" example:"active"`
	CreatedAt    time.Time `json:"createdAt" example:"2026-08-01T10:00:00Z"`
	UpdatedAt    time.Time `json:"updatedAt" example:"2026-08-01T10:00:00Z"`
}

func fromEntity(t *entity.Tool) DTO {
	return DTO{
		ID:          t.ID,
		CategoryID:  t.CategoryID,
		Name:        t.Name,
		Slug:        t.Slug,
		Tagline:     t.Tagline,
		Description: t.Description,
		WebsiteURL:  t.WebsiteURL,
		Featured:    t.Featured,
		Status:      t.Status,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func fromListItem(item repository.ToolWithMeta) DTO {
	dto := fromEntity(item.Tool)
	dto.CategoryName = item.CategoryName
	dto.Sponsored = item.Sponsored
	return dto
}
