// Package category provides HTTP handlers for category endpoints.
package category

import (
	"errors"
	"net/http"
	"time"

	"tooldex/internal/domain/entity"
)

// DTO represents the JSON structure for category data transfer.
type DTO struct {
	ID          string    `json:"id" example:"9d8c7b6a-5e4f-3d2c-1b0a-f9e8d7c6b5a4"`
	Name        string    `json:"name" example:"Developer Tools"`
	Slug        string    `json:"slug" example:"developer-tools"`
	Description string    `json:"description" example:"Editors, terminals, and build tooling."`
	CreatedAt   time.Time `json:"createdAt" example:"2026-08-01T10:00:00Z"`
}

func fromEntity(c *entity.Category) DTO {
	return DTO{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
	}
}

func statusFor(err error) int {
	var ve *entity.ValidationError
	switch {
	case errors.Is(err, entity.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, entity.ErrSlugTaken):
		return http.StatusConflict
	case errors.As(err, &ve):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
