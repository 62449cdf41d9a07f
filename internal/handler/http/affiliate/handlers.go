// Package affiliate provides HTTP handlers for affiliate link endpoints.
// Affiliate links are admin-only: every route requires authentication.
package affiliate

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"tooldex/internal/domain/entity"
	"tooldex/internal/handler/http/respond"
	affUC "tooldex/internal/usecase/affiliate"
)

// DTO represents the JSON structure for affiliate link data transfer.
type DTO struct {
	ID        string    `json:"id" example:"9d8c7b6a-5e4f-3d2c-1b0a-f9e8d7c6b5a4"`
	ToolID    string    `json:"toolId" example:"3f1a2b3c-4d5e-6f70-8190-a1b2c3d4e5f6"`
	URL       string    `json:"url" example:"https://partner.example.com/alpha-cli?ref=tooldex"`
	Network   string    `json:"network" example:"impact"`
	CreatedAt time.Time `json:"createdAt" example:"2026-08-01T10:00:00Z"`
}

func fromEntity(link *entity.AffiliateLink) DTO {
	return DTO{
		ID:        link.ID,
		ToolID:    link.ToolID,
		URL:       link.URL,
		Network:   link.Network,
		CreatedAt: link.CreatedAt,
	}
}

func statusFor(err error) int {
	var ve *entity.ValidationError
	switch {
	case errors.Is(err, entity.ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &ve):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

type ListByToolHandler struct{ Svc *affUC.Service }

// ServeHTTP lists a tool's affiliate links.
// @Summary      List tool affiliate links
// @Tags         affiliate-links
// @Security     BearerAuth
// @Produce      json
// @Param        id path string true "Tool ID"
// @Success      200 {array} DTO "Affiliate links for the tool"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Router       /tools/{id}/affiliate-links [get]
func (h ListByToolHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	links, err := h.Svc.ListByTool(r.Context(), r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}

	dtos := make([]DTO, 0, len(links))
	for _, link := range links {
		dtos = append(dtos, fromEntity(link))
	}
	respond.JSON(w, http.StatusOK, dtos)
}

type CreateHandler struct{ Svc *affUC.Service }

// ServeHTTP adds an affiliate link to a tool.
// @Summary      Create affiliate link
// @Tags         affiliate-links
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id   path string true "Tool ID"
// @Param        link body object true "Affiliate link"
// @Success      201 {object} DTO "Created affiliate link"
// @Failure      400 {string} string "Bad request - invalid input"
// @Router       /tools/{id}/affiliate-links [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URL     string `json:"url"`
		Network string `json:"network"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	link, err := h.Svc.Create(r.Context(), affUC.CreateInput{
		ToolID:  r.PathValue("id"),
		URL:     req.URL,
		Network: req.Network,
	})
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusCreated, fromEntity(link))
}

type DeleteHandler struct{ Svc *affUC.Service }

// ServeHTTP deletes an affiliate link.
// @Summary      Delete affiliate link
// @Tags         affiliate-links
// @Security     BearerAuth
// @Param        id path string true "Affiliate link ID"
// @Success      204 "No Content"
// @Failure      404 {string} string "Not found - affiliate link not found"
// @Router       /affiliate-links/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
