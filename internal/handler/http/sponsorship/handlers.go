// Package sponsorship provides HTTP handlers for sponsorship endpoints.
// Sponsorships are admin-only: every route requires authentication.
package sponsorship

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"tooldex/internal/domain/entity"
	httpmetrics "tooldex/internal/handler/http"
	"tooldex/internal/handler/http/respond"
	spUC "tooldex/internal/usecase/sponsorship"
)

// DTO represents the JSON structure for sponsorship data transfer.
type DTO struct {
	ID             string    `json:"id" example:"9d8c7b6a-5e4f-3d2c-1b0a-f9e8d7c6b5a4"`
	ToolID         string    `json:"toolId" example:"3f1a2b3c-4d5e-6f70-8190-a1b2c3d4e5f6"`
	PriorityWeight int       `json:"priorityWeight" example:"10"`
	IsActive       bool      `json:"isActive" example:"true"`
	StartDate      time.Time `json:"startDate" example:"2026-08-01T00:00:00Z"`
	EndDate        time.Time `json:"endDate" example:"2026-09-01T00:00:00Z"`
	CreatedAt      time.Time `json:"createdAt" example:"2026-07-30T10:00:00Z"`
}

func fromEntity(sp *entity.Sponsorship) DTO {
	return DTO{
		ID:             sp.ID,
		ToolID:         sp.ToolID,
		PriorityWeight: sp.PriorityWeight,
		IsActive:       sp.IsActive,
		StartDate:      sp.StartDate,
		EndDate:        sp.EndDate,
		CreatedAt:      sp.CreatedAt,
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

type ListByToolHandler struct{ Svc *spUC.Service }

// ServeHTTP lists a tool's sponsorships, newest window first.
// @Summary      List tool sponsorships
// @Tags         sponsorships
// @Security     BearerAuth
// @Produce      json
// @Param        id path string true "Tool ID"
// @Success      200 {array} DTO "Sponsorships for the tool"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Router       /tools/{id}/sponsorships [get]
func (h ListByToolHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sponsorships, err := h.Svc.ListByTool(r.Context(), r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}

	dtos := make([]DTO, 0, len(sponsorships))
	for _, sp := range sponsorships {
		dtos = append(dtos, fromEntity(sp))
	}
	respond.JSON(w, http.StatusOK, dtos)
}

type GetHandler struct{ Svc *spUC.Service }

// ServeHTTP serves one sponsorship by ID.
// @Summary      Get sponsorship
// @Tags         sponsorships
// @Security     BearerAuth
// @Produce      json
// @Param        id path string true "Sponsorship ID"
// @Success      200 {object} DTO "Sponsorship detail"
// @Failure      404 {string} string "Not found - sponsorship not found"
// @Router       /sponsorships/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sp, err := h.Svc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, fromEntity(sp))
}

type CreateHandler struct{ Svc *spUC.Service }

// ServeHTTP opens a sponsorship window for a tool.
// @Summary      Create sponsorship
// @Description  Opens a paid placement window for the tool. The window is half-open: [startDate, endDate). New sponsorships start active.
// @Tags         sponsorships
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id          path string true "Tool ID"
// @Param        sponsorship body object true "Sponsorship window"
// @Success      201 {object} DTO "Created sponsorship"
// @Failure      400 {string} string "Bad request - invalid window"
// @Router       /tools/{id}/sponsorships [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PriorityWeight int       `json:"priorityWeight"`
		StartDate      time.Time `json:"startDate"`
		EndDate        time.Time `json:"endDate"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	sp, err := h.Svc.Create(r.Context(), spUC.CreateInput{
		ToolID:         r.PathValue("id"),
		PriorityWeight: req.PriorityWeight,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
	})
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusCreated, fromEntity(sp))
}

type UpdateHandler struct{ Svc *spUC.Service }

// ServeHTTP updates a sponsorship.
// @Summary      Update sponsorship
// @Description  Partially updates a sponsorship. Omitted fields are left unchanged.
// @Tags         sponsorships
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id          path string true "Sponsorship ID"
// @Param        sponsorship body object true "Fields to update"
// @Success      200 {object} DTO "Updated sponsorship"
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      404 {string} string "Not found - sponsorship not found"
// @Router       /sponsorships/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PriorityWeight *int       `json:"priorityWeight"`
		IsActive       *bool      `json:"isActive"`
		StartDate      *time.Time `json:"startDate"`
		EndDate        *time.Time `json:"endDate"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	sp, err := h.Svc.Update(r.Context(), spUC.UpdateInput{
		ID:             r.PathValue("id"),
		PriorityWeight: req.PriorityWeight,
		IsActive:       req.IsActive,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
	})
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, fromEntity(sp))
}

type DeleteHandler struct{ Svc *spUC.Service }

// ServeHTTP deletes a sponsorship.
// @Summary      Delete sponsorship
// @Tags         sponsorships
// @Security     BearerAuth
// @Param        id path string true "Sponsorship ID"
// @Success      204 "No Content"
// @Failure      404 {string} string "Not found - sponsorship not found"
// @Router       /sponsorships/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type SweepHandler struct{ Svc *spUC.Service }

// ServeHTTP triggers an immediate expiry sweep instead of waiting for the
// next scheduled worker run. Useful after bulk window edits.
// @Summary      Sweep expired sponsorships
// @Description  Deactivates every sponsorship whose window has closed and reports how many were affected.
// @Tags         sponsorships
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} map[string]int64 "Number of sponsorships deactivated"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Router       /admin/sponsorships/sweep [post]
func (h SweepHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	n, err := h.Svc.SweepExpired(r.Context(), time.Now())
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	httpmetrics.RecordSponsorshipsExpired(int(n))
	respond.JSON(w, http.StatusOK, map[string]int64{"deactivated": n})
}
