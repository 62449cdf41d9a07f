// Package tag provides HTTP handlers for tag endpoints, including the
// tool-tag attachment routes.
package tag

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"tooldex/internal/common/pagination"
	"tooldex/internal/domain/entity"
	"tooldex/internal/handler/http/requestid"
	"tooldex/internal/handler/http/respond"
	"tooldex/internal/observability/logging"
	tagUC "tooldex/internal/usecase/tag"
)

// DTO represents the JSON structure for tag data transfer.
type DTO struct {
	ID   string `json:"id" example:"9d8c7b6a-5e4f-3d2c-1b0a-f9e8d7c6b5a4"`
	Name string `json:"name" example:"CLI"`
	Slug string `json:"slug" example:"cli"`
}

func fromEntity(t *entity.Tag) DTO {
	return DTO{ID: t.ID, Name: t.Name, Slug: t.Slug}
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

type ListHandler struct {
	Svc           *tagUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

// ServeHTTP serves the tag listing.
// @Summary      List tags (cursor pagination)
// @Tags         tags
// @Produce      json
// @Param        limit   query  int     false  "Items per page"  default(20)  minimum(1)  maximum(100)
// @Param        cursor  query  string  false  "Continuation token from a previous response"
// @Success      200 {object} pagination.Page[DTO] "One page of tags"
// @Failure      500 {string} string "Internal server error"
// @Router       /tags [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	startTime := time.Now()

	reqID := requestid.FromContext(ctx)
	logger := logging.WithRequestID(ctx, h.Logger)

	params := pagination.ParseQueryParams(r, h.PaginationCfg)
	pagination.RecordRequest("tag", "name")
	pagination.LogRequest(logger, reqID, "tag", params)

	result, err := h.Svc.List(ctx, params)
	if err != nil {
		pagination.LogError(logger, reqID, "tag", err, "database")
		pagination.RecordError("database")
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	dtos := make([]DTO, 0, len(result.Items))
	for _, tg := range result.Items {
		dtos = append(dtos, fromEntity(tg))
	}
	response := pagination.Page[DTO]{
		Items:      dtos,
		NextCursor: result.NextCursor,
		HasMore:    result.HasMore,
	}

	duration := time.Since(startTime)
	pagination.RecordDuration("handler", duration.Seconds())
	pagination.LogResponse(logger, reqID, "tag", len(dtos), result.HasMore, duration, http.StatusOK)

	respond.JSON(w, http.StatusOK, response)
}

type GetHandler struct{ Svc *tagUC.Service }

// ServeHTTP serves one tag by ID.
// @Summary      Get tag
// @Tags         tags
// @Produce      json
// @Param        id path string true "Tag ID"
// @Success      200 {object} DTO "Tag detail"
// @Failure      404 {string} string "Not found - tag not found"
// @Router       /tags/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	tg, err := h.Svc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, fromEntity(tg))
}

type CreateHandler struct{ Svc *tagUC.Service }

// ServeHTTP creates a tag.
// @Summary      Create tag
// @Tags         tags
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        tag body object true "Tag"
// @Success      201 {object} DTO "Created tag"
// @Failure      400 {string} string "Bad request - invalid input"
// @Router       /tags [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
		Slug string `json:"slug"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	tg, err := h.Svc.Create(r.Context(), tagUC.CreateInput{Name: req.Name, Slug: req.Slug})
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusCreated, fromEntity(tg))
}

type DeleteHandler struct{ Svc *tagUC.Service }

// ServeHTTP deletes a tag.
// @Summary      Delete tag
// @Tags         tags
// @Security     BearerAuth
// @Param        id path string true "Tag ID"
// @Success      204 "No Content"
// @Failure      404 {string} string "Not found - tag not found"
// @Router       /tags/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type AttachHandler struct{ Svc *tagUC.Service }

// ServeHTTP attaches a tag to a tool. Attaching an already attached tag
// is a no-op.
// @Summary      Attach tag to tool
// @Tags         tags
// @Security     BearerAuth
// @Param        id    path string true "Tool ID"
// @Param        tagId path string true "Tag ID"
// @Success      204 "No Content"
// @Failure      400 {string} string "Bad request - invalid input"
// @Router       /tools/{id}/tags/{tagId} [post]
func (h AttachHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.AttachToTool(r.Context(), r.PathValue("id"), r.PathValue("tagId")); err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type DetachHandler struct{ Svc *tagUC.Service }

// ServeHTTP detaches a tag from a tool.
// @Summary      Detach tag from tool
// @Tags         tags
// @Security     BearerAuth
// @Param        id    path string true "Tool ID"
// @Param        tagId path string true "Tag ID"
// @Success      204 "No Content"
// @Failure      400 {string} string "Bad request - invalid input"
// @Router       /tools/{id}/tags/{tagId} [delete]
func (h DetachHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.DetachFromTool(r.Context(), r.PathValue("id"), r.PathValue("tagId")); err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
