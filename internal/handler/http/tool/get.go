package tool

import (
	"net/http"

	"tooldex/internal/handler/http/respond"
	toolUC "tooldex/internal/usecase/tool"
)

type GetHandler struct{ Svc *toolUC.Service }

// ServeHTTP serves one tool by ID.
// @Summary      Get tool
// @Description  Returns the tool with the given ID.
// @Tags         tools
// @Produce      json
// @Param        id path string true "Tool ID"
// @Success      200 {object} DTO "Tool detail"
// @Failure      404 {string} string "Not found - tool not found"
// @Failure      500 {string} string "Internal server error"
// @Router       /tools/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	t, err := h.Svc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, fromEntity(t))
}

type GetBySlugHandler struct{ Svc *toolUC.Service }

// ServeHTTP serves one tool by slug.
// @Summary      Get tool by slug
// @Description  Returns the tool with the given URL slug.
// @Tags         tools
// @Produce      json
// @Param        slug path string true "Tool slug"
// @Success      200 {object} DTO "Tool detail"
// @Failure      404 {string} string "Not found - tool not found"
// @Failure      500 {string} string "Internal server error"
// @Router       /tools/slug/{slug} [get]
func (h GetBySlugHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	t, err := h.Svc.GetBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, fromEntity(t))
}
