package tool

import (
	"encoding/json"
	"net/http"

	"tooldex/internal/handler/http/respond"
	toolUC "tooldex/internal/usecase/tool"
)

type UpdateHandler struct{ Svc *toolUC.Service }

// ServeHTTP updates an existing tool.
// @Summary      Update tool
// @Description  Partially updates a tool. Omitted fields are left unchanged; a changed slug must be free.
// @Tags         tools
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id   path string true "Tool ID"
// @Param        tool body object true "Fields to update"
// @Success      200 {object} DTO "Updated tool"
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      403 {string} string "Forbidden - admin role required"
// @Failure      404 {string} string "Not found - tool not found"
// @Failure      409 {string} string "Conflict - slug already exists"
// @Router       /tools/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CategoryID  string `json:"categoryId"`
		Name        string `json:"name"`
		Slug        string `json:"slug"`
		Tagline     string `json:"tagline"`
		Description string `json:"description"`
		WebsiteURL  string `json:"websiteUrl"`
		Featured    *bool  `json:"featured"`
		Status      string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	t, err := h.Svc.Update(r.Context(), toolUC.UpdateInput{
		ID:          r.PathValue("id"),
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Slug:        req.Slug,
		Tagline:     req.Tagline,
		Description: req.Description,
		WebsiteURL:  req.WebsiteURL,
		Featured:    req.Featured,
		Status:      req.Status,
	})
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, fromEntity(t))
}
