package tool

import (
	"encoding/json"
	"net/http"

	"tooldex/internal/handler/http/respond"
	toolUC "tooldex/internal/usecase/tool"
)

type CreateHandler struct{ Svc *toolUC.Service }

// ServeHTTP submits a new tool.
// @Summary      Submit tool
// @Description  Creates a new tool. Blank tagline and description are filled from the website's page metadata when available.
// @Tags         tools
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        tool body object true "Tool submission"
// @Success      201 {object} DTO "Created tool"
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      403 {string} string "Forbidden - admin role required"
// @Failure      409 {string} string "Conflict - slug already exists"
// @Router       /tools [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CategoryID  string   `json:"categoryId"`
		Name        string   `json:"name"`
		Slug        string   `json:"slug"`
		Tagline     string   `json:"tagline"`
		Description string   `json:"description"`
		WebsiteURL  string   `json:"websiteUrl"`
		Featured    bool     `json:"featured"`
		Status      string   `json:"status"`
		TagIDs      []string `json:"tagIds"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	t, err := h.Svc.Create(r.Context(), toolUC.CreateInput{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Slug:        req.Slug,
		Tagline:     req.Tagline,
		Description: req.Description,
		WebsiteURL:  req.WebsiteURL,
		Featured:    req.Featured,
		Status:      req.Status,
		TagIDs:      req.TagIDs,
	})
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusCreated, fromEntity(t))
}
