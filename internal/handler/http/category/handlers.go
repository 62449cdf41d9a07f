package category

import (
	"encoding/json"
	"net/http"

	"tooldex/internal/handler/http/respond"
	catUC "tooldex/internal/usecase/category"
)

type GetHandler struct{ Svc *catUC.Service }

// ServeHTTP serves one category by ID.
// @Summary      Get category
// @Tags         categories
// @Produce      json
// @Param        id path string true "Category ID"
// @Success      200 {object} DTO "Category detail"
// @Failure      404 {string} string "Not found - category not found"
// @Router       /categories/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	c, err := h.Svc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, fromEntity(c))
}

type GetBySlugHandler struct{ Svc *catUC.Service }

// ServeHTTP serves one category by slug.
// @Summary      Get category by slug
// @Tags         categories
// @Produce      json
// @Param        slug path string true "Category slug"
// @Success      200 {object} DTO "Category detail"
// @Failure      404 {string} string "Not found - category not found"
// @Router       /categories/slug/{slug} [get]
func (h GetBySlugHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	c, err := h.Svc.GetBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, fromEntity(c))
}

type CreateHandler struct{ Svc *catUC.Service }

// ServeHTTP creates a category.
// @Summary      Create category
// @Tags         categories
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        category body object true "Category"
// @Success      201 {object} DTO "Created category"
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Router       /categories [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name"`
		Slug        string `json:"slug"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	c, err := h.Svc.Create(r.Context(), catUC.CreateInput{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
	})
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusCreated, fromEntity(c))
}

type UpdateHandler struct{ Svc *catUC.Service }

// ServeHTTP updates a category.
// @Summary      Update category
// @Tags         categories
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path string true "Category ID"
// @Param        category body object true "Fields to update"
// @Success      200 {object} DTO "Updated category"
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      404 {string} string "Not found - category not found"
// @Router       /categories/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name"`
		Slug        string `json:"slug"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	c, err := h.Svc.Update(r.Context(), catUC.UpdateInput{
		ID:          r.PathValue("id"),
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
	})
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, fromEntity(c))
}

type DeleteHandler struct{ Svc *catUC.Service }

// ServeHTTP deletes a category.
// @Summary      Delete category
// @Tags         categories
// @Security     BearerAuth
// @Param        id path string true "Category ID"
// @Success      204 "No Content"
// @Failure      404 {string} string "Not found - category not found"
// @Router       /categories/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
