package tool

import (
	"net/http"

	"tooldex/internal/handler/http/respond"
	toolUC "tooldex/internal/usecase/tool"
)

type DeleteHandler struct{ Svc *toolUC.Service }

// ServeHTTP deletes a tool.
// @Summary      Delete tool
// @Description  Removes a tool from the directory.
// @Tags         tools
// @Security     BearerAuth
// @Param        id path string true "Tool ID"
// @Success      204 "No Content"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      403 {string} string "Forbidden - admin role required"
// @Failure      404 {string} string "Not found - tool not found"
// @Router       /tools/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
