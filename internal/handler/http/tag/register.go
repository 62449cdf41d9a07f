package tag

import (
	"log/slog"
	"net/http"

	"tooldex/internal/common/pagination"
	"tooldex/internal/handler/http/auth"
	tagUC "tooldex/internal/usecase/tag"
)

// Register registers all tag-related HTTP handlers with the given mux,
// including the tool-tag attachment routes. Read routes are public;
// mutations require authentication.
func Register(mux *http.ServeMux, svc *tagUC.Service, paginationCfg pagination.Config, logger *slog.Logger) {
	mux.Handle("GET    /tags", ListHandler{
		Svc:           svc,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	})
	mux.Handle("GET    /tags/{id}", GetHandler{svc})

	mux.Handle("POST   /tags", auth.Authz(CreateHandler{svc}))
	mux.Handle("DELETE /tags/{id}", auth.Authz(DeleteHandler{svc}))

	mux.Handle("POST   /tools/{id}/tags/{tagId}", auth.Authz(AttachHandler{svc}))
	mux.Handle("DELETE /tools/{id}/tags/{tagId}", auth.Authz(DetachHandler{svc}))
}
