package tool

import (
	"log/slog"
	"net/http"

	"tooldex/internal/common/pagination"
	"tooldex/internal/handler/http/auth"
	toolUC "tooldex/internal/usecase/tool"
)

// Register registers all tool-related HTTP handlers with the given mux.
// Listing and detail routes are public; mutations require authentication
// via the auth middleware.
func Register(mux *http.ServeMux, svc *toolUC.Service, paginationCfg pagination.Config, logger *slog.Logger) {
	mux.Handle("GET    /tools", ListHandler{
		Svc:           svc,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	})
	mux.Handle("GET    /tools/slug/{slug}", GetBySlugHandler{svc})
	mux.Handle("GET    /tools/{id}", GetHandler{svc})

	mux.Handle("POST   /tools", auth.Authz(CreateHandler{svc}))
	mux.Handle("PUT    /tools/{id}", auth.Authz(UpdateHandler{svc}))
	mux.Handle("DELETE /tools/{id}", auth.Authz(DeleteHandler{svc}))
}
