package category

import (
	"log/slog"
	"net/http"

	"tooldex/internal/common/pagination"
	"tooldex/internal/handler/http/auth"
	catUC "tooldex/internal/usecase/category"
)

// Register registers all category-related HTTP handlers with the given mux.
// Read routes are public; mutations require authentication.
func Register(mux *http.ServeMux, svc *catUC.Service, paginationCfg pagination.Config, logger *slog.Logger) {
	mux.Handle("GET    /categories", ListHandler{
		Svc:           svc,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	})
	mux.Handle("GET    /categories/slug/{slug}", GetBySlugHandler{svc})
	mux.Handle("GET    /categories/{id}", GetHandler{svc})

	mux.Handle("POST   /categories", auth.Authz(CreateHandler{svc}))
	mux.Handle("PUT    /categories/{id}", auth.Authz(UpdateHandler{svc}))
	mux.Handle("DELETE /categories/{id}", auth.Authz(DeleteHandler{svc}))
}
