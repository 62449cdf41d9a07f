package affiliate

import (
	"net/http"

	"tooldex/internal/handler/http/auth"
	affUC "tooldex/internal/usecase/affiliate"
)

// Register registers all affiliate-link HTTP handlers with the given mux.
// Every route requires authentication.
func Register(mux *http.ServeMux, svc *affUC.Service) {
	mux.Handle("GET    /tools/{id}/affiliate-links", auth.Authz(ListByToolHandler{svc}))
	mux.Handle("POST   /tools/{id}/affiliate-links", auth.Authz(CreateHandler{svc}))

	mux.Handle("DELETE /affiliate-links/{id}", auth.Authz(DeleteHandler{svc}))
}
