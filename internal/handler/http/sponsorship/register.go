package sponsorship

import (
	"net/http"

	"tooldex/internal/handler/http/auth"
	spUC "tooldex/internal/usecase/sponsorship"
)

// Register registers all sponsorship-related HTTP handlers with the given
// mux. Sponsorships are an admin surface, so every route requires
// authentication.
func Register(mux *http.ServeMux, svc *spUC.Service) {
	mux.Handle("GET    /tools/{id}/sponsorships", auth.Authz(ListByToolHandler{svc}))
	mux.Handle("POST   /tools/{id}/sponsorships", auth.Authz(CreateHandler{svc}))

	mux.Handle("GET    /sponsorships/{id}", auth.Authz(GetHandler{svc}))
	mux.Handle("PUT    /sponsorships/{id}", auth.Authz(UpdateHandler{svc}))
	mux.Handle("DELETE /sponsorships/{id}", auth.Authz(DeleteHandler{svc}))

	mux.Handle("POST   /admin/sponsorships/sweep", auth.Authz(SweepHandler{svc}))
}
