package router

import (
	"salon/internal/handlers/admin"
	"salon/internal/handlers/client"
	"salon/internal/handlers/salon"
	"salon/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

// DomainHandlers groups one handler per role.
type DomainHandlers struct {
	Admin  admin.Handler
	Salon  salon.Handler
	Client client.Handler
	User   user.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Admin.Router(routerGroup)
		r.DomainHandlers.Salon.Router(routerGroup)
		r.DomainHandlers.Client.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
