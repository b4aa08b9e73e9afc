package router

import (
	"travelclock/internal/handlers/clock"
	"travelclock/internal/handlers/flight"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Clock  clock.Handler
	Flight flight.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Clock.Router(routerGroup)
		r.DomainHandlers.Flight.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
