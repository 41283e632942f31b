package router

import (
	"frontdesk/internal/handlers/console"
	"frontdesk/internal/handlers/guest"
	"frontdesk/internal/handlers/room"
	"frontdesk/internal/handlers/roomtype"
	"frontdesk/internal/handlers/session"
	"frontdesk/internal/handlers/wizard"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Guest    guest.Handler
	RoomType roomtype.Handler
	Room     room.Handler
	Session  session.Handler
	Wizard   wizard.Handler
	Console  console.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Guest.Router(routerGroup)
		r.DomainHandlers.RoomType.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Session.Router(routerGroup)
		r.DomainHandlers.Wizard.Router(routerGroup)
		r.DomainHandlers.Console.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
