//go:build wireinject
// +build wireinject

package di

import (
	"frontdesk/config"
	"frontdesk/infras/hotelapi"
	"frontdesk/infras/otel"
	"frontdesk/internal/cli"
	"frontdesk/shared/cache"
	"frontdesk/transport/http"
	"frontdesk/transport/http/middleware"
	"frontdesk/transport/http/router"

	consoleService "frontdesk/internal/domains/console/service"
	guestRepository "frontdesk/internal/domains/guest/repository"
	guestService "frontdesk/internal/domains/guest/service"
	roomRepository "frontdesk/internal/domains/room/repository"
	roomService "frontdesk/internal/domains/room/service"
	roomTypeRepository "frontdesk/internal/domains/roomtype/repository"
	roomTypeService "frontdesk/internal/domains/roomtype/service"
	sessionRepository "frontdesk/internal/domains/session/repository"
	sessionService "frontdesk/internal/domains/session/service"
	wizardService "frontdesk/internal/domains/wizard/service"

	consoleHandler "frontdesk/internal/handlers/console"
	guestHandler "frontdesk/internal/handlers/guest"
	roomHandler "frontdesk/internal/handlers/room"
	roomTypeHandler "frontdesk/internal/handlers/roomtype"
	sessionHandler "frontdesk/internal/handlers/session"
	wizardHandler "frontdesk/internal/handlers/wizard"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	hotelapi.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.New,
)

var guestDomain = wire.NewSet(
	guestRepository.New,
	guestService.New,
)

var roomTypeDomain = wire.NewSet(
	roomTypeRepository.New,
	roomTypeService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var sessionDomain = wire.NewSet(
	sessionRepository.New,
	sessionService.New,
)

var domains = wire.NewSet(
	guestDomain,
	roomTypeDomain,
	roomDomain,
	sessionDomain,
	wizardService.New,
	consoleService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	guestHandler.New,
	roomTypeHandler.New,
	roomHandler.New,
	sessionHandler.New,
	wizardHandler.New,
	consoleHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

func InitializeCLI() *cli.App {
	wire.Build(
		configurations,
		infrastructures,
		sharedHelpers,
		guestDomain,
		roomTypeDomain,
		roomDomain,
		sessionDomain,
		wizardService.New,
		wire.Struct(new(cli.App), "*"),
	)

	return &cli.App{}
}
