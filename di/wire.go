//go:build wireinject
// +build wireinject

package di

import (
	"io"

	"travelclock/config"
	"travelclock/internal/cli"
	"travelclock/infras/otel"
	"travelclock/shared/timezone"
	"travelclock/transport/http"
	"travelclock/transport/http/middleware"
	"travelclock/transport/http/router"

	clockService "travelclock/internal/domains/clock/service"
	flightService "travelclock/internal/domains/flight/service"
	locationRepository "travelclock/internal/domains/location/repository"
	clockHandler "travelclock/internal/handlers/clock"
	flightHandler "travelclock/internal/handlers/flight"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	timezone.NewFromConfig,
)

var locationDomain = wire.NewSet(
	locationRepository.New,
)

var clockDomain = wire.NewSet(
	clockService.New,
)

var flightDomain = wire.NewSet(
	flightService.New,
)

var domains = wire.NewSet(
	locationDomain,
	clockDomain,
	flightDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	clockHandler.New,
	flightHandler.New,
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

func InitializePlanner(prompter cli.Prompter, out io.Writer) *cli.Planner {
	wire.Build(
		configurations,
		infrastructures,
		sharedHelpers,
		domains,
		cli.New,
	)

	return &cli.Planner{}
}
