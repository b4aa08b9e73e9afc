package clock

import (
	"net/http"

	"travelclock/infras/otel"
	"travelclock/internal/domains/clock/model/dto"
	"travelclock/internal/domains/clock/service"
	"travelclock/shared/constant"
	"travelclock/shared/validator"
	"travelclock/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Clock
	otel    otel.Otel
}

func New(service service.Clock, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/time", func(routerGroup chi.Router) {
		routerGroup.Get("/utc", handler.GetUTC)
		routerGroup.Get("/now", handler.GetNow)
		routerGroup.Post("/convert", handler.Convert)
		routerGroup.Post("/format", handler.Format)
		routerGroup.Get("/difference", handler.GetDifference)
	})

	router.Route("/locations", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetLocations)
		routerGroup.Get("/times", handler.GetWorldClock)
		routerGroup.Get("/compare", handler.Compare)
	})
}

// GetUTC returns the current UTC time.
// @Summary Current UTC time
// @Tags Time
// @Produce json
// @Success 200 {object} response.Data[dto.TimeResponse]
// @Failure 500 {object} response.Error
// @Router /v1/time/utc [get]
func (handler *Handler) GetUTC(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUTC")
	defer scope.End()

	res, err := handler.service.UTC(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get UTC time")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetNow returns the current time in a zone.
// @Summary Current time in a timezone
// @Tags Time
// @Produce json
// @Param zone query string true "IANA timezone" example(Asia/Tokyo)
// @Success 200 {object} response.Data[dto.TimeResponse]
// @Failure 400 {object} response.Error
// @Router /v1/time/now [get]
func (handler *Handler) GetNow(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetNow")
	defer scope.End()

	zone := request.URL.Query().Get(constant.RequestParamZone)

	res, err := handler.service.Now(ctx, zone)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("timezone", zone).Msg("failed to get current time")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// Convert re-expresses an instant in another zone.
// @Summary Convert a timestamp between timezones
// @Tags Time
// @Accept json
// @Produce json
// @Param request body dto.ConvertRequest true "Convert Request"
// @Success 200 {object} response.Data[dto.TimeResponse]
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/time/convert [post]
func (handler *Handler) Convert(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Convert")
	defer scope.End()

	req := dto.ConvertRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Convert(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to convert timestamp")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// Format renders an instant with a strftime pattern.
// @Summary Format a timestamp
// @Tags Time
// @Accept json
// @Produce json
// @Param request body dto.FormatRequest true "Format Request"
// @Success 200 {object} response.Data[dto.FormatResponse]
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/time/format [post]
func (handler *Handler) Format(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Format")
	defer scope.End()

	req := dto.FormatRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Format(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to format timestamp")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetDifference returns the offset of one zone relative to another.
// @Summary Offset difference between two timezones
// @Tags Time
// @Produce json
// @Param from query string true "Reference timezone" example(America/New_York)
// @Param to query string true "Compared timezone" example(Asia/Tokyo)
// @Success 200 {object} response.Data[dto.DifferenceResponse]
// @Failure 400 {object} response.Error
// @Router /v1/time/difference [get]
func (handler *Handler) GetDifference(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDifference")
	defer scope.End()

	from := request.URL.Query().Get(constant.RequestParamFrom)
	to := request.URL.Query().Get(constant.RequestParamTo)

	res, err := handler.service.Difference(ctx, from, to)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("from", from).Str("to", to).Msg("failed to calculate time difference")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetLocations lists the known cities.
// @Summary List cities
// @Tags Locations
// @Produce json
// @Success 200 {object} response.Data[[]dto.LocationResponse]
// @Failure 500 {object} response.Error
// @Router /v1/locations [get]
func (handler *Handler) GetLocations(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLocations")
	defer scope.End()

	res, err := handler.service.Locations(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get locations")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetWorldClock shows the current time in every city.
// @Summary Current times around the world
// @Tags Locations
// @Produce json
// @Param pattern query string false "strftime pattern applied to every city"
// @Success 200 {object} response.Data[dto.WorldClockResponse]
// @Failure 400 {object} response.Error
// @Router /v1/locations/times [get]
func (handler *Handler) GetWorldClock(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetWorldClock")
	defer scope.End()

	query := dto.WorldClockQuery{Pattern: request.URL.Query().Get(constant.RequestParamPattern)}

	if err := validator.ValidateStruct(&query); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate query")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.WorldClock(ctx, query)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get world clock")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// Compare shows home and destination times side by side.
// @Summary Compare home and destination times
// @Tags Locations
// @Produce json
// @Param home query string true "Home city name or number" example(New York)
// @Param destination query string true "Destination city name or number" example(Tokyo)
// @Success 200 {object} response.Data[dto.CompareResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/locations/compare [get]
func (handler *Handler) Compare(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Compare")
	defer scope.End()

	query := dto.CompareQuery{
		Home:        request.URL.Query().Get(constant.RequestParamHome),
		Destination: request.URL.Query().Get(constant.RequestParamDestination),
	}

	if err := validator.ValidateStruct(&query); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate query")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Compare(ctx, query.Home, query.Destination)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to compare locations")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Compared " + query.Home + " with " + query.Destination)

	response.WithJSON(writer, http.StatusOK, res)
}
