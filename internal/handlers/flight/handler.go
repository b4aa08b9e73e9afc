package flight

import (
	"net/http"

	"travelclock/infras/otel"
	"travelclock/internal/domains/flight/model/dto"
	"travelclock/internal/domains/flight/service"
	"travelclock/shared/constant"
	"travelclock/shared/validator"
	"travelclock/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Flight
	otel    otel.Otel
}

func New(service service.Flight, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/flights", func(routerGroup chi.Router) {
		routerGroup.Post("/plan", handler.Plan)
	})
}

// Plan works out the local arrival time of a flight.
// @Summary Plan a flight
// @Description Localize the departure in the departure city, add the duration and show the arrival in the arrival city.
// @Tags Flight
// @Accept json
// @Produce json
// @Param request body dto.PlanRequest true "Plan Request"
// @Success 200 {object} response.Data[dto.PlanResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/flights/plan [post]
func (handler *Handler) Plan(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Plan")
	defer scope.End()

	req := dto.PlanRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Plan(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to plan flight")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Flight planned from " + res.Departure.City + " to " + res.Arrival.City)

	response.WithJSON(writer, http.StatusOK, res)
}
