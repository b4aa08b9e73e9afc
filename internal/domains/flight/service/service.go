package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"math"
	"time"

	"travelclock/infras/otel"
	"travelclock/internal/domains/flight/model/dto"
	"travelclock/internal/domains/location/repository"
	"travelclock/shared/constant"
	"travelclock/shared/failure"
	"travelclock/shared/timezone"

	"github.com/rs/zerolog/log"
)

// maxDurationHours is the longest flight a time.Duration can hold.
var maxDurationHours = float64(math.MaxInt64) / float64(time.Hour)

type Flight interface {
	Plan(ctx context.Context, req dto.PlanRequest) (dto.PlanResponse, error)
}

type serviceImpl struct {
	keeper    *timezone.Keeper
	locations repository.Location
	otel      otel.Otel
}

func New(keeper *timezone.Keeper, locations repository.Location, otel otel.Otel) Flight {
	return &serviceImpl{
		keeper:    keeper,
		locations: locations,
		otel:      otel,
	}
}

func (s *serviceImpl) Plan(ctx context.Context, req dto.PlanRequest) (res dto.PlanResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Plan")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if math.IsNaN(req.DurationHours) || math.IsInf(req.DurationHours, 0) {
		return res, failure.BadRequestFromString("flight duration must be a finite number of hours")
	}

	if req.DurationHours <= 0 {
		return res, failure.BadRequestFromString("flight duration must be greater than zero")
	}

	if req.DurationHours > maxDurationHours {
		return res, failure.BadRequestFromString("flight duration is too long")
	}

	departure, err := s.locations.Get(ctx, req.Departure)
	if err != nil {
		log.Error().Err(err).Str("departure", req.Departure).Msg("failed to find departure city")

		return res, err
	}

	arrival, err := s.locations.Get(ctx, req.Arrival)
	if err != nil {
		log.Error().Err(err).Str("arrival", req.Arrival).Msg("failed to find arrival city")

		return res, err
	}

	civil, err := timezone.ParseCivil(req.Date, req.Time)
	if err != nil {
		return res, err
	}

	departs, err := timezone.Localize(civil, departure.Zone)
	if err != nil {
		log.Error().Err(err).Str("timezone", departure.Zone).Msg("failed to localize departure")

		return res, err
	}

	departsUTC, err := timezone.Convert(departs, "UTC")
	if err != nil {
		return res, err
	}

	arrives, err := timezone.Convert(departsUTC.Add(req.Duration()), arrival.Zone)
	if err != nil {
		log.Error().Err(err).Str("timezone", arrival.Zone).Msg("failed to convert arrival")

		return res, err
	}

	if err = s.fillLeg(&res.Departure, departure.Name, departs); err != nil {
		return res, err
	}

	if err = s.fillLeg(&res.Arrival, arrival.Name, arrives); err != nil {
		return res, err
	}

	offset, err := s.keeper.Difference(departure.Zone, arrival.Zone)
	if err != nil {
		return res, err
	}

	res.Duration = req.Duration().String()
	res.Difference = offset
	res.Display = offset.String()

	scope.SetAttributes(map[string]any{
		"flight.departure": departure.Name,
		"flight.arrival":   arrival.Name,
		"flight.duration":  res.Duration,
	})

	log.Debug().
		Str("departure", departure.Name).
		Str("arrival", arrival.Name).
		Time("arrives", arrives).
		Msg("flight planned")

	return res, nil
}

func (s *serviceImpl) fillLeg(leg *dto.Leg, city string, t time.Time) error {
	formatted, err := timezone.Format(t, constant.PatternFlight)
	if err != nil {
		return err
	}

	leg.FromTime(city, t, formatted)

	return nil
}
