package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"travelclock/infras/otel"
	"travelclock/internal/domains/clock/model/dto"
	locationModel "travelclock/internal/domains/location/model"
	"travelclock/internal/domains/location/repository"
	"travelclock/shared/constant"
	"travelclock/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Clock interface {
	UTC(ctx context.Context) (dto.TimeResponse, error)
	Now(ctx context.Context, zone any) (dto.TimeResponse, error)
	Convert(ctx context.Context, req dto.ConvertRequest) (dto.TimeResponse, error)
	Format(ctx context.Context, req dto.FormatRequest) (dto.FormatResponse, error)
	Difference(ctx context.Context, from, to any) (dto.DifferenceResponse, error)
	Locations(ctx context.Context) ([]dto.LocationResponse, error)
	WorldClock(ctx context.Context, query dto.WorldClockQuery) (dto.WorldClockResponse, error)
	Compare(ctx context.Context, home, destination string) (dto.CompareResponse, error)
}

type serviceImpl struct {
	keeper    *timezone.Keeper
	locations repository.Location
	otel      otel.Otel
}

func New(keeper *timezone.Keeper, locations repository.Location, otel otel.Otel) Clock {
	return &serviceImpl{
		keeper:    keeper,
		locations: locations,
		otel:      otel,
	}
}

func (s *serviceImpl) UTC(ctx context.Context) (res dto.TimeResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UTC")
	defer scope.End()

	now := s.keeper.NowUTC()

	res.FromTime(now)
	res.Formatted, err = timezone.Format(now, constant.PatternUTC)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to format UTC time")

		return res, fmt.Errorf("failed to format UTC time: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) Now(ctx context.Context, zone any) (res dto.TimeResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Now")
	defer scope.End()

	now, err := s.keeper.NowInValue(zone)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Interface("timezone", zone).Msg("failed to get current time in timezone")

		return res, err
	}

	res.FromTime(now)
	res.Formatted, err = timezone.Format(now, locationModel.PatternFor(res.Zone))
	if err != nil {
		scope.TraceError(err)

		return res, fmt.Errorf("failed to format current time: %w", err)
	}

	scope.SetAttribute("timezone", res.Zone)

	return res, nil
}

func (s *serviceImpl) Convert(ctx context.Context, req dto.ConvertRequest) (res dto.TimeResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Convert")
	defer scope.End()

	converted, err := timezone.ConvertValue(req.Instant, req.TargetZone)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Interface("target_zone", req.TargetZone).Msg("failed to convert timezone")

		return res, err
	}

	res.FromTime(converted)
	res.Formatted, err = timezone.Format(converted, locationModel.PatternFor(res.Zone))
	if err != nil {
		scope.TraceError(err)

		return res, fmt.Errorf("failed to format converted time: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) Format(ctx context.Context, req dto.FormatRequest) (res dto.FormatResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Format")
	defer scope.End()

	instant, err := timezone.InstantFromValue(req.Instant)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read instant")

		return res, err
	}

	if req.Zone != "" {
		instant, err = timezone.Convert(instant, req.Zone)
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Str("timezone", req.Zone).Msg("failed to convert before formatting")

			return res, err
		}
	}

	res.Formatted, err = timezone.FormatValue(instant, req.Pattern)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Interface("pattern", req.Pattern).Msg("failed to format timestamp")

		return res, err
	}

	return res, nil
}

func (s *serviceImpl) Difference(ctx context.Context, from, to any) (res dto.DifferenceResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Difference")
	defer scope.End()

	offset, err := s.keeper.DifferenceValues(from, to)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Interface("from", from).Interface("to", to).Msg("failed to calculate time difference")

		return res, err
	}

	// DifferenceValues only succeeds for string zones.
	res.FromOffset(from.(string), to.(string), offset)

	scope.SetAttributes(map[string]any{
		"offset.hours":   offset.Hours,
		"offset.minutes": offset.Minutes,
	})

	return res, nil
}

func (s *serviceImpl) Locations(ctx context.Context) ([]dto.LocationResponse, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Locations")
	defer scope.End()

	models, err := s.locations.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get locations")

		return nil, fmt.Errorf("failed to get locations: %w", err)
	}

	res := make([]dto.LocationResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res, nil
}

func (s *serviceImpl) WorldClock(ctx context.Context, query dto.WorldClockQuery) (res dto.WorldClockResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".WorldClock")
	defer scope.End()

	models, err := s.locations.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get locations")

		return res, fmt.Errorf("failed to get locations: %w", err)
	}

	now := s.keeper.NowUTC()

	res.UTC, err = timezone.Format(now, constant.PatternUTC)
	if err != nil {
		scope.TraceError(err)

		return res, fmt.Errorf("failed to format UTC time: %w", err)
	}

	res.Cities = make([]dto.LocationTime, 0, len(models))

	for _, mod := range models {
		pattern := mod.Pattern
		if query.Pattern != "" {
			pattern = query.Pattern
		}

		entry, err := s.locationTime(now, mod, pattern)
		if err != nil {
			log.Warn().Err(err).Str("city", mod.Name).Msg("skipping location in world clock")

			continue
		}

		res.Cities = append(res.Cities, entry)
	}

	return res, nil
}

func (s *serviceImpl) Compare(ctx context.Context, home, destination string) (res dto.CompareResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Compare")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	homeLoc, err := s.locations.Get(ctx, home)
	if err != nil {
		log.Error().Err(err).Str("home", home).Msg("failed to find home location")

		return res, err
	}

	destLoc, err := s.locations.Get(ctx, destination)
	if err != nil {
		log.Error().Err(err).Str("destination", destination).Msg("failed to find destination location")

		return res, err
	}

	now := s.keeper.NowUTC()

	if res.Home, err = s.locationTime(now, homeLoc, constant.PatternCompare); err != nil {
		return res, err
	}

	if res.Destination, err = s.locationTime(now, destLoc, constant.PatternCompare); err != nil {
		return res, err
	}

	offset, err := timezone.DifferenceAt(now, homeLoc.Zone, destLoc.Zone)
	if err != nil {
		log.Error().Err(err).Msg("failed to calculate time difference")

		return res, err
	}

	res.Difference.FromOffset(homeLoc.Zone, destLoc.Zone, offset)

	return res, nil
}

func (s *serviceImpl) locationTime(now time.Time, loc locationModel.Location, pattern string) (dto.LocationTime, error) {
	local, err := timezone.Convert(now, loc.Zone)
	if err != nil {
		return dto.LocationTime{}, err
	}

	formatted, err := timezone.Format(local, pattern)
	if err != nil {
		return dto.LocationTime{}, err
	}

	return dto.LocationTime{
		City:      loc.Name,
		Zone:      loc.Zone,
		Timestamp: local.Format(constant.DateFormat),
		Formatted: formatted,
	}, nil
}
