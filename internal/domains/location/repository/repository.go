package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"strconv"
	"strings"

	"travelclock/config"
	"travelclock/internal/domains/location/model"
	"travelclock/shared/failure"
	"travelclock/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Location interface {
	GetAll(ctx context.Context) ([]model.Location, error)
	Get(ctx context.Context, name string) (model.Location, error)
}

type repositoryImpl struct {
	locations []model.Location
}

// New builds the city table from APP_LOCATIONS, or the defaults when unset.
func New(cfg *config.Config) Location {
	return NewFromEntries(cfg.App.Locations)
}

// NewFromEntries parses "City=Zone" entries. Entries with unknown zones are
// skipped; if none survive the defaults are used.
func NewFromEntries(entries []string) Location {
	locations := make([]model.Location, 0, len(entries))

	for _, entry := range entries {
		name, zone, ok := strings.Cut(entry, "=")
		name, zone = strings.TrimSpace(name), strings.TrimSpace(zone)

		if !ok || name == "" {
			log.Warn().Str("entry", entry).Msg("ignoring malformed location, expected City=Zone")

			continue
		}

		if !timezone.ValidZone(zone) {
			log.Warn().Str("city", name).Str("timezone", zone).Msg("ignoring location with invalid timezone")

			continue
		}

		locations = append(locations, model.Location{Name: name, Zone: zone, Pattern: model.PatternFor(zone)})
	}

	if len(locations) == 0 {
		locations = append(locations, model.Defaults...)
	}

	return &repositoryImpl{locations: locations}
}

func (r *repositoryImpl) GetAll(_ context.Context) ([]model.Location, error) {
	res := make([]model.Location, len(r.locations))
	copy(res, r.locations)

	return res, nil
}

// Get looks a city up by case-insensitive name or by its 1-based menu number.
func (r *repositoryImpl) Get(_ context.Context, name string) (model.Location, error) {
	name = strings.TrimSpace(name)

	if idx, err := strconv.Atoi(name); err == nil {
		if idx >= 1 && idx <= len(r.locations) {
			return r.locations[idx-1], nil
		}

		return model.Location{}, failure.NotFound("location not found: " + name)
	}

	for _, loc := range r.locations {
		if strings.EqualFold(loc.Name, name) {
			return loc, nil
		}
	}

	return model.Location{}, failure.NotFound("location not found: " + name)
}
