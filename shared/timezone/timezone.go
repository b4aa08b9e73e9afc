package timezone

import (
	"time"

	"travelclock/config"

	"github.com/rs/zerolog/log"
)

const defaultZone = "UTC"

var std = &Keeper{clock: SystemClock{}, home: time.UTC}

// Keeper pairs a clock with the application's home zone. It is immutable and
// safe for concurrent use.
type Keeper struct {
	clock Clock
	home  *time.Location
}

// New builds a Keeper. An empty or unknown home zone falls back to UTC.
func New(clock Clock, home string) *Keeper {
	if clock == nil {
		clock = SystemClock{}
	}

	if home == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")

		home = defaultZone
	}

	loc, err := LoadZone(home)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", home).
			Msg("Failed to load timezone, falling back to UTC. Please use standard timezone names like 'Asia/Jakarta', 'UTC', 'America/New_York'")

		loc = time.UTC
	}

	return &Keeper{clock: clock, home: loc}
}

// NewFromConfig builds a system-clock Keeper using APP_TIMEZONE as home zone.
func NewFromConfig(cfg *config.Config) *Keeper {
	k := New(SystemClock{}, cfg.App.Timezone)

	log.Info().
		Str("timezone", cfg.App.Timezone).
		Str("location", k.home.String()).
		Msg("Application timezone initialized")

	return k
}

// NowUTC returns the current instant in UTC. It never fails.
func (k *Keeper) NowUTC() time.Time {
	return k.clock.Now().UTC()
}

// Now returns the current time in the home zone.
func (k *Keeper) Now() time.Time {
	return k.NowUTC().In(k.home)
}

// Home returns the home zone.
func (k *Keeper) Home() *time.Location {
	return k.home
}

// ToHome re-expresses t in the home zone.
func (k *Keeper) ToHome(t time.Time) time.Time {
	return t.In(k.home)
}

// Parse parses a time string in the home zone.
func (k *Keeper) Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, k.home)
}

// Difference measures zone2 minus zone1 at the keeper's current instant.
func (k *Keeper) Difference(zone1, zone2 string) (Offset, error) {
	return DifferenceAt(k.NowUTC(), zone1, zone2)
}

// DifferenceValues is Difference for loosely typed input.
func (k *Keeper) DifferenceValues(value1, value2 any) (Offset, error) {
	zone1, err := ZoneFromValue(value1)
	if err != nil {
		return Offset{}, err
	}

	zone2, err := ZoneFromValue(value2)
	if err != nil {
		return Offset{}, err
	}

	return k.Difference(zone1, zone2)
}

// NowUTC returns the current instant in UTC.
func NowUTC() time.Time {
	return std.NowUTC()
}

// NowIn returns the current instant displayed in zone.
func NowIn(zone string) (time.Time, error) {
	return std.NowIn(zone)
}

// NowInValue is NowIn for loosely typed input.
func NowInValue(value any) (time.Time, error) {
	return std.NowInValue(value)
}

// Difference measures zone2 minus zone1 at the current instant.
func Difference(zone1, zone2 string) (Offset, error) {
	return std.Difference(zone1, zone2)
}

// DifferenceValues is Difference for loosely typed input.
func DifferenceValues(value1, value2 any) (Offset, error) {
	return std.DifferenceValues(value1, value2)
}
