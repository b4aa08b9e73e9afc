package timezone

import (
	"time"
	_ "time/tzdata"

	"travelclock/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	zoneArgument    = "timezone"
	patternArgument = "format string"
	instantArgument = "datetime"
	localZoneName   = "Local"
)

// LoadZone resolves an IANA zone identifier against the tz database.
func LoadZone(zone string) (*time.Location, error) {
	if zone == "" || zone == localZoneName {
		log.Debug().Str("timezone", zone).Msg("rejected non-IANA timezone")

		return nil, failure.UnknownZone(zone)
	}

	loc, err := time.LoadLocation(zone)
	if err != nil {
		log.Debug().Err(err).Str("timezone", zone).Msg("unknown timezone")

		return nil, failure.UnknownZone(zone)
	}

	return loc, nil
}

// ValidZone reports whether zone resolves.
func ValidZone(zone string) bool {
	_, err := LoadZone(zone)

	return err == nil
}

// ZoneFromValue accepts a loosely typed zone, e.g. a decoded JSON field.
func ZoneFromValue(value any) (string, error) {
	zone, ok := value.(string)
	if !ok {
		log.Debug().Str("type", typeName(value)).Msg("timezone is not a string")

		return "", failure.TypeMismatch(zoneArgument, value)
	}

	return zone, nil
}

// NowIn returns the current instant displayed in zone.
func (k *Keeper) NowIn(zone string) (time.Time, error) {
	loc, err := LoadZone(zone)
	if err != nil {
		return time.Time{}, err
	}

	return k.NowUTC().In(loc), nil
}

// NowInValue is NowIn for loosely typed input.
func (k *Keeper) NowInValue(value any) (time.Time, error) {
	zone, err := ZoneFromValue(value)
	if err != nil {
		return time.Time{}, err
	}

	return k.NowIn(zone)
}
