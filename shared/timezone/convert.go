package timezone

import (
	"fmt"
	"strings"
	"time"

	"travelclock/shared/failure"

	"github.com/rs/zerolog/log"
)

const msgNaiveInstant = "input datetime must have timezone information"

var zonedLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
}

var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

// Convert re-expresses t in target. The absolute instant never changes, so
// the calendar date may move when crossing the date line.
func Convert(t time.Time, target string) (time.Time, error) {
	if t.IsZero() {
		log.Debug().Msg("convert called without an instant")

		return time.Time{}, failure.InvalidInstant(msgNaiveInstant)
	}

	loc, err := LoadZone(target)
	if err != nil {
		return time.Time{}, err
	}

	if t.Location().String() == loc.String() {
		return t, nil
	}

	return t.In(loc), nil
}

// ConvertValue is Convert for loosely typed input.
func ConvertValue(instant, target any) (time.Time, error) {
	t, err := InstantFromValue(instant)
	if err != nil {
		return time.Time{}, err
	}

	zone, err := ZoneFromValue(target)
	if err != nil {
		return time.Time{}, err
	}

	return Convert(t, zone)
}

// InstantFromValue accepts time.Time, *time.Time or a timestamp string with
// an explicit offset. Missing or naive values yield InvalidInstant.
func InstantFromValue(value any) (time.Time, error) {
	switch v := value.(type) {
	case nil:
		return time.Time{}, failure.InvalidInstant(msgNaiveInstant)
	case time.Time:
		if v.IsZero() {
			return time.Time{}, failure.InvalidInstant(msgNaiveInstant)
		}

		return v, nil
	case *time.Time:
		if v == nil || v.IsZero() {
			return time.Time{}, failure.InvalidInstant(msgNaiveInstant)
		}

		return *v, nil
	case Civil:
		return time.Time{}, failure.InvalidInstant(msgNaiveInstant)
	case string:
		return ParseInstant(v)
	default:
		log.Debug().Str("type", typeName(value)).Msg("datetime is not a string")

		return time.Time{}, failure.TypeMismatch(instantArgument, value)
	}
}

// ParseInstant parses an RFC 3339 timestamp. Timestamps without an offset are
// naive and rejected.
func ParseInstant(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, failure.InvalidInstant(msgNaiveInstant)
	}

	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}

	for _, layout := range naiveLayouts {
		if _, err := time.Parse(layout, value); err == nil {
			log.Debug().Str("datetime", value).Msg("naive datetime rejected")

			return time.Time{}, failure.InvalidInstant(msgNaiveInstant)
		}
	}

	return time.Time{}, failure.InvalidInstant(fmt.Sprintf("invalid datetime '%s'", value))
}

func typeName(value any) string {
	return fmt.Sprintf("%T", value)
}
