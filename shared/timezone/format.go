package timezone

import (
	"fmt"
	"time"

	"travelclock/shared/failure"

	"github.com/lestrrat-go/strftime"
	"github.com/rs/zerolog/log"
)

// Directives beyond the POSIX set: %L milliseconds, %f microseconds, %s unix seconds.
var formatOptions = []strftime.Option{
	strftime.WithMilliseconds('L'),
	strftime.WithMicroseconds('f'),
	strftime.WithUnixSeconds('s'),
}

// Format renders t with a strftime pattern. An empty pattern renders as "".
func Format(t time.Time, pattern string) (res string, err error) {
	if t.IsZero() {
		log.Debug().Msg("format called without an instant")

		return "", failure.InvalidInstant("invalid datetime object")
	}

	if pattern == "" {
		return "", nil
	}

	defer func() {
		if r := recover(); r != nil {
			log.Debug().Str("pattern", pattern).Interface("panic", r).Msg("format panicked")

			res, err = "", failure.FormatFailure(fmt.Errorf("%v", r))
		}
	}()

	f, err := strftime.New(pattern, formatOptions...)
	if err != nil {
		log.Debug().Err(err).Str("pattern", pattern).Msg("invalid format string")

		return "", failure.FormatFailure(err)
	}

	return f.FormatString(t), nil
}

// FormatValue is Format for a loosely typed pattern.
func FormatValue(t time.Time, pattern any) (string, error) {
	p, ok := pattern.(string)
	if !ok {
		log.Debug().Str("type", typeName(pattern)).Msg("format string is not a string")

		return "", failure.TypeMismatch(patternArgument, pattern)
	}

	return Format(t, p)
}

// ValidPattern reports whether pattern compiles.
func ValidPattern(pattern string) bool {
	if pattern == "" {
		return true
	}

	_, err := strftime.New(pattern, formatOptions...)

	return err == nil
}
