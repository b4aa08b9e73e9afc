package timezone

import (
	"fmt"
	"strings"
	"time"

	"travelclock/shared/constant"
	"travelclock/shared/failure"
)

// Civil is a naive wall-clock reading with no zone attached.
type Civil struct {
	Year   int
	Month  time.Month
	Day    int
	Hour   int
	Minute int
}

// ParseCivil reads a YYYY-MM-DD date and an HH:MM 24-hour time.
func ParseCivil(date, clock string) (Civil, error) {
	value := strings.TrimSpace(date) + " " + strings.TrimSpace(clock)

	t, err := time.Parse(constant.CivilDateTimeLayout, value)
	if err != nil {
		return Civil{}, failure.InvalidInstant("invalid date or time format, use YYYY-MM-DD for date and HH:MM for time")
	}

	return Civil{
		Year:   t.Year(),
		Month:  t.Month(),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
	}, nil
}

func (c Civil) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d", c.Year, int(c.Month), c.Day, c.Hour, c.Minute)
}

// Localize attaches zone to the wall-clock reading. Readings inside a DST gap
// are normalized forward by the time package.
func Localize(c Civil, zone string) (time.Time, error) {
	loc, err := LoadZone(zone)
	if err != nil {
		return time.Time{}, err
	}

	return time.Date(c.Year, c.Month, c.Day, c.Hour, c.Minute, 0, 0, loc), nil
}
