package timezone

import (
	"fmt"
	"time"

	"travelclock/shared/constant"
	"travelclock/shared/failure"
)

const minutesPerHour = 60

// Offset is the signed difference offset(zone2) - offset(zone1). Minutes is
// always in [0, 60): -90 minutes is {Hours: -2, Minutes: 30}.
type Offset struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

// TotalMinutes folds the offset back into minutes.
func (o Offset) TotalMinutes() int {
	return o.Hours*minutesPerHour + o.Minutes
}

// String renders the offset the way the planner prints it, e.g. "+13h 0m".
func (o Offset) String() string {
	sign := ""
	if o.Hours >= 0 {
		sign = "+"
	}

	return fmt.Sprintf("%s%dh %dm", sign, o.Hours, o.Minutes)
}

// DifferenceAt measures zone2 minus zone1 at the single instant at.
func DifferenceAt(at time.Time, zone1, zone2 string) (Offset, error) {
	if at.IsZero() {
		return Offset{}, failure.InvalidInstant("invalid datetime object")
	}

	loc1, err := LoadZone(zone1)
	if err != nil {
		return Offset{}, err
	}

	loc2, err := LoadZone(zone2)
	if err != nil {
		return Offset{}, err
	}

	_, offset1 := at.In(loc1).Zone()
	_, offset2 := at.In(loc2).Zone()

	return OffsetFromSeconds(offset2 - offset1), nil
}

// OffsetFromSeconds truncates seconds to whole minutes, then splits them with
// floor division.
func OffsetFromSeconds(seconds int) Offset {
	minutes := seconds / constant.MinutesToSeconds

	return Offset{
		Hours:   floorDiv(minutes, minutesPerHour),
		Minutes: floorMod(minutes, minutesPerHour),
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}

	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}
