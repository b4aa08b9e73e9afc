package dto

import (
	"time"

	"travelclock/shared/constant"
	"travelclock/shared/timezone"
)

// PlanRequest describes a flight leaving Departure at a local Date and Time.
// Cities are matched by name or by their 1-based position in the table.
type PlanRequest struct {
	Departure     string  `json:"departure"      validate:"required"                      example:"New York"`
	Arrival       string  `json:"arrival"        validate:"required"                      example:"Tokyo"`
	Date          string  `json:"date"           validate:"required,datetime=2006-01-02" example:"2025-03-20"`
	Time          string  `json:"time"           validate:"required,datetime=15:04"      example:"14:30"`
	DurationHours float64 `json:"duration_hours" validate:"gt=0"                          example:"8.5"`
}

// Duration converts fractional hours, so 8.5 is 8h30m.
func (r PlanRequest) Duration() time.Duration {
	return time.Duration(r.DurationHours * float64(time.Hour))
}

type Leg struct {
	City      string `json:"city"`
	Zone      string `json:"zone"`
	Timestamp string `json:"timestamp"`
	Formatted string `json:"formatted"`
}

func (l *Leg) FromTime(city string, t time.Time, formatted string) {
	l.City = city
	l.Zone = t.Location().String()
	l.Timestamp = t.Format(constant.DateFormat)
	l.Formatted = formatted
}

type PlanResponse struct {
	Departure  Leg             `json:"departure"`
	Arrival    Leg             `json:"arrival"`
	Duration   string          `json:"duration"`
	Difference timezone.Offset `json:"difference"`
	Display    string          `json:"display"`
}
