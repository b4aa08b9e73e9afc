package dto

import (
	"time"

	locationModel "travelclock/internal/domains/location/model"
	"travelclock/shared/constant"
	"travelclock/shared/timezone"
)

// ConvertRequest carries loosely typed JSON fields so type mismatches are
// reported as such instead of as decode errors.
type ConvertRequest struct {
	Instant    any `json:"instant"     swaggertype:"string" example:"2025-03-19T14:30:00Z"`
	TargetZone any `json:"target_zone" swaggertype:"string" example:"Asia/Tokyo"`
}

type FormatRequest struct {
	Instant any `json:"instant" swaggertype:"string" example:"2025-03-19T14:30:00Z"`
	Pattern any `json:"pattern" swaggertype:"string" example:"%Y-%m-%d"`
	// Zone optionally re-expresses the instant before formatting.
	Zone string `json:"zone" validate:"omitempty,iana" example:"Europe/London"`
}

type WorldClockQuery struct {
	Pattern string `json:"pattern" validate:"omitempty,strftime"`
}

type CompareQuery struct {
	Home        string `json:"home"        validate:"required"`
	Destination string `json:"destination" validate:"required"`
}

type TimeResponse struct {
	Zone      string `json:"zone"`
	Timestamp string `json:"timestamp"`
	Unix      int64  `json:"unix"`
	Formatted string `json:"formatted,omitempty"`
}

func (r *TimeResponse) FromTime(t time.Time) {
	r.Zone = t.Location().String()
	r.Timestamp = t.Format(constant.DateFormat)
	r.Unix = t.Unix()
}

type FormatResponse struct {
	Formatted string `json:"formatted"`
}

type DifferenceResponse struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Hours   int    `json:"hours"`
	Minutes int    `json:"minutes"`
	Display string `json:"display"`
}

func (r *DifferenceResponse) FromOffset(from, to string, offset timezone.Offset) {
	r.From = from
	r.To = to
	r.Hours = offset.Hours
	r.Minutes = offset.Minutes
	r.Display = offset.String()
}

type LocationResponse struct {
	Name string `json:"name"`
	Zone string `json:"zone"`
}

func (r *LocationResponse) FromModel(model locationModel.Location) {
	r.Name = model.Name
	r.Zone = model.Zone
}

type LocationTime struct {
	City      string `json:"city"`
	Zone      string `json:"zone"`
	Timestamp string `json:"timestamp"`
	Formatted string `json:"formatted"`
}

type WorldClockResponse struct {
	UTC    string         `json:"utc"`
	Cities []LocationTime `json:"cities"`
}

type CompareResponse struct {
	Home        LocationTime       `json:"home"`
	Destination LocationTime       `json:"destination"`
	Difference  DifferenceResponse `json:"difference"`
}
