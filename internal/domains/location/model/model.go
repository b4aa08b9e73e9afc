package model

import "travelclock/shared/constant"

// Location is a named city shown by the planner.
type Location struct {
	Name    string `json:"name"`
	Zone    string `json:"zone"`
	Pattern string `json:"pattern"`
}

// Defaults is the built-in city table, in display order.
var Defaults = []Location{
	{Name: "New York", Zone: "America/New_York", Pattern: constant.PatternUS},
	{Name: "London", Zone: "Europe/London", Pattern: constant.PatternDefault},
	{Name: "Tokyo", Zone: "Asia/Tokyo", Pattern: constant.PatternDefault},
	{Name: "Sydney", Zone: "Australia/Sydney", Pattern: constant.PatternDefault},
	{Name: "Paris", Zone: "Europe/Paris", Pattern: constant.PatternDefault},
	{Name: "Dubai", Zone: "Asia/Dubai", Pattern: constant.PatternDefault},
	{Name: "Los Angeles", Zone: "America/Los_Angeles", Pattern: constant.PatternUS},
	{Name: "Singapore", Zone: "Asia/Singapore", Pattern: constant.PatternDefault},
}

var usZones = map[string]bool{
	"America/New_York":    true,
	"America/Chicago":     true,
	"America/Denver":      true,
	"America/Phoenix":     true,
	"America/Los_Angeles": true,
	"America/Anchorage":   true,
	"Pacific/Honolulu":    true,
}

// PatternFor picks the display pattern for a zone: US zones use the 12-hour
// month-first layout.
func PatternFor(zone string) string {
	if usZones[zone] {
		return constant.PatternUS
	}

	return constant.PatternDefault
}
