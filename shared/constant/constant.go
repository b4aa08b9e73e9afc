package constant

import (
	"time"
)

const (
	RequestParamZone        = "zone"
	RequestParamFrom        = "from"
	RequestParamTo          = "to"
	RequestParamHome        = "home"
	RequestParamDestination = "destination"
	RequestParamPattern     = "pattern"
)

const (
	DateFormat          = time.RFC3339
	CivilDateTimeLayout = "2006-01-02 15:04"
)

// strftime patterns used by the planner displays.
const (
	PatternUTC      = "%Y-%m-%d %H:%M:%S %Z"
	PatternUS       = "%B %d, %Y %I:%M %p %Z"
	PatternDefault  = "%d %B %Y %H:%M %Z"
	PatternFlight   = "%B %d, %Y %I:%M %p %Z"
	PatternCompare  = "%d %B %Y %H:%M %Z"
	PatternDateOnly = "%Y-%m-%d"
)

const (
	MinutesToSeconds = 60
	HoursToMinutes   = 60
)

const (
	OtelServiceScopeName = "service"
	OtelHandlerScopeName = "handler"
	OtelCLIScopeName     = "cli"
)

const (
	RequestHeaderUserAgent   = "User-Agent"
	RequestHeaderContentType = "Content-Type"
	RequestHeaderRequestID   = "X-Request-ID"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorPrepareShutdown = "SERVER PREPARING TO SHUT DOWN"
	ResponseHealthy              = "OK"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Asterix = "*"
	Empty   = ""
)
