package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"travelclock/config"
	"travelclock/infras/otel/mocks"
	clockService "travelclock/internal/domains/clock/service"
	flightService "travelclock/internal/domains/flight/service"
	"travelclock/internal/domains/location/repository"
	clockHandler "travelclock/internal/handlers/clock"
	flightHandler "travelclock/internal/handlers/flight"
	"travelclock/shared/timezone"
	"travelclock/transport/http/middleware"
	"travelclock/transport/http/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T) *HTTP {
	t.Helper()

	cfg := &config.Config{}
	tracer := mocks.NewOtel()
	keeper := timezone.New(timezone.FixedClock{At: time.Date(2025, 3, 19, 12, 0, 0, 0, time.UTC)}, "UTC")
	locations := repository.NewFromEntries(nil)

	domainHandlers := router.DomainHandlers{
		Clock:  clockHandler.New(clockService.New(keeper, locations, tracer), tracer),
		Flight: flightHandler.New(flightService.New(keeper, locations, tracer), tracer),
	}

	return New(cfg, router.New(domainHandlers), middleware.NewAppMiddleware(tracer, cfg), tracer)
}

func TestHTTP_Health(t *testing.T) {
	server := newServer(t)
	handler := server.Handler()

	assert.Equal(t, ServerStateReady, server.State())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	server.setState(ServerStateInGracePeriod)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHTTP_Routes(t *testing.T) {
	handler := newServer(t).Handler()

	tests := []struct {
		name     string
		target   string
		wantCode int
	}{
		{name: "utc", target: "/v1/time/utc", wantCode: http.StatusOK},
		{name: "now", target: "/v1/time/now?zone=Pacific/Kiritimati", wantCode: http.StatusOK},
		{name: "now unknown zone", target: "/v1/time/now?zone=Mars/Base", wantCode: http.StatusBadRequest},
		{name: "difference", target: "/v1/time/difference?from=UTC&to=Asia/Kolkata", wantCode: http.StatusOK},
		{name: "locations", target: "/v1/locations", wantCode: http.StatusOK},
		{name: "world clock", target: "/v1/locations/times", wantCode: http.StatusOK},
		{name: "compare", target: "/v1/locations/compare?home=1&destination=3", wantCode: http.StatusOK},
		{name: "unknown route", target: "/v1/nope", wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
		})
	}
}

func TestHTTP_NowInKiritimati(t *testing.T) {
	handler := newServer(t).Handler()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/time/now?zone=Pacific/Kiritimati", nil))

	var body struct {
		Data struct {
			Zone      string `json:"zone"`
			Timestamp string `json:"timestamp"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, "Pacific/Kiritimati", body.Data.Zone)
	assert.Equal(t, "2025-03-20T02:00:00+14:00", body.Data.Timestamp)
}
