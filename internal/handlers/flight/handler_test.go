package flight_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"travelclock/infras/otel/mocks"
	serviceMocks "travelclock/internal/domains/flight/mocks"
	"travelclock/internal/domains/flight/model/dto"
	"travelclock/internal/handlers/flight"
	"travelclock/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (*serviceMocks.MockFlight, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockService := serviceMocks.NewMockFlight(ctrl)

	handler := flight.New(mockService, mocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/v1", handler.Router)

	return mockService, router
}

func post(router http.Handler, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/flights/plan", strings.NewReader(body)))

	return rec
}

func TestHandler_Plan(t *testing.T) {
	validBody := `{"departure":"New York","arrival":"Tokyo","date":"2025-03-20","time":"14:30","duration_hours":14}`

	t.Run("success", func(t *testing.T) {
		mockService, router := setup(t)

		mockService.EXPECT().
			Plan(gomock.Any(), dto.PlanRequest{
				Departure:     "New York",
				Arrival:       "Tokyo",
				Date:          "2025-03-20",
				Time:          "14:30",
				DurationHours: 14,
			}).
			Return(dto.PlanResponse{
				Departure: dto.Leg{City: "New York", Formatted: "March 20, 2025 02:30 PM EDT"},
				Arrival:   dto.Leg{City: "Tokyo", Formatted: "March 21, 2025 05:30 PM JST"},
				Display:   "+13h 0m",
			}, nil)

		rec := post(router, validBody)

		assert.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Data dto.PlanResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "March 21, 2025 05:30 PM JST", body.Data.Arrival.Formatted)
	})

	t.Run("unknown city", func(t *testing.T) {
		mockService, router := setup(t)

		mockService.EXPECT().
			Plan(gomock.Any(), gomock.Any()).
			Return(dto.PlanResponse{}, failure.NotFound("location not found: Gotham"))

		rec := post(router, strings.Replace(validBody, "Tokyo", "Gotham", 1))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "missing arrival",
			body: `{"departure":"New York","date":"2025-03-20","time":"14:30","duration_hours":14}`,
			want: "arrival is required",
		},
		{
			name: "bad date layout",
			body: `{"departure":"New York","arrival":"Tokyo","date":"20-03-2025","time":"14:30","duration_hours":14}`,
			want: "date must match the layout 2006-01-02",
		},
		{
			name: "zero duration",
			body: `{"departure":"New York","arrival":"Tokyo","date":"2025-03-20","time":"14:30","duration_hours":0}`,
			want: "duration_hours must be greater than 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, router := setup(t)

			rec := post(router, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.want)
		})
	}
}
