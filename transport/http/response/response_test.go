package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"travelclock/shared/failure"
	"travelclock/transport/http/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   int
		wantReason string
		wantError  string
	}{
		{
			name:       "unknown zone",
			err:        failure.UnknownZone("Invalid/Zone"),
			wantCode:   http.StatusBadRequest,
			wantReason: "unknown_zone",
			wantError:  "invalid timezone 'Invalid/Zone'",
		},
		{
			name:       "type mismatch",
			err:        failure.TypeMismatch("timezone", 123),
			wantCode:   http.StatusUnprocessableEntity,
			wantReason: "type_mismatch",
			wantError:  "timezone must be a string, got int",
		},
		{
			name:       "plain error",
			err:        errors.New("boom"),
			wantCode:   http.StatusInternalServerError,
			wantReason: "internal",
			wantError:  "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			response.WithError(rec, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantReason, body["reason"])
			assert.Equal(t, tt.wantError, body["error"])
		})
	}
}

func TestWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSON(rec, http.StatusOK, map[string]int{"hours": 13})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"hours":13}}`, rec.Body.String())
}

func TestShutdownAndHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	response.WithPreparingShutdown(rec)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"message":"SERVER PREPARING TO SHUT DOWN"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	response.WithHealthy(rec)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"OK"}`, rec.Body.String())
}
