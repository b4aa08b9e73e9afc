package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"travelclock/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestCoreFailures(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		reason  failure.Reason
		message string
	}{
		{
			name:    "TypeMismatch",
			err:     failure.TypeMismatch("timezone", 123),
			code:    http.StatusUnprocessableEntity,
			reason:  failure.ReasonTypeMismatch,
			message: "timezone must be a string, got int",
		},
		{
			name:    "UnknownZone",
			err:     failure.UnknownZone("Invalid/Zone"),
			code:    http.StatusBadRequest,
			reason:  failure.ReasonUnknownZone,
			message: "invalid timezone 'Invalid/Zone'",
		},
		{
			name:    "InvalidInstant",
			err:     failure.InvalidInstant("input datetime must have timezone information"),
			code:    http.StatusBadRequest,
			reason:  failure.ReasonInvalidInstant,
			message: "input datetime must have timezone information",
		},
		{
			name:    "FormatFailure",
			err:     failure.FormatFailure(errors.New("stray %")),
			code:    http.StatusBadRequest,
			reason:  failure.ReasonFormatFailure,
			message: "invalid format string - stray %",
		},
		{
			name:    "FormatFailure without cause",
			err:     failure.FormatFailure(nil),
			code:    http.StatusBadRequest,
			reason:  failure.ReasonFormatFailure,
			message: "invalid format string",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := tt.err.(*failure.Failure)
			if !ok {
				t.Fatalf("expected result to be *failure.Failure, got %T", tt.err)
			}

			if f.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, f.Code)
			}

			if f.Reason != tt.reason {
				t.Errorf("expected reason to be %s, got %s", tt.reason, f.Reason)
			}

			if f.Message != tt.message {
				t.Errorf("expected message to be %q, got %q", tt.message, f.Message)
			}
		})
	}
}

func TestBadRequest(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected error
	}{
		{
			name:     "with error",
			input:    errors.New("validation failed"),
			expected: &failure.Failure{Code: http.StatusBadRequest, Reason: failure.ReasonBadRequest, Message: "validation failed"},
		},
		{
			name:     "with nil error",
			input:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.BadRequest(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", result)
				}

				return
			}

			f, ok := result.(*failure.Failure)
			if !ok {
				t.Fatalf("expected result to be *failure.Failure, got %T", result)
			}

			expectedF := tt.expected.(*failure.Failure)
			if *f != *expectedF {
				t.Errorf("expected %+v, got %+v", expectedF, f)
			}
		})
	}
}

func TestInternalError(t *testing.T) {
	if failure.InternalError(nil) != nil {
		t.Error("expected nil for nil error")
	}

	result := failure.InternalError(errors.New("clock unavailable"))
	if failure.GetCode(result) != http.StatusInternalServerError {
		t.Errorf("expected code to be %d, got %d", http.StatusInternalServerError, failure.GetCode(result))
	}
}

func TestNotFound(t *testing.T) {
	result := failure.NotFound("location not found")

	if failure.GetCode(result) != http.StatusNotFound {
		t.Errorf("expected code to be %d, got %d", http.StatusNotFound, failure.GetCode(result))
	}

	if failure.ReasonOf(result) != failure.ReasonNotFound {
		t.Errorf("expected reason to be %s, got %s", failure.ReasonNotFound, failure.ReasonOf(result))
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{
			name:     "failure error",
			input:    &failure.Failure{Code: http.StatusBadRequest, Message: "test"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "wrapped failure error",
			input:    fmt.Errorf("converting: %w", failure.UnknownZone("Mars/Olympus")),
			expected: http.StatusBadRequest,
		},
		{
			name:     "regular error",
			input:    errors.New("regular error"),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "nil error",
			input:    nil,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.GetCode(tt.input)
			if result != tt.expected {
				t.Errorf("expected code to be %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestReasonMatching(t *testing.T) {
	err := fmt.Errorf("resolving: %w", failure.UnknownZone("Invalid/Zone"))

	if !failure.IsReason(err, failure.ReasonUnknownZone) {
		t.Error("expected wrapped error to carry unknown_zone")
	}

	if failure.IsReason(err, failure.ReasonTypeMismatch) {
		t.Error("did not expect wrapped error to carry type_mismatch")
	}

	if failure.IsReason(nil, failure.ReasonInternal) {
		t.Error("nil error must not match any reason")
	}

	if !errors.Is(err, &failure.Failure{Reason: failure.ReasonUnknownZone}) {
		t.Error("expected errors.Is to match on reason")
	}

	if failure.ReasonOf(errors.New("plain")) != failure.ReasonInternal {
		t.Error("expected foreign errors to be internal")
	}
}
