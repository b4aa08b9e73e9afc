package failure

import (
	"errors"
	"fmt"
	"net/http"
)

// Reason tags the kind of failure so callers can branch without matching messages.
type Reason string

const (
	ReasonTypeMismatch   Reason = "type_mismatch"
	ReasonUnknownZone    Reason = "unknown_zone"
	ReasonInvalidInstant Reason = "invalid_instant"
	ReasonFormatFailure  Reason = "format_failure"
	ReasonBadRequest     Reason = "bad_request"
	ReasonNotFound       Reason = "not_found"
	ReasonInternal       Reason = "internal"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Reason  Reason `json:"reason"`
	Message string `json:"message"`
}

var ServerShuttingDown = &Failure{Code: http.StatusServiceUnavailable, Reason: ReasonInternal, Message: "server is shutting down"}

// Error returns the failure message.
func (e *Failure) Error() string {
	return e.Message
}

// Is reports whether target is a Failure with the same reason.
func (e *Failure) Is(target error) bool {
	var other *Failure
	if !errors.As(target, &other) {
		return false
	}

	return other.Reason == e.Reason
}

// TypeMismatch reports an argument of the wrong kind, e.g. a numeric zone.
func TypeMismatch(argument string, value any) error {
	return &Failure{
		Code:    http.StatusUnprocessableEntity,
		Reason:  ReasonTypeMismatch,
		Message: fmt.Sprintf("%s must be a string, got %T", argument, value),
	}
}

// UnknownZone reports a zone identifier the tz database does not know.
func UnknownZone(zone string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Reason:  ReasonUnknownZone,
		Message: fmt.Sprintf("invalid timezone '%s'", zone),
	}
}

// InvalidInstant reports a missing or zone-less instant.
func InvalidInstant(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Reason:  ReasonInvalidInstant,
		Message: msg,
	}
}

// FormatFailure reports a pattern that could not be rendered.
func FormatFailure(err error) error {
	msg := "invalid format string"
	if err != nil {
		msg += " - " + err.Error()
	}

	return &Failure{
		Code:    http.StatusBadRequest,
		Reason:  ReasonFormatFailure,
		Message: msg,
	}
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Reason:  ReasonBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Reason:  ReasonBadRequest,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Reason:  ReasonInternal,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Reason:  ReasonNotFound,
		Message: entityName,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// ReasonOf returns the failure reason carried by err, or ReasonInternal for foreign errors.
func ReasonOf(err error) Reason {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Reason
	}

	return ReasonInternal
}

// IsReason reports whether err carries the given reason.
func IsReason(err error, reason Reason) bool {
	return err != nil && ReasonOf(err) == reason
}
