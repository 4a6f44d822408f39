package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrConsultationNotFound is returned when no consultation matches an id or slug.
	ErrConsultationNotFound = errors.New("consultation not found")
	// ErrInvalidFilter is returned when a stance filter is not "All" or a known stance.
	ErrInvalidFilter = errors.New("invalid filter")
	// ErrUnsupportedFormat is returned when a raw export format is not json or csv.
	ErrUnsupportedFormat = errors.New("unsupported format")
	// ErrSessionUnavailable is returned when session storage cannot be reached.
	ErrSessionUnavailable = errors.New("session storage unavailable")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Wrapped errors are matched too.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrConsultationNotFound):
		return NewHTTPError(http.StatusNotFound, ErrConsultationNotFound.Error(), "CONSULTATION_NOT_FOUND")
	case errors.Is(err, ErrInvalidFilter):
		return NewHTTPError(http.StatusBadRequest, ErrInvalidFilter.Error(), "INVALID_FILTER")
	case errors.Is(err, ErrUnsupportedFormat):
		return NewHTTPError(http.StatusBadRequest, ErrUnsupportedFormat.Error(), "UNSUPPORTED_FORMAT")
	case errors.Is(err, ErrSessionUnavailable):
		return NewHTTPError(http.StatusServiceUnavailable, ErrSessionUnavailable.Error(), "SESSION_UNAVAILABLE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
