package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", ErrConsultationNotFound, http.StatusNotFound, "CONSULTATION_NOT_FOUND"},
		{"wrapped not found", fmt.Errorf("find 9: %w", ErrConsultationNotFound), http.StatusNotFound, "CONSULTATION_NOT_FOUND"},
		{"invalid filter", ErrInvalidFilter, http.StatusBadRequest, "INVALID_FILTER"},
		{"unsupported format", ErrUnsupportedFormat, http.StatusBadRequest, "UNSUPPORTED_FORMAT"},
		{"session unavailable", ErrSessionUnavailable, http.StatusServiceUnavailable, "SESSION_UNAVAILABLE"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.wantStatus, httpErr.StatusCode)
			assert.Equal(t, tt.wantCode, httpErr.Code)
			assert.Equal(t, tt.wantCode, httpErr.ToErrorResponse().Code)
		})
	}
}

func TestMapErrorToHTTP_HidesInternalMessage(t *testing.T) {
	httpErr := MapErrorToHTTP(errors.New("dsn=user:secret@tcp(db)"))
	assert.Equal(t, "internal server error", httpErr.Message)
}
