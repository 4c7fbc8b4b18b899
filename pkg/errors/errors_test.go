package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        HTTPStatuser
		wantStatus int
		wantCode   string
	}{
		{"validation", NewValidationError("title", "is required"), http.StatusBadRequest, "validation_error"},
		{"conflict maps to 400 not 409", NewConflictError("user", "user already exists"), http.StatusBadRequest, "already_exists"},
		{"authentication", NewAuthenticationError("invalid email or password"), http.StatusUnauthorized, "authentication_failed"},
		{"unauthenticated", NewUnauthenticatedError("token expired"), http.StatusUnauthorized, "unauthenticated"},
		{"authorization maps to 401 not 403", NewAuthorizationError("note", ""), http.StatusUnauthorized, "not_authorized"},
		{"not found", NewNotFoundError("note", ""), http.StatusNotFound, "not_found"},
		{"internal", NewInternalError("boom", nil), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, tt.err.HTTPStatus())
			assert.Equal(t, tt.wantCode, tt.err.Code())
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "note not found", NewNotFoundError("note", "").Error())
	assert.Equal(t, "custom message", NewNotFoundError("note", "custom message").Error())
	assert.Equal(t, "user already exists", NewConflictError("user", "").Error())
	assert.Equal(t, "not authorized to access this note", NewAuthorizationError("note", "").Error())
	assert.Equal(t, "validation failed: title - is required", NewValidationError("title", "is required").Error())
}

func TestInternalErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewInternalError("failed to query database", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")

	wrapped := fmt.Errorf("request failed: %w", err)
	var internal *InternalError
	assert.ErrorAs(t, wrapped, &internal)
}
