package apperror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want int
	}{
		{"validation", NewValidationError("name is required"), http.StatusBadRequest},
		{"credentials", NewCredentialsError("invalid credentials", nil), http.StatusBadRequest},
		{"conflict", NewConflictError("user already exists", nil), http.StatusBadRequest},
		{"bad request", NewBadRequestError("invalid request body", nil), http.StatusBadRequest},
		{"unauthorized", NewUnauthorizedError("invalid token", nil), http.StatusUnauthorized},
		{"not found", NewNotFoundError("no such account", nil), http.StatusNotFound},
		{"database", NewDatabaseError("query failed", nil), http.StatusInternalServerError},
		{"internal", NewInternalError("boom", nil), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.StatusCode())
		})
	}
}

func TestToResponse_SingleMessage(t *testing.T) {
	resp := NewCredentialsError("invalid credentials", nil).ToResponse()
	assert.Equal(t, ErrorResponse{Errors: []ErrorMessage{{Message: "invalid credentials"}}}, resp)
}

func TestToResponse_ValidationMessages(t *testing.T) {
	resp := NewValidationError("name is required", "please include a valid email").ToResponse()
	assert.Len(t, resp.Errors, 2)
	assert.Equal(t, "name is required", resp.Errors[0].Message)
	assert.Equal(t, "please include a valid email", resp.Errors[1].Message)
}

func TestToResponse_ServerErrorsAreOpaque(t *testing.T) {
	underlying := errors.New("pq: connection refused to 10.0.0.5")
	resp := NewDatabaseError("failed to create account", underlying).ToResponse()
	assert.Equal(t, ErrorResponse{Errors: []ErrorMessage{{Message: "server error"}}}, resp)
}

func TestFromError_Wrapped(t *testing.T) {
	appErr := NewConflictError("user already exists", nil)

	got, ok := FromError(appErr)
	assert.True(t, ok)
	assert.Equal(t, appErr, got)

	_, ok = FromError(errors.New("plain"))
	assert.False(t, ok)

	_, ok = FromError(nil)
	assert.False(t, ok)
}

func TestUnwrap(t *testing.T) {
	underlying := errors.New("row scan failed")
	appErr := NewDatabaseError("failed to get account", underlying)
	assert.True(t, errors.Is(appErr, underlying))
}
