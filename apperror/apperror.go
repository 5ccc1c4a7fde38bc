// Package apperror defines a centralized system for application-specific
// errors and their wire representation. All API error responses share one
// envelope: {"errors":[{"message":"..."}]}.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType defines the category of an application error.
type ErrorType int

const (
	// UnknownError is for unspecified errors
	UnknownError ErrorType = iota
	// DatabaseError represents an error originating from the database
	DatabaseError
	// ConfigError represents an error related to application configuration
	ConfigError
	// CredentialsError represents a failed login (unknown email or wrong
	// password; the two are deliberately indistinguishable)
	CredentialsError
	// UnauthorizedError represents a request without a valid bearer token
	UnauthorizedError
	// NotFoundError represents a resource not found error
	NotFoundError
	// ValidationError represents an input validation error
	ValidationError
	// BadRequestError represents a generic bad request
	BadRequestError
	// InternalError represents a generic internal server error
	InternalError
	// ConflictError represents a duplicate account at registration
	ConflictError
)

// AppError is the application's error type. It carries one or more
// user-facing messages and optionally wraps an underlying error which is
// only ever logged, never serialized.
type AppError struct {
	Type     ErrorType
	Message  string
	Messages []string // set for validation errors with one entry per failed rule
	Err      error
}

// Error satisfies the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/errors.As chains.
func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status code for the error type.
//
// Validation failures, duplicate accounts, and failed logins all map to 400:
// that is the API contract this service exposes. Only requests rejected by
// the bearer-token middleware are 401.
func (e *AppError) StatusCode() int {
	switch e.Type {
	case CredentialsError, ValidationError, BadRequestError, ConflictError:
		return http.StatusBadRequest
	case UnauthorizedError:
		return http.StatusUnauthorized
	case NotFoundError:
		return http.StatusNotFound
	case DatabaseError, ConfigError, InternalError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// NewAppError creates a new AppError.
func NewAppError(errType ErrorType, message string, underlyingError error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Err:     underlyingError,
	}
}

// NewDatabaseError creates a new DatabaseError
func NewDatabaseError(message string, underlyingError error) *AppError {
	return NewAppError(DatabaseError, message, underlyingError)
}

// NewConfigError creates a new ConfigError
func NewConfigError(message string, underlyingError error) *AppError {
	return NewAppError(ConfigError, message, underlyingError)
}

// NewCredentialsError creates a new CredentialsError
func NewCredentialsError(message string, underlyingError error) *AppError {
	return NewAppError(CredentialsError, message, underlyingError)
}

// NewUnauthorizedError creates a new UnauthorizedError
func NewUnauthorizedError(message string, underlyingError error) *AppError {
	return NewAppError(UnauthorizedError, message, underlyingError)
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(message string, underlyingError error) *AppError {
	return NewAppError(NotFoundError, message, underlyingError)
}

// NewValidationError creates a ValidationError carrying one message per
// failed rule. The messages appear in the response in the order given.
func NewValidationError(messages ...string) *AppError {
	message := "validation failed"
	if len(messages) > 0 {
		message = messages[0]
	}
	return &AppError{
		Type:     ValidationError,
		Message:  message,
		Messages: messages,
	}
}

// NewBadRequestError creates a new BadRequestError
func NewBadRequestError(message string, underlyingError error) *AppError {
	return NewAppError(BadRequestError, message, underlyingError)
}

// NewInternalError creates a new InternalError
func NewInternalError(message string, underlyingError error) *AppError {
	return NewAppError(InternalError, message, underlyingError)
}

// NewConflictError creates a new ConflictError
func NewConflictError(message string, underlyingError error) *AppError {
	return NewAppError(ConflictError, message, underlyingError)
}

// ErrorMessage is a single entry in the error response envelope.
type ErrorMessage struct {
	Message string `json:"message" example:"invalid credentials"`
}

// ErrorResponse is the JSON envelope for all error responses.
type ErrorResponse struct {
	Errors []ErrorMessage `json:"errors"`
}

// ToResponse converts an AppError to its wire representation. Server-side
// failures always serialize as a generic "server error": the detail stays in
// the logs.
func (e *AppError) ToResponse() ErrorResponse {
	if e.StatusCode() >= http.StatusInternalServerError {
		return ErrorResponse{Errors: []ErrorMessage{{Message: "server error"}}}
	}
	if len(e.Messages) > 0 {
		msgs := make([]ErrorMessage, len(e.Messages))
		for i, m := range e.Messages {
			msgs[i] = ErrorMessage{Message: m}
		}
		return ErrorResponse{Errors: msgs}
	}
	return ErrorResponse{Errors: []ErrorMessage{{Message: e.Message}}}
}

// FromError attempts to convert a generic error to an *AppError.
func FromError(err error) (*AppError, bool) {
	if err == nil {
		return nil, false
	}
	var ae *AppError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// IsNotFound checks if an error is a NotFound error
func IsNotFound(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == NotFoundError
}

// IsCredentialsError checks if an error is a CredentialsError
func IsCredentialsError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == CredentialsError
}

// IsValidationError checks if an error is a Validation error
func IsValidationError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == ValidationError
}

// IsConflictError checks if an error is a Conflict error
func IsConflictError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == ConflictError
}
