package errors

import (
	"fmt"
	"net/http"
)

// Common application errors
var (
	ErrNotFound        = NewNotFoundError("resource", "resource not found")
	ErrConflict        = NewConflictError("resource", "resource already exists")
	ErrInvalidArgument = NewValidationError("", "invalid argument")
	ErrInternal        = NewInternalError("internal server error", nil)
)

// ValidationError represents a validation failure with field-level details
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// HTTPStatus returns the HTTP status code for this error
func (e *ValidationError) HTTPStatus() int {
	return http.StatusBadRequest
}

// Code returns the machine-readable error code
func (e *ValidationError) Code() string {
	return "validation_error"
}

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	Message  string
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource, message string) *NotFoundError {
	return &NotFoundError{
		Resource: resource,
		Message:  message,
	}
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// HTTPStatus returns the HTTP status code for this error
func (e *NotFoundError) HTTPStatus() int {
	return http.StatusNotFound
}

// Code returns the machine-readable error code
func (e *NotFoundError) Code() string {
	return "not_found"
}

// ConflictError represents a duplicate unique field error.
// Duplicates are reported as 400, not 409; that mapping is part of the
// observable contract and is kept here.
type ConflictError struct {
	Resource string
	Message  string
}

// NewConflictError creates a new conflict error
func NewConflictError(resource, message string) *ConflictError {
	return &ConflictError{
		Resource: resource,
		Message:  message,
	}
}

// Error implements the error interface
func (e *ConflictError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s already exists", e.Resource)
}

// HTTPStatus returns the HTTP status code for this error
func (e *ConflictError) HTTPStatus() int {
	return http.StatusBadRequest
}

// Code returns the machine-readable error code
func (e *ConflictError) Code() string {
	return "already_exists"
}

// AuthenticationError represents a failed credential check during login.
// The message is deliberately uniform so unknown emails and wrong passwords
// are indistinguishable to the caller.
type AuthenticationError struct {
	Message string
}

// NewAuthenticationError creates a new authentication error
func NewAuthenticationError(message string) *AuthenticationError {
	return &AuthenticationError{Message: message}
}

// Error implements the error interface
func (e *AuthenticationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "authentication failed"
}

// HTTPStatus returns the HTTP status code for this error
func (e *AuthenticationError) HTTPStatus() int {
	return http.StatusUnauthorized
}

// Code returns the machine-readable error code
func (e *AuthenticationError) Code() string {
	return "authentication_failed"
}

// UnauthenticatedError represents a missing, invalid, or expired bearer token
type UnauthenticatedError struct {
	Message string
}

// NewUnauthenticatedError creates a new unauthenticated error
func NewUnauthenticatedError(message string) *UnauthenticatedError {
	return &UnauthenticatedError{Message: message}
}

// Error implements the error interface
func (e *UnauthenticatedError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "not authenticated"
}

// HTTPStatus returns the HTTP status code for this error
func (e *UnauthenticatedError) HTTPStatus() int {
	return http.StatusUnauthorized
}

// Code returns the machine-readable error code
func (e *UnauthenticatedError) Code() string {
	return "unauthenticated"
}

// AuthorizationError represents a valid identity with insufficient rights
// over a specific resource. Mapped to 401 rather than 403: the service has
// always responded 401 here and clients depend on it.
type AuthorizationError struct {
	Resource string
	Message  string
}

// NewAuthorizationError creates a new authorization error
func NewAuthorizationError(resource, message string) *AuthorizationError {
	return &AuthorizationError{
		Resource: resource,
		Message:  message,
	}
}

// Error implements the error interface
func (e *AuthorizationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("not authorized to access this %s", e.Resource)
}

// HTTPStatus returns the HTTP status code for this error
func (e *AuthorizationError) HTTPStatus() int {
	return http.StatusUnauthorized
}

// Code returns the machine-readable error code
func (e *AuthorizationError) Code() string {
	return "not_authorized"
}

// InternalError represents an internal server error with context
type InternalError struct {
	Message string
	Err     error
}

// NewInternalError creates a new internal error
func NewInternalError(message string, err error) *InternalError {
	return &InternalError{
		Message: message,
		Err:     err,
	}
}

// Error implements the error interface
func (e *InternalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *InternalError) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the HTTP status code for this error
func (e *InternalError) HTTPStatus() int {
	return http.StatusInternalServerError
}

// Code returns the machine-readable error code
func (e *InternalError) Code() string {
	return "internal_error"
}

// HTTPStatuser interface for errors that carry an HTTP status code
type HTTPStatuser interface {
	error
	HTTPStatus() int
	Code() string
}
