package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates a missing, invalid, expired or mismatched credential.
var ErrUnauthorized = errors.New("unauthorized")

// ErrInternal indicates an unexpected persistence or token-generation failure.
var ErrInternal = errors.New("internal error")

// AppError carries an HTTP status code and a user-safe message alongside the
// underlying error. The message never contains hashes or raw tokens.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError with the given status code, message and cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewValidationError creates a 400 error for missing/empty/malformed input.
func NewValidationError(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrValidation)
}

// NewUnauthorizedError creates a 401 error for credential failures.
func NewUnauthorizedError(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, message, ErrUnauthorized)
}

// NewConflictError creates a 409 error for duplicate resources.
func NewConflictError(message string) *AppError {
	return NewAppError(http.StatusConflict, message, ErrDuplicate)
}

// NewNotFoundError creates a 404 error for unknown resources.
func NewNotFoundError(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, ErrNotFound)
}

// NewInternalError creates a 500 error for unexpected failures.
func NewInternalError(message string, err error) *AppError {
	return NewAppError(http.StatusInternalServerError, message, errors.Join(ErrInternal, err))
}
