package errors

import (
	"errors"
	"fmt"
)

// Re-export the standard helpers so callers only import one errors package.
var (
	New    = errors.New
	Unwrap = errors.Unwrap
	Is     = errors.Is
	As     = errors.As
)

// Error codes used across the service.
const (
	ErrInternal        = "INTERNAL"
	ErrNotFound        = "NOT_FOUND"
	ErrValidation      = "VALIDATION_ERROR"
	ErrInvalidState    = "INVALID_STATE"
	ErrUpstream        = "UPSTREAM_ERROR"
	ErrUnauthenticated = "UNAUTHENTICATED"
	ErrForbidden       = "FORBIDDEN"
	ErrConflict        = "CONFLICT"
)

// AppError carries an error code alongside the message.
type AppError struct {
	code    string
	message string
	err     error
}

func (e *AppError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s", e.message, e.err.Error())
	}
	return e.message
}

func (e *AppError) Code() string {
	return e.code
}

func (e *AppError) Unwrap() error {
	return e.err
}

// Message returns the client-facing message without wrapped cause details.
func (e *AppError) Message() string {
	return e.message
}

// NewAppError creates a new application error.
func NewAppError(code string, message string, err error) *AppError {
	return &AppError{
		code:    code,
		message: message,
		err:     err,
	}
}

// NotFound creates a NOT_FOUND error.
func NotFound(message string) *AppError {
	return NewAppError(ErrNotFound, message, nil)
}

// Validation creates a VALIDATION_ERROR.
func Validation(message string) *AppError {
	return NewAppError(ErrValidation, message, nil)
}

// InvalidState creates an INVALID_STATE error.
func InvalidState(message string) *AppError {
	return NewAppError(ErrInvalidState, message, nil)
}

// Upstream wraps an error from an external collaborator.
func Upstream(message string, err error) *AppError {
	return NewAppError(ErrUpstream, message, err)
}

// Unauthenticated creates an UNAUTHENTICATED error.
func Unauthenticated(message string) *AppError {
	return NewAppError(ErrUnauthenticated, message, nil)
}

// Forbidden creates a FORBIDDEN error.
func Forbidden(message string) *AppError {
	return NewAppError(ErrForbidden, message, nil)
}

// Conflict creates a CONFLICT error.
func Conflict(message string) *AppError {
	return NewAppError(ErrConflict, message, nil)
}

// Wrap wraps an existing error, keeping the code when it is already an AppError.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if As(err, &appErr) {
		return NewAppError(appErr.Code(), message, err)
	}

	return NewAppError(ErrInternal, message, err)
}

// CodeOf returns the code of an error, or INTERNAL for plain errors.
func CodeOf(err error) string {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr.Code()
	}
	return ErrInternal
}
