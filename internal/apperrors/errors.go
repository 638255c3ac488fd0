package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that the resource is not in a state that allows the operation,
// e.g. approving an already approved payroll run.
var ErrConflict = errors.New("state conflict")

// ErrInsufficientBalance indicates a payment was rejected by a negative-balance guard.
var ErrInsufficientBalance = errors.New("insufficient balance")

// ErrInternal indicates an unexpected failure in the service or storage layer.
var ErrInternal = errors.New("internal error")

// AppError carries an HTTP-ish status code alongside the wrapped infrastructure error.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// Unwrap exposes the underlying error so errors.Is keeps working through an AppError.
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError wraps err with a status code and message.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
