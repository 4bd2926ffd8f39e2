package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
	ErrUpstream   = errors.New("upstream error")
)

// AppError carries a sentinel (for errors.Is) plus the message that
// ends up in the JSON {error: ...} body.
type AppError struct {
	Err     error
	Message string
	Field   string
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func Validation(field, message string) *AppError {
	return &AppError{Err: ErrValidation, Message: message, Field: field}
}

func NotFound(resource string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

func Forbidden(message string) *AppError {
	return &AppError{Err: ErrForbidden, Message: message}
}

// Upstream wraps a database or identity-provider failure. Handlers log
// the cause and answer with a generic 500.
func Upstream(cause error) *AppError {
	return &AppError{
		Err:     fmt.Errorf("%w: %v", ErrUpstream, cause),
		Message: "internal error",
	}
}
