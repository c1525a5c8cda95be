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

// ErrForbidden indicates the caller may not act on the resource.
var ErrForbidden = errors.New("forbidden")

// ErrInvalidFilter indicates an unrecognized date-range filter name.
var ErrInvalidFilter = errors.New("invalid date range filter")

// ErrNetwork indicates that a call to the backing store failed.
var ErrNetwork = errors.New("backend call failed")

// ErrConflict indicates that a conditional write lost against a concurrent writer.
var ErrConflict = errors.New("concurrent modification")

// ErrPartialWrite indicates that only part of a multi-step credit write landed
// and the customer's balance must be reconciled by hand.
var ErrPartialWrite = errors.New("partial credit write, manual reconciliation required")

// ErrStaleReport indicates that a newer report request for the same view superseded this one.
var ErrStaleReport = errors.New("report superseded by a newer request")

// AppError carries an HTTP status alongside a wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode maps an error to the HTTP status a handler should respond with.
func StatusCode(err error) int {
	var appErr *AppError
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, ErrInvalidFilter):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrPartialWrite):
		// checked before ErrConflict: a partial write may wrap the conflict that caused it
		return http.StatusInternalServerError
	case errors.Is(err, ErrDuplicate), errors.Is(err, ErrConflict), errors.Is(err, ErrStaleReport):
		return http.StatusConflict
	case errors.Is(err, ErrNetwork):
		return http.StatusBadGateway
	case errors.As(err, &appErr) && appErr.Code != 0:
		return appErr.Code
	default:
		return http.StatusInternalServerError
	}
}
