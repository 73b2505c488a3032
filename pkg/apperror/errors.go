package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Audit log (AUD) ----

// Validation reports a caller-recoverable problem with the request.
func Validation(message string) *AppError {
	return New("AUD_001", message, http.StatusBadRequest)
}

func ErrActionNotFound(id string) *AppError {
	return New("AUD_002", fmt.Sprintf("action %s not found", id), http.StatusNotFound)
}

// ---- Signing (SIG) ----

// ErrSignFailure is returned when a record cannot be canonicalized. The
// record is never persisted.
func ErrSignFailure(err error) *AppError {
	return Wrap("SIG_001", "Action record could not be signed", http.StatusInternalServerError, err)
}

// ---- Authentication (AUTH) ----

func ErrInvalidToken() *AppError {
	return New("AUTH_001", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// ErrStoreIO reports an unreadable or unwritable audit medium.
func ErrStoreIO(err error) *AppError {
	return Wrap("SYS_001", "Audit store unavailable", http.StatusInternalServerError, err)
}

func ErrAppendLockTimeout(err error) *AppError {
	return Wrap("SYS_002", "Append lock acquisition timeout", http.StatusServiceUnavailable, err)
}

// InternalError wraps an internal error as a SYS_000 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_000", "Internal server error", http.StatusInternalServerError, err)
}
