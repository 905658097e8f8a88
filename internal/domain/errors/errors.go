package errors

import (
	"net/http"

	"guardian/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// Is matches any BaseError carrying the same business error code, so copies made by
// WithDetails or WithMessage still match their predefined error.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// WithMessage replaces the user-facing message, keeping the error code
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// Predefined error types
var (
	// Parent PIN and session errors
	ErrInvalidPinFormat = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PIN_FORMAT",
		"PIN must be 4-6 digits",
		"",
	)

	ErrAuthenticationFailed = NewBaseError(
		http.StatusUnauthorized,
		"AUTHENTICATION_FAILED",
		"Invalid PIN",
		"",
	)

	// ErrLockedOut is returned while a lock is in force. Its message is replaced with
	// the remaining minutes at the call site.
	ErrLockedOut = NewBaseError(
		http.StatusTooManyRequests,
		"LOCKED_OUT",
		"Too many failed attempts. Please try again later.",
		"",
	)

	// ErrLockoutTriggered is returned by the failure that starts a lock. The call site
	// states the configured lock duration.
	ErrLockoutTriggered = NewBaseError(
		http.StatusTooManyRequests,
		"LOCKOUT_TRIGGERED",
		"Too many failed attempts. Account locked for 15 minutes.",
		"",
	)

	ErrParentModeRequired = NewBaseError(
		http.StatusUnauthorized,
		"PARENT_MODE_REQUIRED",
		"Parent mode authentication required",
		"",
	)

	ErrSessionInvalid = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_INVALID",
		"Parent session is invalid or expired",
		"",
	)

	// Monitoring errors
	ErrPermissionDenied = NewBaseError(
		http.StatusForbidden,
		"PERMISSION_DENIED",
		"Location permission not granted",
		"",
	)

	// Parental data errors
	ErrSafeZoneNotFound = NewBaseError(
		http.StatusNotFound,
		"SAFE_ZONE_NOT_FOUND",
		"Safe zone not found",
		"",
	)

	ErrCheckInNotFound = NewBaseError(
		http.StatusNotFound,
		"CHECK_IN_NOT_FOUND",
		"Check-in request not found",
		"",
	)

	ErrPingNotFound = NewBaseError(
		http.StatusNotFound,
		"PING_NOT_FOUND",
		"Device ping not found",
		"",
	)

	ErrContactNotFound = NewBaseError(
		http.StatusNotFound,
		"CONTACT_NOT_FOUND",
		"Emergency contact not found",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// StorageError represents a failed read or write of the key-value backend, implementing the AppError interface
type StorageError struct {
	err     error
	details string
}

// NewStorageError creates a storage-related error
func NewStorageError(err error, details string) AppError {
	return &StorageError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *StorageError) Error() string {
	return errors.Wrap(e.err, "storage operation failed").Error()
}

// Unwrap exposes the backend error
func (e *StorageError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *StorageError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *StorageError) ErrorCode() string {
	return "STORAGE_FAILED"
}

// Message returns the user-friendly error message
func (e *StorageError) Message() string {
	return "Storage operation failed"
}

// Details returns detailed error information
func (e *StorageError) Details() string {
	return e.details
}
