package errors

import (
	"net/http"

	"huddle/internal/errors"
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

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Is matches any BaseError carrying the same business code, so copies made by WithDetails
// still satisfy errors.Is against the predefined values
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
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

// Predefined error types
var (
	// Room-related errors
	ErrRoomNotFound = NewBaseError(
		http.StatusNotFound,
		"CHAT_NOT_FOUND",
		"chat room not found",
		"",
	)

	ErrNotAMember = NewBaseError(
		http.StatusForbidden,
		"NOT_A_PARTICIPANT",
		"you are not a participant of this chat room",
		"",
	)

	ErrInvalidOperation = NewBaseError(
		http.StatusBadRequest,
		"INVALID_OPERATION",
		"this operation is not allowed for the chat room",
		"",
	)

	ErrDuplicateOrMissingParticipant = NewBaseError(
		http.StatusBadRequest,
		"PARTICIPANT_CONFLICT",
		"participant is already in the chat room or is not a participant",
		"",
	)

	ErrChallengeNotFound = NewBaseError(
		http.StatusNotFound,
		"CHALLENGE_NOT_FOUND",
		"challenge not found",
		"",
	)

	// Notification-related errors
	ErrNotificationNotFound = NewBaseError(
		http.StatusNotFound,
		"NOTIFICATION_NOT_FOUND",
		"notification not found",
		"",
	)

	// Authentication-related errors
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"missing or invalid credentials",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
