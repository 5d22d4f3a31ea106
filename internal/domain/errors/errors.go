package errors

import (
	"net/http"

	"tiffin/internal/errors"
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

// Predefined error types. The business codes and messages are the subsystem's
// stable contract; registration checks run in a fixed order and the first
// failing check decides which of these is returned.
var (
	// Sign-up errors
	ErrSignupFieldsMissing = NewBaseError(
		http.StatusBadRequest,
		"SGR-005",
		"Except last name all fields should be filled",
		"",
	)

	ErrContactNumberRegistered = NewBaseError(
		http.StatusConflict,
		"SGR-001",
		"This contact number is already registered! Try other contact number.",
		"",
	)

	ErrInvalidEmail = NewBaseError(
		http.StatusBadRequest,
		"SGR-002",
		"Invalid email-id format!",
		"",
	)

	ErrInvalidContactNumber = NewBaseError(
		http.StatusBadRequest,
		"SGR-003",
		"Invalid contact number!",
		"",
	)

	ErrWeakPassword = NewBaseError(
		http.StatusBadRequest,
		"SGR-004",
		"Weak password!",
		"",
	)

	// Authentication errors
	ErrContactNumberNotRegistered = NewBaseError(
		http.StatusUnauthorized,
		"ATH-001",
		"This contact number has not been registered!",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"ATH-002",
		"Invalid Credentials",
		"",
	)

	// Authorization (session validation) errors
	ErrNotLoggedIn = NewBaseError(
		http.StatusUnauthorized,
		"ATHR-001",
		"Customer is not Logged in.",
		"",
	)

	ErrLoggedOut = NewBaseError(
		http.StatusUnauthorized,
		"ATHR-002",
		"Customer is logged out. Log in again to access this endpoint.",
		"",
	)

	ErrSessionExpired = NewBaseError(
		http.StatusUnauthorized,
		"ATHR-003",
		"Your session is expired. Log in again to access this endpoint.",
		"",
	)

	// Customer update errors
	ErrWeakNewPassword = NewBaseError(
		http.StatusBadRequest,
		"UCR-001",
		"Weak password!",
		"",
	)

	ErrIncorrectOldPassword = NewBaseError(
		http.StatusUnauthorized,
		"UCR-004",
		"Incorrect old password!",
		"",
	)

	// Infrastructure-facing errors
	ErrCustomerCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"CUSTOMER_CREATION_FAILED",
		"Failed to create customer",
		"",
	)

	ErrCustomerUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"CUSTOMER_UPDATE_FAILED",
		"Failed to update customer",
		"",
	)

	ErrSessionCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"SESSION_CREATION_FAILED",
		"Failed to create session",
		"",
	)

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
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
