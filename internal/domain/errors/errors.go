package errors

import (
	"civic/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	ErrorCode() string // Stable error code, e.g. "NO_USERS_AVAILABLE"
	Message() string   // Human readable message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(errorCode, message, details string) *BaseError {
	return &BaseError{
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// ErrorCode returns the error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the human readable message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information.
// The copy still matches the original with errors.Is.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches any BaseError carrying the same code, so detailed copies compare equal.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// Predefined error types
var (
	// ErrNoUsersAvailable is returned when actions are seeded before any user exists.
	ErrNoUsersAvailable = NewBaseError(
		"NO_USERS_AVAILABLE",
		"no users available to own actions, seed users first",
		"",
	)

	// ErrPhoneNumberExhausted is returned when no valid phone number was drawn within the attempt budget.
	ErrPhoneNumberExhausted = NewBaseError(
		"PHONE_NUMBER_EXHAUSTED",
		"no valid phone number generated",
		"",
	)

	ErrValidationFailed = NewBaseError(
		"VALIDATION_FAILED",
		"generated record failed validation",
		"",
	)

	ErrRecordCreationFailed = NewBaseError(
		"RECORD_CREATION_FAILED",
		"failed to create record",
		"",
	)

	ErrInvalidSeedCount = NewBaseError(
		"INVALID_SEED_COUNT",
		"seed count must not be negative",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		"TRANSACTION_FAILED",
		"database transaction failed",
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

// ErrorCode returns the error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the human readable message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// Code extracts the error code of the first AppError in err's chain, or "" when there is none.
func Code(err error) string {
	if appErr, ok := errors.AsType[AppError](err); ok {
		return appErr.ErrorCode()
	}

	return ""
}
