package errors

import (
	"net/http"

	"resumecoach/internal/errors"
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

// WithMessage returns a copy carrying a different user-facing message.
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// Is matches copies made by WithDetails and WithMessage against the predefined value.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == other.errorCode && e.httpCode == other.httpCode
}

// Predefined error types
var (
	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Invalid request.",
		"",
	)

	ErrCredentialsRequired = ErrValidationFailed.WithMessage("Email and password are required.")

	ErrResumeRequired = ErrValidationFailed.WithMessage(`Missing "resume" field in request body.`)

	// Account-related errors
	ErrUserAlreadyExists = NewBaseError(
		http.StatusBadRequest,
		"USER_ALREADY_EXISTS",
		"User already exists.",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing failed.",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password.",
		"",
	)

	ErrMissingToken = NewBaseError(
		http.StatusUnauthorized,
		"MISSING_TOKEN",
		"Missing or invalid Authorization header.",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Invalid token.",
		"",
	)

	ErrTokenSigningFailed = NewBaseError(
		http.StatusInternalServerError,
		"TOKEN_SIGNING_FAILED",
		"Could not issue a session token.",
		"",
	)

	// Pipeline-related errors
	ErrModerationFailed = NewBaseError(
		http.StatusInternalServerError,
		"MODERATION_FAILED",
		"Moderation check failed. Please try again.",
		"",
	)

	ErrUpstreamFailed = NewBaseError(
		http.StatusInternalServerError,
		"UPSTREAM_FAILED",
		"The analysis service is unavailable. Please try again.",
		"",
	)

	// General errors
	ErrAPINotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"API endpoint not found",
		"",
	)

	ErrTooManyRequests = NewBaseError(
		http.StatusTooManyRequests,
		"TOO_MANY_REQUESTS",
		"Too many requests. Please slow down.",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error, please try again later",
		"",
	)
)

const (
	// NotResumeMessage is used when the gate rejects the document without a reason.
	NotResumeMessage = "The uploaded document does not appear to be a resume."
	// InappropriateRequestMessage is used when the gate rejects the request without a reason.
	InappropriateRequestMessage = "The request is not appropriate for this tool."
)

// ModerationRejection is a policy decision of the moderation gate. It carries the gate's
// reason back to the client and is never a system fault.
type ModerationRejection struct {
	reason string
}

// NewModerationRejection builds a rejection, falling back to the given message when the
// classifier did not supply a reason.
func NewModerationRejection(reason, fallback string) AppError {
	if reason == "" {
		reason = fallback
	}

	return &ModerationRejection{reason: reason}
}

// Error implements the error interface
func (e *ModerationRejection) Error() string {
	return "moderation rejected: " + e.reason
}

// HTTPCode returns the HTTP status code
func (e *ModerationRejection) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *ModerationRejection) ErrorCode() string {
	return "MODERATION_REJECTED"
}

// Message returns the gate's reason
func (e *ModerationRejection) Message() string {
	return e.reason
}

// Details returns detailed error information
func (e *ModerationRejection) Details() string {
	return ""
}

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
	return "Storage is unavailable. Please try again."
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
