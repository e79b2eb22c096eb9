package errors

import (
	"fmt"
	"net/http"

	"admission/internal/domain/entity"
	"admission/internal/errors"
)

// Caller-facing messages. These are the only texts an admission flow ever
// returns; anything not listed here is logged and replaced by MsgUnexpected.
const (
	MsgRegistrationCompleted = "Registration Completed Successfully"
	MsgLoginSuccessful       = "Login Successful"
	MsgEmailExists           = "Email Already Exists"
	MsgUsernameExists        = "Username Already Exists"
	MsgInvalidCredentials    = "Invalid email or password"
	MsgUnexpected            = "Unknown Error Occured! Please Try Again Later"
	MsgInvalidRequestBody    = "Invalid request body"
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

var (
	// ErrInvalidCredentials covers unknown email, wrong password and unusable
	// stored hashes alike so login never reveals which one happened.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		MsgInvalidCredentials,
		"",
	)

	// ErrUnexpected is what every unrecognised collaborator failure becomes.
	ErrUnexpected = NewBaseError(
		http.StatusInternalServerError,
		"UNEXPECTED_ERROR",
		MsgUnexpected,
		"",
	)

	ErrInvalidRequestBody = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INPUT",
		MsgInvalidRequestBody,
		"",
	)
)

// ErrMalformedSecret is returned by the secret hasher when a stored value is
// not a hash it can parse. It is never shown to callers.
var ErrMalformedSecret = errors.New("stored secret is not a well-formed hash")

// ErrSecretMismatch is returned by the secret hasher when the plaintext does not
// match a well-formed stored hash.
var ErrSecretMismatch = errors.New("secret does not match")

// ValidationError is the first rule violation found in a submission.
type ValidationError struct {
	Field   string
	message string
}

// NewValidationError creates a validation error addressed to field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, message: message}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.message)
}

func (e *ValidationError) HTTPCode() int     { return http.StatusBadRequest }
func (e *ValidationError) ErrorCode() string { return "VALIDATION_FAILED" }
func (e *ValidationError) Message() string   { return e.message }
func (e *ValidationError) Details() string   { return e.Field }

// DuplicateIdentityError reports that a registration collided with an
// existing account on Field.
type DuplicateIdentityError struct {
	Field entity.DuplicateField
}

// NewDuplicateIdentityError creates a duplicate error for field.
func NewDuplicateIdentityError(field entity.DuplicateField) *DuplicateIdentityError {
	return &DuplicateIdentityError{Field: field}
}

func (e *DuplicateIdentityError) Error() string {
	return fmt.Sprintf("duplicate identity on %s", e.Field)
}

func (e *DuplicateIdentityError) HTTPCode() int { return http.StatusConflict }

func (e *DuplicateIdentityError) ErrorCode() string {
	if e.Field == entity.DuplicateUsername {
		return "USERNAME_ALREADY_EXISTS"
	}

	return "EMAIL_ALREADY_EXISTS"
}

func (e *DuplicateIdentityError) Message() string {
	if e.Field == entity.DuplicateUsername {
		return MsgUsernameExists
	}

	return MsgEmailExists
}

func (e *DuplicateIdentityError) Details() string { return string(e.Field) }

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

// Unwrap exposes the driver error to errors.Is and errors.As.
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

// Message never carries driver text; callers only see the generic message.
func (e *DatabaseExecuteError) Message() string {
	return MsgUnexpected
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
