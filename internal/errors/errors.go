// Package errors provides coded domain errors for the reading-preferences store.
//
// Usage:
//
//	// In the store - return typed errors
//	if !pageType.IsValid() {
//	    return errors.InvalidEnumValuef("unknown page type %q", pageType)
//	}
//
//	// In callers - check with errors.Is
//	if errors.Is(err, errors.ErrInvalidEnumValue) {
//	    response.BadRequest(w, err.Error(), logger)
//	    return
//	}
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Re-export standard library functions for convenience.
var (
	Is = errors.Is
	As = errors.As
)

// Code represents a machine-readable error code.
type Code string

// Error codes used throughout the application.
const (
	CodeInvalidEnumValue Code = "INVALID_ENUM_VALUE"
	CodeValidation       Code = "VALIDATION"
	CodeNotFound         Code = "NOT_FOUND"
	CodeStorageRead      Code = "STORAGE_READ"
	CodeStorageWrite     Code = "STORAGE_WRITE"
	CodeConflict         Code = "CONFLICT"
	CodeInternal         Code = "INTERNAL"
)

// HTTPStatus returns the appropriate HTTP status code for an error code.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeInvalidEnumValue, CodeValidation:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	case CodeStorageRead, CodeStorageWrite:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Error is a domain error with a code, message, and optional details.
type Error struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
	cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target matches this error.
// Matches if target is an *Error with the same Code.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// HTTPStatus returns the HTTP status code for this error.
func (e *Error) HTTPStatus() int {
	return e.Code.HTTPStatus()
}

// WithDetails returns a new error with additional details.
func (e *Error) WithDetails(details any) *Error {
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		cause:   e.cause,
	}
}

// Sentinel errors for use with errors.Is().
var (
	ErrInvalidEnumValue = &Error{Code: CodeInvalidEnumValue, Message: "invalid enum value"}
	ErrValidation       = &Error{Code: CodeValidation, Message: "validation error"}
	ErrNotFound         = &Error{Code: CodeNotFound, Message: "not found"}
	ErrStorageRead      = &Error{Code: CodeStorageRead, Message: "storage read failed"}
	ErrStorageWrite     = &Error{Code: CodeStorageWrite, Message: "storage write failed"}
	ErrConflict         = &Error{Code: CodeConflict, Message: "conflict"}
	ErrInternal         = &Error{Code: CodeInternal, Message: "internal error"}
)

// InvalidEnumValue creates an invalid enum value error.
func InvalidEnumValue(msg string) *Error {
	return &Error{Code: CodeInvalidEnumValue, Message: msg}
}

// InvalidEnumValuef creates an invalid enum value error with formatted message.
func InvalidEnumValuef(format string, args ...any) *Error {
	return &Error{Code: CodeInvalidEnumValue, Message: fmt.Sprintf(format, args...)}
}

// Validation creates a validation error.
func Validation(msg string) *Error {
	return &Error{Code: CodeValidation, Message: msg}
}

// Validationf creates a validation error with formatted message.
func Validationf(format string, args ...any) *Error {
	return &Error{Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

// ValidationWithDetails creates a validation error with details.
func ValidationWithDetails(msg string, details any) *Error {
	return &Error{Code: CodeValidation, Message: msg, Details: details}
}

// NotFound creates a not found error.
func NotFound(msg string) *Error {
	return &Error{Code: CodeNotFound, Message: msg}
}

// Conflict creates a conflict error.
func Conflict(msg string) *Error {
	return &Error{Code: CodeConflict, Message: msg}
}

// Internal wraps an unexpected failure as an internal error.
func Internal(msg string, err error) *Error {
	return &Error{Code: CodeInternal, Message: msg, cause: err}
}

// StorageRead wraps a backend read failure for key.
func StorageRead(key string, err error) *Error {
	return &Error{Code: CodeStorageRead, Message: "read " + key, cause: err}
}

// StorageWrite wraps a backend write failure for key.
func StorageWrite(key string, err error) *Error {
	return &Error{Code: CodeStorageWrite, Message: "write " + key, cause: err}
}
