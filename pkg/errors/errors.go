// Package errors provides structured error types for the daybook application.
//
// Error codes separate the three failure classes the generator cares about:
//
//   - INVALID_*: programmer errors (bad grid dimensions, bad input). These
//     must not occur in correct caller code and are fatal.
//   - INSUFFICIENT_SPACE: content exceeds its allotted page region. Callers
//     prevent this structurally by sizing variable content from the
//     remaining space.
//   - CONTENT_UNAVAILABLE / NETWORK_*: an external content source failed.
//     Always recovered locally with a deterministic fallback, never
//     propagated out of page composition.
//
// Usage:
//
//	err := errors.New(errors.ErrCodeInvalidLayout, "grid needs positive dimensions, got %dx%d", rows, cols)
//	if errors.Is(err, errors.ErrCodeInvalidLayout) {
//	    // programmer error, abort
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for the failure classes of diary generation.
const (
	// Programmer errors
	ErrCodeInvalidLayout Code = "INVALID_LAYOUT"
	ErrCodeInvalidInput  Code = "INVALID_INPUT"

	// Layout overflow
	ErrCodeInsufficientSpace Code = "INSUFFICIENT_SPACE"

	// External content failures
	ErrCodeContentUnavailable Code = "CONTENT_UNAVAILABLE"
	ErrCodeNetwork            Code = "NETWORK_ERROR"
	ErrCodeNotFound           Code = "NOT_FOUND"

	// Everything else
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
