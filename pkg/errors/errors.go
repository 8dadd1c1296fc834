// Package errors provides structured error types for the mgn application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and the computation engine
//   - Machine-readable error codes for programmatic handling
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - MALFORMED_*: Structural invariant violations in constructed graphs
//   - CHECKPOINT_*: Saved-state restore failures
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeMalformedGraph, "half-edge %d used %d times", h, count)
//	if errors.Is(err, errors.ErrCodeMalformedGraph) {
//	    // Reject the offending graph
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeRankUnavailable, origErr, "rank of D[%d]", level)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput Code = "INVALID_INPUT"
	ErrCodeInvalidGenus Code = "INVALID_GENUS"

	// Structural invariant violations. A graph failing construction with
	// this code is discarded, never silently accepted.
	ErrCodeMalformedGraph Code = "MALFORMED_GRAPH"

	// Euler characteristic lookups outside the tabulated range.
	ErrCodeUnknownEuler Code = "UNKNOWN_EULER_CHARACTERISTICS"

	// Exact-rank capability failures. Fatal for the whole (g,n) run:
	// homology numbers are never reported as partial or approximate.
	ErrCodeRankUnavailable Code = "RANK_UNAVAILABLE"

	// Checkpoint restore failures
	ErrCodeCheckpointMismatch Code = "CHECKPOINT_MISMATCH"
	ErrCodeCheckpointNotFound Code = "CHECKPOINT_NOT_FOUND"

	// Internal errors
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
