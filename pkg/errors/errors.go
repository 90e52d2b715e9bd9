// Package errors provides structured error types for PolyGone.
//
// Every rejected game operation is reported as an [*Error] carrying a
// machine-readable [Code]. Rejections are never fatal: the operation that
// produced one left the game state untouched, and the boundary (TUI, HTTP,
// CLI) shows the message to the player.
//
// # Error Codes
//
// Rejections of player actions:
//   - NOT_CONNECTED: the edge shares no endpoint with the current selection
//   - CHAIN_ALREADY_FORMED: the selection is closed, no edge can be added
//   - NO_OP_REMOVAL: remove was requested with nothing selected
//   - CHAIN_NOT_FORMED: remove was requested before the selection closed
//   - UNKNOWN_EDGE: the clicked edge is not in the graph
//
// Input and infrastructure failures:
//   - INVALID_*: malformed input (edges, levels, requests)
//   - INTERNAL_ERROR: unexpected failures such as rendering errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeNotConnected, "edge %s is not connected", e)
//	if errors.Is(err, errors.ErrCodeNotConnected) {
//	    // tell the player
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Player action rejections
	ErrCodeNotConnected       Code = "NOT_CONNECTED"
	ErrCodeChainAlreadyFormed Code = "CHAIN_ALREADY_FORMED"
	ErrCodeNoOpRemoval        Code = "NO_OP_REMOVAL"
	ErrCodeChainNotFormed     Code = "CHAIN_NOT_FORMED"
	ErrCodeUnknownEdge        Code = "UNKNOWN_EDGE"

	// Input validation errors
	ErrCodeInvalidInput Code = "INVALID_INPUT"
	ErrCodeInvalidEdge  Code = "INVALID_EDGE"
	ErrCodeInvalidLevel Code = "INVALID_LEVEL"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// rejections are the codes produced by refused player actions.
var rejections = map[Code]bool{
	ErrCodeNotConnected:       true,
	ErrCodeChainAlreadyFormed: true,
	ErrCodeNoOpRemoval:        true,
	ErrCodeChainNotFormed:     true,
	ErrCodeUnknownEdge:        true,
}

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

// IsRejection reports whether err is a refused player action, as opposed
// to malformed input or an internal failure.
func IsRejection(err error) bool {
	return rejections[GetCode(err)]
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
