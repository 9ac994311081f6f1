package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes for categorizing errors
const (
	ErrConfig = "CONFIG"
	ErrProbe  = "PROBE"
	ErrPane   = "PANE"
	ErrOutput = "OUTPUT"
)

// Error represents a structured error with code, message, suggestion, and optional cause.
// Rendered as:
//
//	✗ <What failed>
//
//	  <Why it failed - technical details>
//
//	  <How to fix it - actionable steps>
type Error struct {
	Code       string
	Message    string
	Suggestion string
	Cause      error

	// Ref is the pane or split identity for ErrPane errors.
	Ref string
}

// New creates a new structured error with the given code, message, and suggestion.
func New(code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
	}
}

// Wrap wraps an existing error with a message, defaulting to ErrProbe code.
func Wrap(err error, message string) *Error {
	return &Error{
		Code:    ErrProbe,
		Message: message,
		Cause:   err,
	}
}

// WrapWithCode wraps an existing error with a specific code, message, and suggestion.
func WrapWithCode(err error, code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
		Cause:      err,
	}
}

// NewInvalidPaneReference reports a pane or split identity that is not part
// of the current layout. kind is "pane" or "split".
func NewInvalidPaneReference(kind string, id fmt.Stringer) *Error {
	return &Error{
		Code:       ErrPane,
		Message:    fmt.Sprintf("No %s %s in the current layout", kind, id),
		Suggestion: "The layout changed since this reference was taken; pick a visible pane.",
		Ref:        id.String(),
	}
}

// IsInvalidPaneReference reports whether err is an invalid pane/split reference.
func IsInvalidPaneReference(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == ErrPane && e.Ref != ""
	}
	return false
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder

	// First line: failure symbol + main message
	b.WriteString(fmt.Sprintf("✗ %s\n", e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Cause.Error()))
	}

	if e.Suggestion != "" {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Suggestion))
	}

	return b.String()
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsCode checks if an error is a structured Error with the given code.
func IsCode(err error, code string) bool {
	if err == nil {
		return false
	}
	var svErr *Error
	if errors.As(err, &svErr) {
		return svErr.Code == code
	}
	return false
}
