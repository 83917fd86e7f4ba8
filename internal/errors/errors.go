// Package errors provides coded domain errors for avatar generation.
//
// Usage:
//
//	// In domain packages - return typed errors
//	if len(hex) != 6 {
//	    return errors.InvalidFormat("hex color must have 3 or 6 digits")
//	}
//
//	// At the boundary - check with errors.Is
//	if errors.Is(err, errors.ErrOutOfRange) {
//	    ...
//	}
//
//	// Or switch on the code
//	var domainErr *errors.Error
//	if errors.As(err, &domainErr) {
//	    switch domainErr.Code {
//	    case errors.CodeInvalidFormat:
//	        ...
//	    }
//	}
package errors

import (
	"errors"
	"fmt"
)

// Re-export standard library functions for convenience.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	Join   = errors.Join
)

// Code represents a machine-readable error code.
type Code string

// Error codes used throughout the module.
const (
	// CodeInvalidFormat marks a malformed input string, e.g. a bad hex color.
	CodeInvalidFormat Code = "INVALID_FORMAT"
	// CodeOutOfRange marks numeric input outside its documented domain.
	CodeOutOfRange Code = "OUT_OF_RANGE"
	// CodeComputation marks an internal invariant violation. Seeing it is a bug.
	CodeComputation Code = "COMPUTATION"
	// CodeUnsupportedCombination marks an avatar kind that cannot serve the
	// supplied identity or email.
	CodeUnsupportedCombination Code = "UNSUPPORTED_COMBINATION"
	// CodeValidation marks transport-level argument problems.
	CodeValidation Code = "VALIDATION"
)

// Error is a domain error with a code, message, and optional cause.
type Error struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
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

// Sentinel errors for use with errors.Is.
var (
	ErrInvalidFormat          = &Error{Code: CodeInvalidFormat, Message: "invalid format"}
	ErrOutOfRange             = &Error{Code: CodeOutOfRange, Message: "out of range"}
	ErrComputation            = &Error{Code: CodeComputation, Message: "computation error"}
	ErrUnsupportedCombination = &Error{Code: CodeUnsupportedCombination, Message: "unsupported combination"}
	ErrValidation             = &Error{Code: CodeValidation, Message: "validation failed"}
)

// New creates an error with the given code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates an error with the given code and a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an error with the given code that wraps cause.
func Wrap(cause error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, cause: cause}
}

// InvalidFormat creates a CodeInvalidFormat error.
func InvalidFormat(format string, args ...any) *Error {
	return Newf(CodeInvalidFormat, format, args...)
}

// OutOfRange creates a CodeOutOfRange error.
func OutOfRange(format string, args ...any) *Error {
	return Newf(CodeOutOfRange, format, args...)
}

// Computation creates a CodeComputation error.
func Computation(format string, args ...any) *Error {
	return Newf(CodeComputation, format, args...)
}

// UnsupportedCombination creates a CodeUnsupportedCombination error.
func UnsupportedCombination(format string, args ...any) *Error {
	return Newf(CodeUnsupportedCombination, format, args...)
}

// Validation creates a CodeValidation error.
func Validation(format string, args ...any) *Error {
	return Newf(CodeValidation, format, args...)
}

// CodeOf returns the code carried by err, or an empty code when err is not
// (and does not wrap) an *Error.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
