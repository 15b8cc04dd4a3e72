// Package errs carries coded errors for the interaction engine.
package errs

import (
	"errors"
	"fmt"
)

// Code is an application error code.
type Code string

const (
	// InvalidArgument marks malformed caller input, e.g. a pointer
	// sequence whose first step has no target.
	InvalidArgument Code = "invalid_argument"
	// FailedPrecondition marks the wrong element kind for an operation,
	// e.g. upload on a non-file input.
	FailedPrecondition Code = "failed_precondition"
	// NotFound marks an unmatched lookup, e.g. a select option value.
	NotFound Code = "not_found"
	// Unavailable marks a missing environment, e.g. no document.
	Unavailable Code = "unavailable"
)

// Error is a coded error.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Code)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates a coded error with message.
func New(code Code, message string) error {
	return &Error{Code: code, Message: message}
}

// Newf creates a coded error with a formatted message.
func Newf(code Code, format string, args ...any) error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates a coded error with message and cause.
func Wrap(code Code, message string, cause error) error {
	return &Error{Code: code, Message: message, Err: cause}
}

// CodeOf returns the error code, or "" for nil / uncoded errors.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code
	}
	return ""
}

// HasCode reports whether the error carries the given code.
func HasCode(err error, code Code) bool {
	return CodeOf(err) == code
}
