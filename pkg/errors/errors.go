package errors

import (
	"errors"
	"fmt"
)

// Error represents a typed planner error identified by its code.
type Error struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is reports whether target carries the same code, so clones and wraps of a
// predefined error match it under errors.Is.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) || e == nil || t == nil {
		return false
	}
	return e.Code == t.Code
}

// New creates a new Error instance.
func New(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code, message string) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}

// Clonef is Clone with a formatted message.
func Clonef(err *Error, format string, args ...any) *Error {
	return Clone(err, fmt.Sprintf(format, args...))
}

// Predefined errors.
var (
	ErrMalformedTimeRange     = New("MALFORMED_TIME_RANGE", "malformed time range")
	ErrInconsistentCourseData = New("INCONSISTENT_COURSE_DATA", "inconsistent course data")
	ErrInvalidSelection       = New("INVALID_SELECTION", "invalid selection")
	ErrFetchFailed            = New("FETCH_FAILED", "failed to fetch course data")
	ErrInvalidConfig          = New("INVALID_CONFIG", "invalid configuration")
	ErrExportFailed           = New("EXPORT_FAILED", "failed to export schedule")
)

// CodeOf returns the code of the first *Error in err's chain, or "" if none.
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
