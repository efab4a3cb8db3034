// Package fault carries the error kinds the lifecycle operations report:
// invalid arguments, acquisition exhaustion, and unresolvable references.
// Errors are matched by code, so callers use errors.Is against the
// package-level sentinels or IsCode when they hold a code directly.
package fault

import (
	"errors"
	"fmt"
)

// Code classifies a failure.
type Code uint8

const (
	// Unknown is the zero code; it never matches a classified error.
	Unknown Code = iota
	// InvalidArgument marks a rejected input: bad size, name, or message.
	InvalidArgument
	// OutOfMemory marks acquisition exhaustion at any stage.
	OutOfMemory
	// NotFound marks an entity reference that does not belong to the world.
	NotFound
)

func (c Code) String() string {
	switch c {
	case InvalidArgument:
		return "invalid argument"
	case OutOfMemory:
		return "out of memory"
	case NotFound:
		return "not found"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is. Each matches any *Error with the same code.
var (
	ErrInvalidArgument = &Error{Code: InvalidArgument, Msg: "invalid argument"}
	ErrOutOfMemory     = &Error{Code: OutOfMemory, Msg: "out of memory"}
	ErrNotFound        = &Error{Code: NotFound, Msg: "not found"}
)

// Error is the classified error type.
type Error struct {
	Code Code
	Msg  string
	Err  error // wrapped cause, may be nil
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target matches this error by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a classified error.
func New(code Code, msg string) *Error {
	return &Error{Code: code, Msg: msg}
}

// Newf creates a classified error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...)}
}

// Wrap classifies an underlying cause.
func Wrap(code Code, msg string, cause error) *Error {
	return &Error{Code: code, Msg: msg, Err: cause}
}

// IsCode reports whether any error in err's chain carries the given code.
func IsCode(err error, code Code) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}

// CodeOf returns the code of the first classified error in err's chain,
// or Unknown when the chain carries none.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return Unknown
}
