package pipeline

import (
	"errors"
	"fmt"
)

// Kind classifies the errors which stop a run.
type Kind uint8

const (
	// KindUnknown is for errors not produced by this package
	KindUnknown Kind = iota

	// MissingInput is for a configuration without an input path
	MissingInput

	// InputNotFound is for an input path which does not exist
	InputNotFound

	// InputUnreadable is for an input path which exists but cannot be read
	InputUnreadable

	// ParseError is for input which is neither a JSON array nor NDJSON
	ParseError

	// InvalidThreshold is for a length threshold which is not a number
	InvalidThreshold

	// OutputWriteError is for an output file which cannot be written
	OutputWriteError
)

func (k Kind) String() string {
	switch k {
	case MissingInput:
		return "missing input"
	case InputNotFound:
		return "input not found"
	case InputUnreadable:
		return "input unreadable"
	case ParseError:
		return "parse error"
	case InvalidThreshold:
		return "invalid threshold"
	case OutputWriteError:
		return "output write error"
	default:
		return "unknown"
	}
}

// Error is returned by all the stages of the pipeline.  Message() is what the
// user is shown; Error() also includes the underlying cause.
type Error struct {
	kind Kind
	op   string
	orig error
}

func newError(kind Kind, op string, orig error) *Error {
	return &Error{kind: kind, op: op, orig: orig}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.orig != nil {
		return fmt.Sprintf("%s: %s: %v", e.op, e.kind, e.orig)
	}
	return fmt.Sprintf("%s: %s", e.op, e.kind)
}

// Unwrap returns the wrapped error, if any
func (e *Error) Unwrap() error { return e.orig }

// Kind returns the error kind
func (e *Error) Kind() Kind { return e.kind }

// Message returns the single line diagnostic shown to the user.  Not found
// and unreadable input share the same message.
func (e *Error) Message() string {
	switch e.kind {
	case MissingInput:
		return "Please, specify input file"
	case InputNotFound, InputUnreadable:
		return "Cannot find input file"
	case ParseError:
		return "Error parsing input file: " + causeString(e.orig)
	case InvalidThreshold:
		return "Length parameter is not a number"
	case OutputWriteError:
		return "Error writing output file: " + causeString(e.orig)
	default:
		return causeString(e.orig)
	}
}

func causeString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// KindOf extracts the Kind of any error, defaulting to KindUnknown
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	return KindUnknown
}

// Message returns the user facing message for any error.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message()
	}
	return err.Error()
}
