package resource

import (
	"github.com/next-trace/scg-resource/contract"
)

// defaultMessage is reported by Error() when neither a message nor a cause is set.
const defaultMessage = "resource failure"

// Error reports that something went wrong while accessing an external resource.
//
// Fields:
//   - Message:  description attached at this level (e.g. "Could not get resource 'x'")
//   - Cause:    the wrapped lower-level failure, if any
//   - Location: the resource identifier (URI, path, cache key), if known
type Error struct {
	message  string
	location string
	cause    error
}

// compile-time guarantees
var (
	_ contract.Failure    = (*Error)(nil)
	_ contract.Contextual = (*Error)(nil)
)

// ------ standard error interface

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	switch {
	case e.message == "" && e.cause == nil:
		return defaultMessage
	case e.message == "":
		return e.cause.Error()
	case e.cause == nil:
		return e.message
	}

	return e.message + ": " + e.cause.Error()
}

func (e *Error) Unwrap() error { return e.Cause() }

// ------ contract getters

func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

func (e *Error) Cause() error {
	if e == nil {
		return nil
	}
	return e.cause
}

func (e *Error) Location() string {
	if e == nil {
		return ""
	}
	return e.location
}

// Contextual reports true for every resource failure, whichever constructor built it.
func (e *Error) Contextual() bool { return true }

// ------ core constructors

// New creates a terminal failure that originates at this layer.
func New(message string) *Error {
	return &Error{message: message}
}

// Wrap creates a failure that re-reports cause in resource-access terms.
// The cause is kept as-is and returned by Cause() and Unwrap().
// A nil cause produces the same terminal failure as New.
func Wrap(cause error, message string) *Error {
	return &Error{message: message, cause: cause}
}
