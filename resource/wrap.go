package resource

import (
	"errors"
	"fmt"
)

// Translate converts a lower-level error into a resource failure exactly once.
//
// Behavior:
//   - nil input => nil output
//   - if the chain already holds an *Error => err is returned as-is
//   - otherwise err is wrapped with message
func Translate(err error, message string) error {
	if err == nil {
		return nil
	}

	if _, ok := As(err); ok {
		return err
	}

	return Wrap(err, message)
}

// As returns the outermost *Error in err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}

	return nil, false
}

// GetFailed reports a failed download of location.
func GetFailed(location string, cause error) *Error {
	return Failure(location, fmt.Sprintf("Could not get resource '%s'", location), cause)
}

// HeadFailed reports a failed metadata lookup of location.
func HeadFailed(location string, cause error) *Error {
	return Failure(location, fmt.Sprintf("Could not HEAD '%s'", location), cause)
}

// PutFailed reports a failed upload to location.
func PutFailed(location string, cause error) *Error {
	return Failure(location, fmt.Sprintf("Could not write to resource '%s'", location), cause)
}

// ReadFailed reports a failure while reading content already obtained from location.
func ReadFailed(location string, cause error) *Error {
	return Failure(location, fmt.Sprintf("Could not read '%s'", location), cause)
}

// GetMissing reports that location does not exist. It has no cause.
func GetMissing(location string) *Error {
	return Failure(location, fmt.Sprintf("Resource missing. [GET: %s]", location), nil)
}

// Failure builds a failure for location with a caller-supplied message.
func Failure(location, message string, cause error) *Error {
	return E(message, WithLocation(location), WithCause(cause))
}
