// Package contract exposes the minimal resource-failure interfaces used by other packages.
//
// Implementations must support errors.Unwrap so standard error helpers can walk
// the cause chain.
package contract

// Failure is the minimal, stable surface of a resource-access failure.
//
// Implementations must:
//   - Return only the description attached at this level from Message().
//   - Return the wrapped error verbatim from Cause() (nil when terminal).
//   - Support errors.Unwrap via Unwrap(), returning the same value as Cause().
type Failure interface {
	error
	Message() string
	Cause() error
	Unwrap() error
}

// Contextual is the capability queried by aggregation and reporting code.
//
// A value reporting true may be collected alongside sibling failures under a
// shared parent message instead of being nested strictly as a single cause.
type Contextual interface {
	error
	Contextual() bool
}
