package resource

// Option configures an Error during construction via E().
type Option func(*Error)

// WithCause sets the underlying cause to be returned by Cause() and Unwrap().
func WithCause(cause error) Option { return func(e *Error) { e.cause = cause } }

// WithLocation records the identifier of the resource that failed.
func WithLocation(location string) Option { return func(e *Error) { e.location = location } }

// E is a builder for when the failure needs more than a message and a cause.
// Options only ever touch the value being built.
func E(message string, opts ...Option) *Error {
	e := &Error{message: message}
	for _, o := range opts {
		if o != nil {
			o(e)
		}
	}

	return e
}
