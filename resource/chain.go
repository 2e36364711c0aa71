package resource

import (
	"errors"

	"github.com/next-trace/scg-resource/contract"
)

// Walk calls fn for err and then for every error reached through errors.Unwrap,
// outermost first. It stops early when fn returns false.
//
// Multi-errors (Unwrap() []error) end the walk; use Collect/Failures for those.
func Walk(err error, fn func(error) bool) {
	for err != nil {
		if !fn(err) {
			return
		}
		err = errors.Unwrap(err)
	}
}

// Chain returns err followed by each of its causes.
func Chain(err error) []error {
	var out []error
	Walk(err, func(e error) bool {
		out = append(out, e)
		return true
	})

	return out
}

// Depth is the number of values in err's chain, err included.
func Depth(err error) int {
	n := 0
	Walk(err, func(error) bool {
		n++
		return true
	})

	return n
}

// Root returns the innermost error of the chain, or nil for a nil err.
func Root(err error) error {
	var root error
	Walk(err, func(e error) bool {
		root = e
		return true
	})

	return root
}

// Messages returns one line per level, outermost context first.
// A contract.Failure contributes its own Message(); any other error its Error().
func Messages(err error) []string {
	var out []string
	Walk(err, func(e error) bool {
		if f, ok := e.(contract.Failure); ok {
			out = append(out, f.Message())
			return true
		}
		out = append(out, e.Error())
		return true
	})

	return out
}

// IsContextual reports whether err itself advertises the contextual capability.
// Causes further down the chain are not consulted.
func IsContextual(err error) bool {
	c, ok := err.(contract.Contextual)
	return ok && c.Contextual()
}
