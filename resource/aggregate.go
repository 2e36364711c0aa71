package resource

import (
	"strings"

	"go.uber.org/multierr"

	"github.com/next-trace/scg-resource/contract"
)

// Aggregate groups sibling failures under a shared parent message,
// e.g. "Could not resolve all dependencies".
type Aggregate struct {
	message  string
	failures []error
}

var _ contract.Contextual = (*Aggregate)(nil)

// Collect groups errs under message.
//
// Nil entries are dropped and nil is returned when nothing is left. Contextual
// errors are kept as individual siblings. Bare error groups (multierr
// combinations, errors.Join results) are flattened into their members; any
// other multi-wrapper, such as fmt.Errorf with several %w verbs, carries text
// of its own and stays a single sibling.
func Collect(message string, errs ...error) error {
	var failures []error
	for _, err := range errs {
		failures = appendFlat(failures, err)
	}

	if len(failures) == 0 {
		return nil
	}

	return &Aggregate{message: message, failures: failures}
}

func appendFlat(dst []error, err error) []error {
	if err == nil {
		return dst
	}

	if IsContextual(err) {
		return append(dst, err)
	}

	members, ok := groupMembers(err)
	if !ok {
		return append(dst, err)
	}

	for _, e := range members {
		dst = appendFlat(dst, e)
	}

	return dst
}

// groupMembers returns the members of err when err is a bare group: its text is
// exactly its members' text joined the way errors.Join ("\n") or multierr ("; ")
// joins them.
func groupMembers(err error) ([]error, bool) {
	var members []error
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		members = joined.Unwrap()
	} else {
		members = multierr.Errors(err)
	}

	if len(members) <= 1 {
		return nil, false
	}

	text := err.Error()
	if text != joinText(members, "\n") && text != joinText(members, "; ") {
		return nil, false
	}

	return members, true
}

func joinText(errs []error, sep string) string {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		if e != nil {
			parts = append(parts, e.Error())
		}
	}

	return strings.Join(parts, sep)
}

func (a *Aggregate) Error() string {
	if a == nil {
		return "<nil>"
	}

	parts := make([]string, 0, len(a.failures))
	for _, f := range a.failures {
		parts = append(parts, f.Error())
	}

	if a.message == "" {
		return strings.Join(parts, "; ")
	}

	return a.message + ": " + strings.Join(parts, "; ")
}

func (a *Aggregate) Message() string {
	if a == nil {
		return ""
	}
	return a.message
}

// Failures returns a copy of the collected siblings.
func (a *Aggregate) Failures() []error {
	if a == nil || len(a.failures) == 0 {
		return nil
	}

	out := make([]error, len(a.failures))
	copy(out, a.failures)

	return out
}

// Errors satisfies the error-group interface understood by multierr and zap.
func (a *Aggregate) Errors() []error { return a.Failures() }

// Unwrap lets errors.Is / errors.As search every sibling.
func (a *Aggregate) Unwrap() []error { return a.Failures() }

func (a *Aggregate) Contextual() bool { return true }
