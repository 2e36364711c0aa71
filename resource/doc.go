// Package resource provides the error type reported when access to an external
// resource fails.
//
// It exposes a single concrete type Error that implements contract.Failure and
// contract.Contextual and integrates with the standard library's errors helpers
// (Is/As) via Unwrap.
//
// Key characteristics:
//   - Human-readable Message for this level of the chain only
//   - Optional underlying cause preserved verbatim for errors.Is / errors.As
//   - Optional Location naming the resource that failed
//   - Always contextual, so reporting code may collect it with sibling failures
//   - Immutable once constructed; safe to share between goroutines
//
// Producers translate their native errors exactly once at the boundary with
// Wrap, Translate or one of the canonical helpers (GetFailed, PutFailed, ...).
// Consumers walk the chain with Walk/Messages and group failures with Collect.
package resource
