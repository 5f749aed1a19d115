// Package result provides Result, a value holding either a success payload or
// a failure payload, with assertion methods that can be chained inline.
//
// It bridges the usual (T, error) return pair:
//
//	cfg := result.From(loadConfig()).AssertSuccess()
//
// Every assertion returns its receiver unchanged when the expectation holds and
// panics with a *violation.Error otherwise. The Debug variants are enforced
// only in debug builds without the chainassert_passthrough build tag; elsewhere
// they never evaluate their predicate.
package result
