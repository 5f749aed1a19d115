// Package chainassert is the root of a small library of inline invariant
// assertions for optional values (package option) and success/failure values
// (package result).
//
// An assertion either returns its receiver unchanged or panics with a
// *violation.Error attributed to the line that made the assertion:
//
//	total := option.Map(prices.Lookup(sku).AssertPresent(), applyTax)
//	result.From(os.ReadFile(path)).AssertSuccessAnd(func(b []byte) bool { return len(b) > 0 })
//
// # Always-checked and debug-gated assertions
//
// AssertX methods always run. DebugAssertX methods run only when
// DebugChecksEnabled is true, which is decided when the binary is built:
//
//	go build                                 debug checks on
//	go build -tags release                   debug checks off
//	go build -tags chainassert_passthrough   debug checks off
//
// When off, a debug assertion is the identity function and never evaluates
// its predicate.
//
// # Reporting
//
// Before panicking, violations are logged through the logger configured with
// violation.SetLogger and counted on the assertion_failed_total
// OpenTelemetry counter.
package chainassert
