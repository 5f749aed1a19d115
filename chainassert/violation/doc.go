// Package violation is the single failure path shared by the option and result
// assertions.
//
// Raise builds an *Error attributed to the assertion's call site, reports it
// through the configured Logger and the assertion_failed_total
// OpenTelemetry counter, and then panics with it. There is no recoverable
// path: an assertion states something the author believes cannot be false.
//
// Reporting is configured once at startup:
//
//	violation.SetLogger(logger) // or chainassert/zap.Setup
//	violation.SetMeterProvider(provider)
//	violation.SetProductionMode(true)
//
// A panic value can be recognised with errors.Is(err, violation.ErrInvariantViolated)
// after recovering it as an error.
package violation
