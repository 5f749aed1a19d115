// Package checks resolves, at build time, whether debug-gated assertions are enforced.
//
// Two build tags feed the decision:
//
//	release                  turns the debug profile off
//	chainassert_passthrough  disables debug-gated checks even in debug builds
//
// Enabled is an untyped constant, so a branch guarded by it is removed by the
// compiler when it is false.
package checks

// Enabled reports whether debug-gated assertions run in this build.
const Enabled = DebugAssertions && !Passthrough
