// Package zap reports invariant violations through go.uber.org/zap.
//
// Setup builds a zap-backed Reporter and installs it as the violation logger:
//
//	if _, err := zap.Setup(zap.Config{Production: true, OTelLibraryName: "ledger"}); err != nil {
//		return err
//	}
//
// Each violation becomes one error entry carrying the assertion name, the
// asserting call site and, outside production, the goroutine stack.
package zap
