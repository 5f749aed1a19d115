//go:build unit

package option

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LerianStudio/lib-chainassert/chainassert/violation"
)

func recoverPanic(fn func()) (recovered any) {
	defer func() { recovered = recover() }()

	fn()

	return nil
}

// requireViolation runs fn, requires it to panic with a *violation.Error
// carrying msg, and returns that error.
func requireViolation(t *testing.T, msg string, fn func()) *violation.Error {
	t.Helper()

	recovered := recoverPanic(fn)
	require.NotNil(t, recovered, "expected a violation panic")

	verr, ok := recovered.(*violation.Error)
	require.Truef(t, ok, "panic value %T is not *violation.Error", recovered)
	require.Equal(t, msg, verr.Message)
	require.ErrorIs(t, verr, violation.ErrInvariantViolated)

	return verr
}

func requireBlamesThisFile(t *testing.T, verr *violation.Error, file string) {
	t.Helper()

	require.Equal(t, file, filepath.Base(verr.File))
	require.Positive(t, verr.Line)
}

// counter counts predicate invocations.
type counter struct{ calls int }

func (c *counter) pred(result bool) func(int) bool {
	return func(int) bool {
		c.calls++

		return result
	}
}

type nonStringer struct{ ID int }
