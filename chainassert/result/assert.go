package result

import (
	"github.com/LerianStudio/lib-chainassert/chainassert/internal/checks"
	"github.com/LerianStudio/lib-chainassert/chainassert/violation"
)

// Skip counts passed to the raise helpers are frames above the helper that
// calls violation.Raise, chosen so each panic blames the assertion's caller.

// AssertSuccess returns r unchanged if it is a success.
//
// Panics with "Expected success, got failure(<e>)" otherwise.
func (r Result[T, E]) AssertSuccess() Result[T, E] {
	if r.failed {
		r.raiseSuccess(2, "AssertSuccess")
	}

	return r
}

// DebugAssertSuccess is AssertSuccess in debug builds and a no-op otherwise.
func (r Result[T, E]) DebugAssertSuccess() Result[T, E] {
	if checks.Enabled && r.failed {
		r.raiseSuccess(2, "DebugAssertSuccess")
	}

	return r
}

// AssertSuccessAnd returns r unchanged if it is a success and pred holds for
// its value.
//
// pred is called at most once and never for a failure. Panics with
// "Expected success, got failure(<e>)" on a failure and with
// "Condition not satisfied for success(<v>)" when pred returns false.
func (r Result[T, E]) AssertSuccessAnd(pred func(T) bool) Result[T, E] {
	r.checkSuccessAnd(3, "AssertSuccessAnd", pred)

	return r
}

// DebugAssertSuccessAnd is AssertSuccessAnd in debug builds and a no-op
// otherwise. pred is never called when debug checks are disabled.
func (r Result[T, E]) DebugAssertSuccessAnd(pred func(T) bool) Result[T, E] {
	if checks.Enabled {
		r.checkSuccessAnd(3, "DebugAssertSuccessAnd", pred)
	}

	return r
}

// AssertFailure returns r unchanged if it is a failure.
//
// Panics with "Expected failure, got success(<v>)" otherwise.
func (r Result[T, E]) AssertFailure() Result[T, E] {
	if !r.failed {
		r.raiseFailure(2, "AssertFailure")
	}

	return r
}

// DebugAssertFailure is AssertFailure in debug builds and a no-op otherwise.
func (r Result[T, E]) DebugAssertFailure() Result[T, E] {
	if checks.Enabled && !r.failed {
		r.raiseFailure(2, "DebugAssertFailure")
	}

	return r
}

// AssertFailureAnd returns r unchanged if it is a failure and pred holds for
// its failure value.
//
// pred is called at most once and never for a success. Panics with
// "Expected failure, got success(<v>)" on a success and with
// "Condition not satisfied for failure(<e>)" when pred returns false.
func (r Result[T, E]) AssertFailureAnd(pred func(E) bool) Result[T, E] {
	r.checkFailureAnd(3, "AssertFailureAnd", pred)

	return r
}

// DebugAssertFailureAnd is AssertFailureAnd in debug builds and a no-op
// otherwise. pred is never called when debug checks are disabled.
func (r Result[T, E]) DebugAssertFailureAnd(pred func(E) bool) Result[T, E] {
	if checks.Enabled {
		r.checkFailureAnd(3, "DebugAssertFailureAnd", pred)
	}

	return r
}

func (r Result[T, E]) checkSuccessAnd(skip int, assertion string, pred func(T) bool) {
	if r.failed {
		r.raiseSuccess(skip, assertion)
	}

	if !pred(r.value) {
		violation.Raisef(skip-1, assertion, "Condition not satisfied for success(%s)", violation.FormatValue(r.value))
	}
}

func (r Result[T, E]) checkFailureAnd(skip int, assertion string, pred func(E) bool) {
	if !r.failed {
		r.raiseFailure(skip, assertion)
	}

	if !pred(r.err) {
		violation.Raisef(skip-1, assertion, "Condition not satisfied for failure(%s)", violation.FormatValue(r.err))
	}
}

func (r Result[T, E]) raiseSuccess(skip int, assertion string) {
	violation.Raisef(skip, assertion, "Expected success, got failure(%s)", violation.FormatValue(r.err))
}

func (r Result[T, E]) raiseFailure(skip int, assertion string) {
	violation.Raisef(skip, assertion, "Expected failure, got success(%s)", violation.FormatValue(r.value))
}
