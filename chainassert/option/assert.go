package option

import (
	"github.com/LerianStudio/lib-chainassert/chainassert/internal/checks"
	"github.com/LerianStudio/lib-chainassert/chainassert/violation"
)

const msgExpectedPresent = "Expected present, got absent"

// Skip counts passed to the raise helpers are frames above the helper that
// calls violation.Raise, chosen so each panic blames the assertion's caller.

// AssertPresent returns o unchanged if a value is present.
//
// Panics with "Expected present, got absent" otherwise.
func (o Option[T]) AssertPresent() Option[T] {
	if !o.ok {
		raisePresent(2, "AssertPresent")
	}

	return o
}

// DebugAssertPresent is AssertPresent in debug builds and a no-op otherwise.
func (o Option[T]) DebugAssertPresent() Option[T] {
	if checks.Enabled && !o.ok {
		raisePresent(2, "DebugAssertPresent")
	}

	return o
}

// AssertPresentAnd returns o unchanged if a value is present and pred holds for it.
//
// pred is called at most once and only for a present value. Panics with
// "Expected present, got absent" when absent and with
// "Condition not satisfied for <value>" when pred returns false.
func (o Option[T]) AssertPresentAnd(pred func(T) bool) Option[T] {
	o.checkPresentAnd(3, "AssertPresentAnd", pred)

	return o
}

// DebugAssertPresentAnd is AssertPresentAnd in debug builds and a no-op otherwise.
// pred is never called when debug checks are disabled.
func (o Option[T]) DebugAssertPresentAnd(pred func(T) bool) Option[T] {
	if checks.Enabled {
		o.checkPresentAnd(3, "DebugAssertPresentAnd", pred)
	}

	return o
}

// AssertAbsent returns o unchanged if it is absent.
//
// Panics with "Expected absent, got present(<value>)" otherwise.
func (o Option[T]) AssertAbsent() Option[T] {
	if o.ok {
		o.raiseAbsent(2, "AssertAbsent")
	}

	return o
}

// DebugAssertAbsent is AssertAbsent in debug builds and a no-op otherwise.
func (o Option[T]) DebugAssertAbsent() Option[T] {
	if checks.Enabled && o.ok {
		o.raiseAbsent(2, "DebugAssertAbsent")
	}

	return o
}

func (o Option[T]) checkPresentAnd(skip int, assertion string, pred func(T) bool) {
	if !o.ok {
		raisePresent(skip, assertion)
	}

	if !pred(o.value) {
		violation.Raisef(skip-1, assertion, "Condition not satisfied for %s", violation.FormatValue(o.value))
	}
}

func raisePresent(skip int, assertion string) {
	violation.Raise(skip, assertion, msgExpectedPresent)
}

func (o Option[T]) raiseAbsent(skip int, assertion string) {
	violation.Raisef(skip, assertion, "Expected absent, got present(%s)", violation.FormatValue(o.value))
}
