// Package option provides Option, a value that is either present or absent,
// with assertion methods that can be chained inline.
//
// Every assertion returns its receiver unchanged when the expectation holds
// and panics with a *violation.Error otherwise:
//
//	port := option.Map(lookupPort(name).AssertPresent(), func(p int) int { return p + 1 })
//
// The Debug variants are only enforced in debug builds (no release build tag)
// without the chainassert_passthrough build tag. Elsewhere they compile to a
// plain return and never call their predicate.
package option
