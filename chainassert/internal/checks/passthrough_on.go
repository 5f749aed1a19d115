//go:build chainassert_passthrough

package checks

// Passthrough is set by the chainassert_passthrough build tag.
const Passthrough = true
