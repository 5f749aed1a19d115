//go:build release

package checks

// DebugAssertions is true unless the binary is built with the release tag.
const DebugAssertions = false
