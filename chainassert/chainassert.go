package chainassert

import "github.com/LerianStudio/lib-chainassert/chainassert/internal/checks"

// DebugChecksEnabled reports whether DebugAssert* methods are enforced in this build.
const DebugChecksEnabled = checks.Enabled
