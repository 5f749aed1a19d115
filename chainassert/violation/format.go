package violation

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// MaxLoggedMessageLength bounds the message copy handed to a Logger. The
// message carried by the panic is never shortened.
const MaxLoggedMessageLength = 200

// FormatValue renders an assertion payload for a violation message.
//
// Strings are quoted so an empty or padded payload stays visible; every other
// value renders with %v, which lets error and fmt.Stringer payloads use their
// own text.
func FormatValue(v any) string {
	if s, ok := v.(string); ok {
		return strconv.Quote(s)
	}

	return fmt.Sprintf("%v", v)
}

// summarize shortens s to at most MaxLoggedMessageLength bytes without
// splitting a UTF-8 sequence, noting how many bytes were dropped.
func summarize(s string) string {
	if len(s) <= MaxLoggedMessageLength {
		return s
	}

	cut := MaxLoggedMessageLength
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}

	return s[:cut] + "... (truncated " + strconv.Itoa(len(s)-cut) + " bytes)"
}
