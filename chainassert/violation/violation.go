package violation

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"
)

// ErrInvariantViolated is the sentinel error for failed assertions.
var ErrInvariantViolated = errors.New("invariant violated")

// Error describes a failed assertion and where it was asserted.
type Error struct {
	// Assertion is the name of the assertion method, e.g. "AssertPresent".
	Assertion string
	// Message is the human readable reason, e.g. "Expected present, got absent".
	Message  string
	File     string
	Line     int
	Function string
}

// Error returns the message followed by the asserting call site.
func (e *Error) Error() string {
	if e == nil {
		return ErrInvariantViolated.Error()
	}

	if e.File == "" {
		return e.Message
	}

	return e.Message + " (at " + e.Location() + ")"
}

// Unwrap returns the sentinel violation error for errors.Is.
func (e *Error) Unwrap() error {
	return ErrInvariantViolated
}

// Location returns "file:line" using the base name of the file.
func (e *Error) Location() string {
	if e == nil || e.File == "" {
		return ""
	}

	return filepath.Base(e.File) + ":" + strconv.Itoa(e.Line)
}

// Raise reports a violation and panics with an *Error.
//
// skip is the number of frames between the caller of Raise and the frame that
// should be blamed: 0 blames the function calling Raise, 1 blames its caller.
// The option and result assertions pick skip so the panic points at user code.
func Raise(skip int, assertion, msg string) {
	err := newError(skip+1, assertion, msg)

	report(err)

	panic(err)
}

// Raisef is Raise with a formatted message.
func Raisef(skip int, assertion, format string, args ...any) {
	err := newError(skip+1, assertion, fmt.Sprintf(format, args...))

	report(err)

	panic(err)
}

func newError(skip int, assertion, msg string) *Error {
	err := &Error{Assertion: assertion, Message: msg}

	// +2 skips runtime.Callers and newError.
	var pcs [1]uintptr
	if runtime.Callers(skip+2, pcs[:]) == 0 {
		return err
	}

	frame, _ := runtime.CallersFrames(pcs[:]).Next()
	err.File = frame.File
	err.Line = frame.Line
	err.Function = frame.Function

	return err
}
