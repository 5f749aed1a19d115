//go:build unit

package zap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/LerianStudio/lib-chainassert/chainassert/option"
	"github.com/LerianStudio/lib-chainassert/chainassert/result"
	"github.com/LerianStudio/lib-chainassert/chainassert/violation"
)

func newObservedReporter(level zapcore.Level) (*Reporter, *observer.ObservedLogs) {
	core, observed := observer.New(level)

	return NewReporter(zap.New(core)), observed
}

func installReporter(t *testing.T, reporter *Reporter, production bool) {
	t.Helper()

	violation.SetLogger(reporter)
	violation.SetProductionMode(production)

	t.Cleanup(func() {
		violation.SetLogger(nil)
		violation.SetProductionMode(false)
	})
}

func recoverPanic(fn func()) (recovered any) {
	defer func() { recovered = recover() }()

	fn()

	return nil
}

func TestReporterNilReceiverFallsBackToNop(t *testing.T) {
	var reporter *Reporter

	assert.NotPanics(t, func() {
		reporter.LogViolation(context.Background(), violation.Report{Summary: "x"})
	})
	assert.NotNil(t, reporter.Raw())
}

func TestLogViolation_EncodesErrorFields(t *testing.T) {
	reporter, observed := newObservedReporter(zapcore.DebugLevel)

	reporter.LogViolation(context.Background(), violation.Report{
		Err: &violation.Error{
			Assertion: "AssertSuccess",
			Message:   `Expected success, got failure("disk full")`,
			File:      "/src/ledger/balance.go",
			Line:      42,
			Function:  "ledger.Post",
		},
		Summary: `Expected success, got failure("disk full")`,
		Stack:   []byte("goroutine 1 [running]:"),
	})

	entries := observed.All()
	require.Len(t, entries, 1)

	entry := entries[0]
	fields := entry.ContextMap()

	assert.Equal(t, zapcore.ErrorLevel, entry.Level)
	assert.Equal(t, `ASSERTION FAILED: Expected success, got failure("disk full")`, entry.Message)
	assert.Equal(t, "AssertSuccess", fields["assertion"])
	assert.Equal(t, "balance.go:42", fields["caller"])
	assert.Equal(t, "ledger.Post", fields["function"])
	assert.Equal(t, "goroutine 1 [running]:", fields["stack"])
}

func TestLogViolation_OmitsEmptyFields(t *testing.T) {
	reporter, observed := newObservedReporter(zapcore.DebugLevel)

	reporter.LogViolation(context.Background(), violation.Report{
		Err:     &violation.Error{Assertion: "AssertPresent", Message: "Expected present, got absent"},
		Summary: "Expected present, got absent",
	})

	entries := observed.All()
	require.Len(t, entries, 1)
	assert.NotContains(t, entries[0].ContextMap(), "stack")
	assert.NotContains(t, entries[0].ContextMap(), "function")
}

func TestLogViolation_RespectsLevel(t *testing.T) {
	core, observed := observer.New(zapcore.FatalLevel)
	reporter := NewReporter(zap.New(core))

	reporter.LogViolation(context.Background(), violation.Report{Summary: "dropped"})

	assert.Zero(t, observed.Len())
}

func TestReporterReceivesOptionViolation(t *testing.T) {
	reporter, observed := newObservedReporter(zapcore.DebugLevel)
	installReporter(t, reporter, false)

	recovered := recoverPanic(func() {
		option.None[int]().AssertPresent()
	})
	require.NotNil(t, recovered)

	entries := observed.All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	assert.Equal(t, "ASSERTION FAILED: Expected present, got absent", entries[0].Message)
	assert.Equal(t, "AssertPresent", fields["assertion"])
	assert.Contains(t, fields["caller"], "reporter_test.go:")
	assert.Contains(t, fields["function"], "TestReporterReceivesOptionViolation")
	assert.Contains(t, fields["stack"], "goroutine")
}

func TestReporterReceivesResultViolationInProduction(t *testing.T) {
	reporter, observed := newObservedReporter(zapcore.DebugLevel)
	installReporter(t, reporter, true)

	recovered := recoverPanic(func() {
		result.Ok[int, string](19).AssertSuccessAnd(func(v int) bool { return v >= 20 })
	})
	require.NotNil(t, recovered)

	entries := observed.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "ASSERTION FAILED: Condition not satisfied for success(19)", entries[0].Message)
	assert.NotContains(t, entries[0].ContextMap(), "stack")
}

func TestNewRejectsInvalidLevel(t *testing.T) {
	_, err := New(Config{Level: "loud"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid level "loud"`)
}

func TestNewResolvesLevel(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		enabled zapcore.Level
		dropped zapcore.Level
	}{
		{name: "defaults to error", cfg: Config{}, enabled: zapcore.ErrorLevel, dropped: zapcore.WarnLevel},
		{name: "explicit level", cfg: Config{Level: "warn", Production: true}, enabled: zapcore.WarnLevel, dropped: zapcore.InfoLevel},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			reporter, err := New(tt.cfg)
			require.NoError(t, err)

			core := reporter.Raw().Core()
			assert.True(t, core.Enabled(tt.enabled))
			assert.False(t, core.Enabled(tt.dropped))
		})
	}
}

func TestNewWithOTelTeeWritesViolations(t *testing.T) {
	reporter, err := New(Config{OTelLibraryName: "chainassert"})
	require.NoError(t, err)

	assert.True(t, reporter.Raw().Core().Enabled(zapcore.ErrorLevel))
	assert.NotPanics(t, func() {
		reporter.LogViolation(context.Background(), violation.Report{
			Err:     &violation.Error{Assertion: "AssertAbsent", Message: `Expected absent, got present("x")`},
			Summary: `Expected absent, got present("x")`,
		})
	})
}

func TestSetupInstallsReporterAndMode(t *testing.T) {
	t.Cleanup(func() {
		violation.SetLogger(nil)
		violation.SetProductionMode(false)
	})

	reporter, err := Setup(Config{Production: true})
	require.NoError(t, err)
	require.NotNil(t, reporter)

	assert.True(t, violation.IsProductionMode())

	_, err = Setup(Config{Level: "loud"})
	require.Error(t, err)
	assert.True(t, violation.IsProductionMode(), "a failed Setup must not change the installed mode")
}
