package violation

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
	"strings"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	// MetricAssertionFailedTotal is the counter incremented on every violation.
	MetricAssertionFailedTotal = "assertion_failed_total"

	// MeterScope is the instrumentation scope used to create the counter.
	MeterScope = "github.com/LerianStudio/lib-chainassert"

	// MaxMetricLabelLength bounds label values to keep metric cardinality sane.
	MaxMetricLabelLength = 64
)

// Report is what a Logger receives for one violation, just before the panic.
type Report struct {
	Err *Error
	// Summary is Err.Message shortened to MaxLoggedMessageLength bytes.
	Summary string
	// Stack is the goroutine stack, nil in production mode.
	Stack []byte
}

// Logger receives violation reports. Implementations must not retain the
// Report's Stack slice past the call.
type Logger interface {
	LogViolation(ctx context.Context, report Report)
}

var (
	reportMu       sync.RWMutex
	reportLogger   Logger
	meterProvider  metric.MeterProvider
	productionMode *bool
)

// SetLogger configures where violations are logged before the panic.
// Pass nil to stop logging them.
func SetLogger(logger Logger) {
	reportMu.Lock()
	defer reportMu.Unlock()

	reportLogger = logger
}

// SetMeterProvider configures the provider used for assertion_failed_total.
// Pass nil to fall back to the global provider (otel.GetMeterProvider).
func SetMeterProvider(provider metric.MeterProvider) {
	reportMu.Lock()
	defer reportMu.Unlock()

	meterProvider = provider
}

// SetProductionMode controls whether stack traces are attached to violation logs.
// In production mode they are omitted.
func SetProductionMode(enabled bool) {
	reportMu.Lock()
	defer reportMu.Unlock()

	productionMode = &enabled
}

// IsProductionMode reports the mode set by SetProductionMode. When it was never
// set, ENV or GO_ENV equal to "production" (case-insensitive) enables it.
func IsProductionMode() bool {
	reportMu.RLock()
	mode := productionMode
	reportMu.RUnlock()

	if mode != nil {
		return *mode
	}

	env := strings.TrimSpace(os.Getenv("ENV"))
	goEnv := strings.TrimSpace(os.Getenv("GO_ENV"))

	return strings.EqualFold(env, "production") || strings.EqualFold(goEnv, "production")
}

// resetReporting restores the package defaults. Tests only.
func resetReporting() {
	reportMu.Lock()
	defer reportMu.Unlock()

	reportLogger = nil
	meterProvider = nil
	productionMode = nil
}

func reporting() (Logger, metric.MeterProvider) {
	reportMu.RLock()
	defer reportMu.RUnlock()

	provider := meterProvider
	if provider == nil {
		provider = otel.GetMeterProvider()
	}

	return reportLogger, provider
}

// report must never stop the caller from panicking with err, so a misbehaving
// logger or meter is contained here.
func report(err *Error) {
	logger, provider := reporting()

	contained(func() { logViolation(logger, err) })
	contained(func() { countViolation(provider, err) })
}

func contained(fn func()) {
	defer func() { _ = recover() }()

	fn()
}

func logViolation(logger Logger, err *Error) {
	if logger == nil {
		return
	}

	report := Report{Err: err, Summary: summarize(err.Message)}

	if !IsProductionMode() {
		report.Stack = debug.Stack()
	}

	logger.LogViolation(context.Background(), report)
}

func countViolation(provider metric.MeterProvider, err *Error) {
	counter, cerr := provider.Meter(MeterScope).Int64Counter(
		MetricAssertionFailedTotal,
		metric.WithUnit("1"),
		metric.WithDescription("Total number of failed assertions"),
	)
	if cerr != nil {
		fmt.Fprintf(os.Stderr, "failed to create assertion metric counter: %v\n", cerr)
		return
	}

	counter.Add(context.Background(), 1, metric.WithAttributes(
		attribute.String("assertion", sanitizeMetricLabel(err.Assertion)),
	))
}

func sanitizeMetricLabel(value string) string {
	if len(value) > MaxMetricLabelLength {
		return value[:MaxMetricLabelLength]
	}

	return value
}
