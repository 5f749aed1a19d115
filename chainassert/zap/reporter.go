package zap

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/LerianStudio/lib-chainassert/chainassert/violation"
)

const messagePrefix = "ASSERTION FAILED: "

// Reporter writes violation reports to a zap logger.
type Reporter struct {
	logger *zap.Logger
}

// Compile-time assertion: *Reporter implements violation.Logger.
var _ violation.Logger = (*Reporter)(nil)

// NewReporter wraps an existing zap logger.
func NewReporter(logger *zap.Logger) *Reporter {
	return &Reporter{logger: logger}
}

func (r *Reporter) must() *zap.Logger {
	if r == nil || r.logger == nil {
		return zap.NewNop()
	}

	return r.logger
}

// LogViolation writes one error entry for report. Fields are only built when
// the logger accepts error entries.
func (r *Reporter) LogViolation(_ context.Context, report violation.Report) {
	ce := r.must().Check(zapcore.ErrorLevel, messagePrefix+report.Summary)
	if ce == nil {
		return
	}

	ce.Write(violationFields(report)...)
}

// Raw returns the underlying zap logger.
func (r *Reporter) Raw() *zap.Logger {
	return r.must()
}

// Sync flushes buffered entries.
func (r *Reporter) Sync() error {
	return r.must().Sync()
}

func violationFields(report violation.Report) []zap.Field {
	fields := make([]zap.Field, 0, 4)

	if err := report.Err; err != nil {
		fields = append(fields,
			zap.String("assertion", err.Assertion),
			zap.String("caller", err.Location()),
		)

		if err.Function != "" {
			fields = append(fields, zap.String("function", err.Function))
		}
	}

	if len(report.Stack) > 0 {
		fields = append(fields, zap.ByteString("stack", report.Stack))
	}

	return fields
}
