package zap

import (
	"fmt"
	"strings"

	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/LerianStudio/lib-chainassert/chainassert/violation"
)

// Config describes how violations are reported.
type Config struct {
	// Production selects zap's production profile and drops stacks from reports.
	Production bool
	// Level is the minimum zap level, "error" when empty.
	Level string
	// OTelLibraryName, when set, also forwards entries to the global
	// OpenTelemetry logger provider under that instrumentation name.
	OTelLibraryName string
}

// New builds a Reporter from cfg without installing it.
func New(cfg Config) (*Reporter, error) {
	level := zapcore.ErrorLevel

	if strings.TrimSpace(cfg.Level) != "" {
		parsed, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid level %q: %w", cfg.Level, err)
		}

		level = parsed
	}

	base := zap.NewDevelopmentConfig()
	if cfg.Production {
		base = zap.NewProductionConfig()
	}

	base.Encoding = "json"
	base.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	base.Level = zap.NewAtomicLevelAt(level)
	// Reports carry the stack and call site of the violation, not of the reporter.
	base.DisableStacktrace = true
	base.DisableCaller = true

	var opts []zap.Option
	if cfg.OTelLibraryName != "" {
		opts = append(opts, zap.WrapCore(func(core zapcore.Core) zapcore.Core {
			return zapcore.NewTee(core, otelzap.NewCore(cfg.OTelLibraryName))
		}))
	}

	built, err := base.Build(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	return NewReporter(built), nil
}

// Setup builds a Reporter from cfg, installs it with violation.SetLogger and
// applies cfg.Production with violation.SetProductionMode.
func Setup(cfg Config) (*Reporter, error) {
	reporter, err := New(cfg)
	if err != nil {
		return nil, err
	}

	violation.SetProductionMode(cfg.Production)
	violation.SetLogger(reporter)

	return reporter, nil
}
