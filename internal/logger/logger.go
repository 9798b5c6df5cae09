// Package logger configures the application's logging,
// monitoring, and observability.
//
// It uses zerolog for structured logging and optionally integrates
// with New Relic to forward logs and correlate them with traces.
// When no New Relic license key is configured, every helper here
// degrades to plain zerolog with no agent involved.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/daytrack/daytrack/internal/config"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/newrelic/go-agent/v3/integrations/logcontext-v2/zerologWriter"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

// LoggerService wraps the optional New Relic application instance.
//
// It exists so the rest of the app can ask "is APM on?" without
// depending on agent internals. GetApplication returns nil when the
// agent is disabled, and callers are expected to treat nil as no-op.
type LoggerService struct {
	nrApp *newrelic.Application
}

// NewLoggerService initializes the New Relic agent when a license key
// is configured. Without a key it returns a service whose application
// is nil, which every integration treats as "do nothing".
func NewLoggerService(cfg *config.Config) (*LoggerService, error) {
	if !cfg.Observability.NewRelic.Enabled() {
		return &LoggerService{}, nil
	}

	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName(cfg.Observability.ServiceName),
		newrelic.ConfigLicense(cfg.Observability.NewRelic.LicenseKey),
		newrelic.ConfigAppLogForwardingEnabled(cfg.Observability.NewRelic.AppLogForwardingEnabled),
		newrelic.ConfigDistributedTracerEnabled(cfg.Observability.NewRelic.DistributedTracingEnabled),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize new relic application: %w", err)
	}

	return &LoggerService{nrApp: app}, nil
}

// GetApplication returns the New Relic application, or nil when APM
// is disabled.
func (ls *LoggerService) GetApplication() *newrelic.Application {
	if ls == nil {
		return nil
	}
	return ls.nrApp
}

// Shutdown flushes pending agent data. Safe to call when APM is disabled.
func (ls *LoggerService) Shutdown(timeout time.Duration) {
	if ls == nil || ls.nrApp == nil {
		return
	}
	ls.nrApp.Shutdown(timeout)
}

// New builds the application's main structured logger from config.
//
// Format "console" produces human-readable output for local work;
// anything else emits JSON. When log forwarding is enabled and the
// agent is running, log lines are decorated and shipped via the
// zerologWriter integration.
func New(cfg *config.Config, loggerService *LoggerService) *zerolog.Logger {
	// ParseLevel maps "" to NoLevel without an error, which would
	// discard every event; treat it like any other bad input.
	level, err := zerolog.ParseLevel(cfg.Observability.Logging.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	var out io.Writer = os.Stdout
	if cfg.Observability.Logging.Format == "console" {
		out = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	if app := loggerService.GetApplication(); app != nil && cfg.Observability.NewRelic.AppLogForwardingEnabled {
		w := zerologWriter.New(out, app)
		out = &w
	}

	logger := zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", cfg.Observability.ServiceName).
		Str("env", cfg.Observability.Environment).
		Logger()

	return &logger
}

// WithTraceContext returns a child logger carrying the transaction's
// trace and span ids so log lines can be joined with distributed traces.
func WithTraceContext(logger zerolog.Logger, txn *newrelic.Transaction) zerolog.Logger {
	if txn == nil {
		return logger
	}

	md := txn.GetTraceMetadata()

	builder := logger.With()
	if md.TraceID != "" {
		builder = builder.Str("trace.id", md.TraceID)
	}
	if md.SpanID != "" {
		builder = builder.Str("span.id", md.SpanID)
	}
	return builder.Logger()
}

// NewPgxLogger builds the logger handed to pgx's tracelog adapter.
// SQL logging is noisy, so it gets its own component field and honors
// the application's global level.
func NewPgxLogger(level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Str("component", "pgx").
		Logger()
}

// GetPgxTraceLogLevel maps the zerolog level onto pgx tracelog levels
// so the SQL tracer never logs below the application threshold.
func GetPgxTraceLogLevel(level zerolog.Level) tracelog.LogLevel {
	switch level {
	case zerolog.TraceLevel:
		return tracelog.LogLevelTrace
	case zerolog.DebugLevel:
		return tracelog.LogLevelDebug
	case zerolog.InfoLevel:
		return tracelog.LogLevelInfo
	case zerolog.WarnLevel:
		return tracelog.LogLevelWarn
	case zerolog.ErrorLevel:
		return tracelog.LogLevelError
	default:
		return tracelog.LogLevelNone
	}
}
