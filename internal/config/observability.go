package config

import (
	"fmt"
)

// ObservabilityConfig groups configuration for telemetry and runtime
// visibility: structured logging and the optional New Relic APM agent.
//
// It lives under Config.Observability and may be omitted entirely, in
// which case DefaultObservabilityConfig is used.
type ObservabilityConfig struct {
	// ServiceName identifies this service in logs/traces. It is forced
	// to "daytrack" in Load regardless of what the environment says.
	ServiceName string `koanf:"service_name"`

	// Environment labels telemetry by deployment environment.
	Environment string `koanf:"environment"`

	// Logging controls structured logger behavior.
	Logging LoggingConfig `koanf:"logging"`

	// NewRelic controls the APM agent. Disabled when LicenseKey is empty.
	NewRelic NewRelicConfig `koanf:"new_relic"`
}

// LoggingConfig holds application logging configuration.
type LoggingConfig struct {
	// Level is the verbosity threshold (debug/info/warn/error).
	Level string `koanf:"level"`

	// Format selects the log output format: "json" or "console".
	Format string `koanf:"format"`
}

// NewRelicConfig holds configuration for New Relic APM and tracing.
// An empty LicenseKey means "not configured"; every integration then
// degrades to a no-op.
type NewRelicConfig struct {
	LicenseKey                string `koanf:"license_key"`
	AppLogForwardingEnabled   bool   `koanf:"app_log_forwarding_enabled"`
	DistributedTracingEnabled bool   `koanf:"distributed_tracing_enabled"`
}

// DefaultObservabilityConfig provides a safe set of defaults:
// info-level JSON logs, no APM.
func DefaultObservabilityConfig() *ObservabilityConfig {
	return &ObservabilityConfig{
		ServiceName: "daytrack",
		Environment: "local",
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// Enabled reports whether the New Relic agent should be started.
func (nr NewRelicConfig) Enabled() bool {
	return nr.LicenseKey != ""
}

// Validate enforces constraints that struct tags cannot express.
func (o *ObservabilityConfig) Validate() error {
	switch o.Logging.Level {
	case "", "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging level %q", o.Logging.Level)
	}

	switch o.Logging.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("invalid logging format %q", o.Logging.Format)
	}

	return nil
}
