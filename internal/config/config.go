// Package config manages environment variables.
//
// It reads variables from the process environment (optionally loaded
// from a `.env` file), maps them into structured Go types, validates
// that required values are present, and applies defaults for the
// optional ones so the app fails fast on bad/missing config.
//
// Env vars are read with the DAYTRACK_ prefix and a double underscore
// as the nesting delimiter:
//
//	DAYTRACK_DATABASE__HOST -> database.host -> Config.Database.Host
package config

import (
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads a `.env` file (if present) into the
	// process env before any variable is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
)

// envPrefix scopes which environment variables this service reads.
const envPrefix = "DAYTRACK_"

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags tell koanf where to map values from; the
// `validate:"required"` tags enforce presence of the values the
// service cannot run without. Observability is a pointer because it
// is optional; defaults are injected when it is absent.
type Config struct {
	Primary       Primary              `koanf:"primary"`
	Server        ServerConfig         `koanf:"server"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment,
// used to tag logs and switch output formats.
type Primary struct {
	Env string `koanf:"env"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are stored as seconds.
type ServerConfig struct {
	Port               string   `koanf:"port"`
	ReadTimeout        int      `koanf:"read_timeout"`
	WriteTimeout       int      `koanf:"write_timeout"`
	IdleTimeout        int      `koanf:"idle_timeout"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
type DatabaseConfig struct {
	Host     string `koanf:"host" validate:"required"`
	Port     int    `koanf:"port"`
	User     string `koanf:"user" validate:"required"`
	Password string `koanf:"password" validate:"required"`
	Name     string `koanf:"name" validate:"required"`
	SSLMode  string `koanf:"ssl_mode"`
	MaxConns int    `koanf:"max_conns"`
}

// Defaults for everything optional. The service listens on 3000 and
// bounds the store pool at 10 connections unless told otherwise.
const (
	DefaultServerPort   = "3000"
	DefaultReadTimeout  = 15
	DefaultWriteTimeout = 15
	DefaultIdleTimeout  = 60

	DefaultDatabasePort = 5432
	DefaultSSLMode      = "disable"
	DefaultMaxConns     = 10

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// Load reads configuration from environment variables, unmarshals it
// into Config, applies defaults, and validates the result.
//
// Behavior summary:
//   - Loads env vars with prefix DAYTRACK_
//   - Converts env keys into koanf keys ("__" becomes the "." nesting)
//   - Unmarshals into Config
//   - Injects defaults for optional values
//   - Validates required fields so startup fails fast
func Load() (*Config, error) {
	// Bootstrap logger for configuration failures. The real application
	// logger cannot exist yet because it depends on this config.
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	k := koanf.New(".")

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not load environment variables")
	}

	mainConfig := &Config{}

	if err := k.Unmarshal("", mainConfig); err != nil {
		logger.Fatal().Err(err).Msg("could not unmarshal config")
	}

	applyDefaults(mainConfig)

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		logger.Fatal().Err(err).Msg("config validation failed")
	}

	// Service name and environment are forced, not configured, so
	// telemetry sees consistent naming.
	mainConfig.Observability.ServiceName = "daytrack"
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid observability config")
	}

	return mainConfig, nil
}

// applyDefaults fills every optional field left zero by the environment.
func applyDefaults(cfg *Config) {
	if cfg.Primary.Env == "" {
		cfg.Primary.Env = "local"
	}

	if cfg.Server.Port == "" {
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = DefaultReadTimeout
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = DefaultWriteTimeout
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = DefaultIdleTimeout
	}
	if len(cfg.Server.CORSAllowedOrigins) == 0 {
		cfg.Server.CORSAllowedOrigins = []string{"*"}
	}

	if cfg.Database.Port == 0 {
		cfg.Database.Port = DefaultDatabasePort
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = DefaultSSLMode
	}
	if cfg.Database.MaxConns == 0 {
		cfg.Database.MaxConns = DefaultMaxConns
	}

	if cfg.Observability == nil {
		cfg.Observability = DefaultObservabilityConfig()
	}

	// Setting any single observability var makes koanf allocate the
	// struct with the rest zeroed, so the logging fields need their own
	// defaults: an empty level would otherwise silence the logger.
	if cfg.Observability.Logging.Level == "" {
		cfg.Observability.Logging.Level = DefaultLogLevel
	}
	if cfg.Observability.Logging.Format == "" {
		cfg.Observability.Logging.Format = DefaultLogFormat
	}
}
