package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setRequiredEnv sets the minimum environment the loader validates for.
func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DAYTRACK_DATABASE__HOST", "localhost")
	t.Setenv("DAYTRACK_DATABASE__USER", "daytrack")
	t.Setenv("DAYTRACK_DATABASE__PASSWORD", "secret")
	t.Setenv("DAYTRACK_DATABASE__NAME", "daytrack")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Primary.Env)

	assert.Equal(t, DefaultServerPort, cfg.Server.Port)
	assert.Equal(t, DefaultReadTimeout, cfg.Server.ReadTimeout)
	assert.Equal(t, DefaultWriteTimeout, cfg.Server.WriteTimeout)
	assert.Equal(t, DefaultIdleTimeout, cfg.Server.IdleTimeout)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)

	assert.Equal(t, DefaultDatabasePort, cfg.Database.Port)
	assert.Equal(t, DefaultSSLMode, cfg.Database.SSLMode)
	assert.Equal(t, DefaultMaxConns, cfg.Database.MaxConns)

	require.NotNil(t, cfg.Observability)
	assert.Equal(t, "daytrack", cfg.Observability.ServiceName)
	assert.Equal(t, "local", cfg.Observability.Environment)
	assert.False(t, cfg.Observability.NewRelic.Enabled())
}

func TestLoad_EnvOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DAYTRACK_PRIMARY__ENV", "production")
	t.Setenv("DAYTRACK_SERVER__PORT", "8080")
	t.Setenv("DAYTRACK_DATABASE__PORT", "5433")
	t.Setenv("DAYTRACK_DATABASE__MAX_CONNS", "25")
	t.Setenv("DAYTRACK_DATABASE__SSL_MODE", "require")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Primary.Env)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.Equal(t, 25, cfg.Database.MaxConns)
	assert.Equal(t, "require", cfg.Database.SSLMode)
	assert.Equal(t, "production", cfg.Observability.Environment)
}

func TestLoad_PartialObservability(t *testing.T) {
	// A single observability var must not wipe out the logging
	// defaults; an empty level would silence the logger entirely.
	setRequiredEnv(t)
	t.Setenv("DAYTRACK_OBSERVABILITY__LOGGING__FORMAT", "console")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "console", cfg.Observability.Logging.Format)
	assert.Equal(t, DefaultLogLevel, cfg.Observability.Logging.Level)
}

func TestLoad_PartialObservability_NewRelicOnly(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DAYTRACK_OBSERVABILITY__NEW_RELIC__LICENSE_KEY", "0123456789012345678901234567890123456789")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Observability.NewRelic.Enabled())
	assert.Equal(t, DefaultLogLevel, cfg.Observability.Logging.Level)
	assert.Equal(t, DefaultLogFormat, cfg.Observability.Logging.Format)
}

func TestLoad_DatabaseCredentials(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "daytrack", cfg.Database.User)
	assert.Equal(t, "secret", cfg.Database.Password)
	assert.Equal(t, "daytrack", cfg.Database.Name)
}
