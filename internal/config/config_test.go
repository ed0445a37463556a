package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("WORKOUT_PRIMARY.ENV", "test")
	t.Setenv("WORKOUT_DATABASE.HOST", "localhost")
	t.Setenv("WORKOUT_DATABASE.USER", "workout")
	t.Setenv("WORKOUT_DATABASE.PASSWORD", "s3cr3t")
	t.Setenv("WORKOUT_DATABASE.NAME", "workout")
}

func TestLoadConfig_AppliesDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Primary.Env)
	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)
	assert.True(t, cfg.Server.RateLimit.Enabled)
	assert.False(t, cfg.Redis.Enabled())
	assert.False(t, cfg.Auth.Enabled())

	require.NotNil(t, cfg.Observability)
	assert.Equal(t, ServiceName, cfg.Observability.ServiceName)
	assert.Equal(t, "test", cfg.Observability.Environment)
	assert.Equal(t, 100*time.Millisecond, cfg.Observability.Logging.SlowQueryThreshold)
}

func TestLoadConfig_EnvOverridesDefaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("WORKOUT_SERVER.PORT", "9090")
	t.Setenv("WORKOUT_DATABASE.PORT", "6543")
	t.Setenv("WORKOUT_REDIS.ADDRESS", "localhost:6379")
	t.Setenv("WORKOUT_SERVER.RATE_LIMIT.ENABLED", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.True(t, cfg.Redis.Enabled())
	assert.False(t, cfg.Server.RateLimit.Enabled)
}

func TestLoadConfig_PartialObservabilityKeepsDefaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("WORKOUT_OBSERVABILITY.LOGGING.LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Observability.GetLogLevel())
	assert.True(t, cfg.Observability.HealthChecks.Enabled)
	assert.True(t, cfg.Observability.HealthChecks.Has("redis"))
	assert.Equal(t, 5*time.Second, cfg.Observability.HealthChecks.CheckTimeout())
	assert.True(t, cfg.Observability.NewRelic.DistributedTracingEnabled)
}

func TestLoadConfig_MissingRequired(t *testing.T) {
	t.Setenv("WORKOUT_PRIMARY.ENV", "test")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed")
}

func TestObservabilityConfig_Validate(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	require.NoError(t, cfg.Validate())

	cfg.Logging.Level = "inf"
	assert.Error(t, cfg.Validate())

	cfg = DefaultObservabilityConfig()
	cfg.Logging.SlowQueryThreshold = -time.Second
	assert.Error(t, cfg.Validate())

	cfg = DefaultObservabilityConfig()
	cfg.Logging.Format = "xml"
	assert.Error(t, cfg.Validate())

	cfg = DefaultObservabilityConfig()
	cfg.ServiceName = ""
	assert.Error(t, cfg.Validate())
}

func TestObservabilityConfig_GetLogLevel(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	cfg.Logging.Level = ""

	cfg.Environment = "production"
	assert.Equal(t, "info", cfg.GetLogLevel())

	cfg.Environment = "development"
	assert.Equal(t, "debug", cfg.GetLogLevel())

	cfg.Environment = "local"
	assert.Equal(t, "info", cfg.GetLogLevel())

	cfg.Logging.Level = "warn"
	assert.Equal(t, "warn", cfg.GetLogLevel())
	assert.False(t, cfg.IsProduction())
}

func TestHealthChecksConfig_Has(t *testing.T) {
	h := HealthChecksConfig{Checks: []string{"database"}}
	assert.True(t, h.Has("database"))
	assert.False(t, h.Has("redis"))
}

func TestHealthChecksConfig_CheckTimeout(t *testing.T) {
	assert.Equal(t, DefaultHealthCheckTimeout, HealthChecksConfig{}.CheckTimeout())
	assert.Equal(t, 2*time.Second, HealthChecksConfig{Timeout: 2 * time.Second}.CheckTimeout())
}
