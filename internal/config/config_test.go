package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/efactura/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(config.New())
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, int64(10<<20), cfg.Server.MaxBodyBytes)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 4, cfg.Validation.Concurrency)
	assert.False(t, cfg.Advisor.Enabled())
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("EFACTURA_SERVER_PORT", "9090")
	t.Setenv("EFACTURA_LOG_FORMAT", "text")
	t.Setenv("EFACTURA_ADVISOR_API_KEY", "sk-test")
	t.Setenv("EFACTURA_ADVISOR_TIMEOUT", "5s")
	t.Setenv("EFACTURA_VALIDATION_CONCURRENCY", "0")

	cfg, err := config.Load(config.New())
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.True(t, cfg.Advisor.Enabled())
	assert.Equal(t, 5*time.Second, cfg.Advisor.Timeout)
	assert.Equal(t, 1, cfg.Validation.Concurrency)
}

func TestLoad_OverrideWins(t *testing.T) {
	t.Setenv("EFACTURA_LOG_LEVEL", "warn")

	v := config.New()
	v.Set("log.level", "debug")

	cfg, err := config.Load(v)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_NilViper(t *testing.T) {
	cfg, err := config.Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
}
