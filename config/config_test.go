package config_test

import (
	"os"
	"testing"

	"github.com/arannis/conexus/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.EqualValues(t, 32<<30, cfg.HardLimitBytes)
	assert.EqualValues(t, 8<<30, cfg.AdvisoryBytes)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.MetricsEnabled)
}

func TestFromEnv_Override(t *testing.T) {
	t.Setenv("CONEXUS_LOG_LEVEL", "debug")
	t.Setenv("CONEXUS_METRICS_ENABLED", "false")

	cfg, err := config.FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.MetricsEnabled)
	assert.EqualValues(t, 32<<30, cfg.HardLimitBytes, "unset fields keep defaults")

	_ = os.Unsetenv("CONEXUS_LOG_LEVEL")
}
