package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, []string{"*"}, cfg.Security.AllowedOrigins)
	assert.True(t, cfg.Security.RateLimit.Enabled)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "data/teacher_activity.xlsx", cfg.Dataset.File)
	assert.False(t, cfg.Dataset.StrictIdentity)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SAVRA_SERVER_PORT", "9090")
	t.Setenv("SAVRA_DATASET_FILE", "/tmp/other.xlsx")
	t.Setenv("SAVRA_DATASET_STRICTIDENTITY", "true")
	t.Setenv("SAVRA_LOGGING_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "/tmp/other.xlsx", cfg.Dataset.File)
	assert.True(t, cfg.Dataset.StrictIdentity)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_ValidationFailures(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "port out of range", key: "SAVRA_SERVER_PORT", value: "70000"},
		{name: "bad log level", key: "SAVRA_LOGGING_LEVEL", value: "verbose"},
		{name: "zero rate limit", key: "SAVRA_SECURITY_RATE_LIMIT_RPS", value: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, validate.Struct(cfg))
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
}
