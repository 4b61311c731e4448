package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SESSION_SECRET", testSecret)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "release", cfg.GinMode)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "warehouse-console", cfg.Session.Name)
	assert.Equal(t, 24*time.Hour, cfg.Session.MaxAge)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoad_EnvFile(t *testing.T) {
	// Registered so godotenv's writes to the environment are undone.
	t.Setenv("PORT", "")
	t.Setenv("LOG_FORMAT", "")
	t.Setenv("SESSION_SECRET", "")
	require.NoError(t, os.Unsetenv("PORT"))
	require.NoError(t, os.Unsetenv("LOG_FORMAT"))
	require.NoError(t, os.Unsetenv("SESSION_SECRET"))

	path := filepath.Join(t.TempDir(), ".env")
	content := "PORT=9090\nLOG_FORMAT=json\nSESSION_SECRET=" + testSecret + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, testSecret, cfg.Session.Secret)
}

func TestLoad_DebugModeGetsDevSecret(t *testing.T) {
	t.Setenv("GIN_MODE", "debug")
	t.Setenv("SESSION_SECRET", "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, devSecret, cfg.Session.Secret)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		env    map[string]string
		errMsg string
	}{
		{
			name:   "missing secret in release",
			env:    map[string]string{"SESSION_SECRET": ""},
			errMsg: "SESSION_SECRET must be at least 32 bytes",
		},
		{
			name:   "bad port",
			env:    map[string]string{"SESSION_SECRET": testSecret, "PORT": "70000"},
			errMsg: "invalid PORT 70000",
		},
		{
			name:   "port not a number",
			env:    map[string]string{"SESSION_SECRET": testSecret, "PORT": "http"},
			errMsg: "parse environment",
		},
		{
			name:   "bad log format",
			env:    map[string]string{"SESSION_SECRET": testSecret, "LOG_FORMAT": "xml"},
			errMsg: `invalid LOG_FORMAT "xml"`,
		},
		{
			name:   "bad gin mode",
			env:    map[string]string{"SESSION_SECRET": testSecret, "GIN_MODE": "prod"},
			errMsg: `invalid GIN_MODE "prod"`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := Load("")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}
}
