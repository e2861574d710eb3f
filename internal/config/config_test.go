package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mishasvintus/pr_range_explorer/internal/service"
)

var configKeys = []string{
	"SERVER_HOST", "SERVER_PORT", "SHUTDOWN_TIMEOUT",
	"GITHUB_API_URL", "GITHUB_TOKEN", "GITHUB_USE_GH_AUTH", "UPSTREAM_TIMEOUT", "MAX_PAGES",
	"CREDENTIAL_MODE", "REQUIRE_CREDENTIAL",
	"LOG_LEVEL", "LOG_FORMAT", "CORS_ALLOWED_ORIGINS", "CONFIG_FILE",
}

// clearEnv unsets every config key for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func stubGHAuth(t *testing.T, token string) *string {
	t.Helper()
	var host string
	orig := tokenForHost
	tokenForHost = func(h string) (string, string) {
		host = h
		return token, "oauth_token"
	}
	t.Cleanup(func() { tokenForHost = orig })
	return &host
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "https://api.github.com/", cfg.GitHub.APIURL)
	assert.Empty(t, cfg.GitHub.Token)
	assert.False(t, cfg.GitHub.UseGHAuth)
	assert.Equal(t, 30*time.Second, cfg.GitHub.Timeout)
	assert.Equal(t, 100, cfg.GitHub.MaxPages)
	assert.Equal(t, service.CredentialModeServer, cfg.Credential.Mode)
	assert.False(t, cfg.Credential.Required)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "0.0.0.0:3000", cfg.Server.Address())
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("GITHUB_API_URL", "https://ghe.example.com/api/v3/")
	t.Setenv("GITHUB_TOKEN", "ghp_env")
	t.Setenv("UPSTREAM_TIMEOUT", "10s")
	t.Setenv("MAX_PAGES", "0")
	t.Setenv("CREDENTIAL_MODE", "request")
	t.Setenv("REQUIRE_CREDENTIAL", "true")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:8080, https://app.example.com")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "ghe.example.com", cfg.GitHub.Host())
	assert.Equal(t, 10*time.Second, cfg.GitHub.Timeout)
	assert.Equal(t, 0, cfg.GitHub.MaxPages)
	assert.Equal(t, []string{"http://localhost:8080", "https://app.example.com"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, service.CredentialPolicy{
		Mode:        service.CredentialModeRequest,
		ServerToken: "ghp_env",
		Required:    true,
	}, cfg.CredentialPolicy())
}

func TestLoad_GHAuthFallback(t *testing.T) {
	t.Run("used when no token is configured", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("GITHUB_USE_GH_AUTH", "true")
		host := stubGHAuth(t, "gho_from_gh")

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "gho_from_gh", cfg.GitHub.Token)
		assert.Equal(t, "github.com", *host)
	})

	t.Run("explicit token wins", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("GITHUB_USE_GH_AUTH", "true")
		t.Setenv("GITHUB_TOKEN", "ghp_explicit")
		stubGHAuth(t, "gho_from_gh")

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "ghp_explicit", cfg.GitHub.Token)
	})

	t.Run("disabled by default", func(t *testing.T) {
		clearEnv(t)
		stubGHAuth(t, "gho_from_gh")

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Empty(t, cfg.GitHub.Token)
	})
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("SERVER_PORT=4000\nLOG_LEVEL=debug\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "4000", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)

	_, err = Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestLoad_ConfigFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server_port: \"9090\"\nmax_pages: 5\n"), 0o600))
	t.Setenv("CONFIG_FILE", path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 5, cfg.GitHub.MaxPages)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name          string
		key           string
		value         string
		errorContains string
	}{
		{name: "port not a number", key: "SERVER_PORT", value: "http", errorContains: "SERVER_PORT"},
		{name: "port out of range", key: "SERVER_PORT", value: "70000", errorContains: "SERVER_PORT"},
		{name: "api url without scheme", key: "GITHUB_API_URL", value: "api.github.com", errorContains: "GITHUB_API_URL"},
		{name: "negative page cap", key: "MAX_PAGES", value: "-1", errorContains: "MAX_PAGES"},
		{name: "zero upstream timeout", key: "UPSTREAM_TIMEOUT", value: "0s", errorContains: "UPSTREAM_TIMEOUT"},
		{name: "unknown credential mode", key: "CREDENTIAL_MODE", value: "both", errorContains: "invalid credential mode"},
		{name: "unknown log format", key: "LOG_FORMAT", value: "xml", errorContains: "LOG_FORMAT"},
		{name: "origin without scheme", key: "CORS_ALLOWED_ORIGINS", value: "localhost:8080", errorContains: "CORS origin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			cfg, err := Load("")
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.errorContains)
		})
	}
}
