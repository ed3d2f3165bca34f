package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "FETCH_TIMEOUT", "FETCH_RATE_LIMIT", "CACHE_BACKEND",
		"CACHE_SQLITE_PATH", "CORS_ALLOW_ORIGINS", "PROFILE_GITHUB_URL",
	} {
		t.Setenv(key, "")
	}

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowOrigins)
	assert.Equal(t, 8*time.Second, cfg.Fetch.Timeout)
	assert.Zero(t, cfg.Fetch.RateLimit)
	assert.Equal(t, "memory", cfg.Cache.Backend)
	assert.Equal(t, ":memory:", cfg.Cache.SQLitePath)
	assert.Empty(t, cfg.Profile.GitHubURL)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("FETCH_TIMEOUT", "2500")
	t.Setenv("FETCH_RATE_LIMIT", "2.5")
	t.Setenv("CACHE_BACKEND", "SQLite")
	t.Setenv("CACHE_SQLITE_PATH", "/tmp/assets.db")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("PROFILE_GITHUB_URL", "https://github.com/octo")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 2500*time.Millisecond, cfg.Fetch.Timeout)
	assert.Equal(t, 2.5, cfg.Fetch.RateLimit)
	assert.Equal(t, "sqlite", cfg.Cache.Backend)
	assert.Equal(t, "/tmp/assets.db", cfg.Cache.SQLitePath)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSAllowOrigins)
	assert.Equal(t, "https://github.com/octo", cfg.Profile.GitHubURL)
}

func TestFromEnv_DurationSyntax(t *testing.T) {
	t.Setenv("FETCH_TIMEOUT", "3s")
	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, cfg.Fetch.Timeout)
}

func TestValidate(t *testing.T) {
	t.Setenv("CACHE_BACKEND", "memcached")
	_, err := FromEnv()
	assert.ErrorContains(t, err, "CACHE_BACKEND")

	t.Setenv("CACHE_BACKEND", "memory")
	t.Setenv("FETCH_TIMEOUT", "-1s")
	_, err = FromEnv()
	assert.ErrorContains(t, err, "FETCH_TIMEOUT")
}
