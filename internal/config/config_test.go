package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medibill/internal/config"
)

func writeRuntime(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestResolveBaseURL(t *testing.T) {
	path := writeRuntime(t, `{"BASIC_URL": "http://localhost:8080/"}`)
	assert.Equal(t, "http://localhost:8080/", config.ResolveBaseURL(path))
}

func TestResolveBaseURL_AppendsTrailingSlash(t *testing.T) {
	path := writeRuntime(t, `{"BASIC_URL": "http://localhost:8080"}`)
	assert.Equal(t, "http://localhost:8080/", config.ResolveBaseURL(path))
}

func TestResolveBaseURL_IgnoresUnknownKeys(t *testing.T) {
	path := writeRuntime(t, `{"BASIC_URL": "https://api.example.in", "ENV": "prod"}`)
	assert.Equal(t, "https://api.example.in/", config.ResolveBaseURL(path))
}

func TestResolveBaseURL_MissingFile(t *testing.T) {
	assert.Empty(t, config.ResolveBaseURL(filepath.Join(t.TempDir(), "absent.json")))
}

func TestResolveBaseURL_Malformed(t *testing.T) {
	path := writeRuntime(t, `{not json`)
	assert.Empty(t, config.ResolveBaseURL(path))
}

func TestResolveBaseURL_EmptyValue(t *testing.T) {
	path := writeRuntime(t, `{"BASIC_URL": ""}`)
	assert.Empty(t, config.ResolveBaseURL(path))
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, 10, cfg.Search.PageSize)
	assert.Equal(t, "info", cfg.Log.Level)
	// No env override and no runtime config file present: empty, not fatal.
	assert.Empty(t, cfg.API.BaseURL)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("MEDIBILL_API_BASE_URL", "http://localhost:9090/")
	t.Setenv("MEDIBILL_SEARCH_PAGE_SIZE", "25")
	t.Setenv("MEDIBILL_API_REQUEST_LOGGING", "true")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9090/", cfg.API.BaseURL)
	assert.Equal(t, 25, cfg.Search.PageSize)
	assert.True(t, cfg.API.RequestLogging)
}

func TestLoad_BaseURLFromRuntimeConfig(t *testing.T) {
	path := writeRuntime(t, `{"BASIC_URL": "http://localhost:7070"}`)
	t.Setenv("MEDIBILL_API_RUNTIME_CONFIG", path)

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:7070/", cfg.API.BaseURL)
}
