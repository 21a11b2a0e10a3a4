package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all client configuration.
type Config struct {
	API     APIConfig
	Session SessionConfig
	Search  SearchConfig
	Log     LogConfig
}

// APIConfig holds billing backend transport settings.
type APIConfig struct {
	BaseURL        string        `mapstructure:"base_url"`
	Timeout        time.Duration `mapstructure:"timeout"`
	RuntimeConfig  string        `mapstructure:"runtime_config"`
	RequestLogging bool          `mapstructure:"request_logging"`
}

// SessionConfig holds local session persistence settings.
type SessionConfig struct {
	Path string `mapstructure:"path"`
}

// SearchConfig holds typeahead search settings.
type SearchConfig struct {
	PageSize   int           `mapstructure:"page_size"`
	DebounceMS time.Duration `mapstructure:"debounce_ms"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the MEDIBILL_
// prefix, then resolves the API base URL from the runtime config file if it
// was not set explicitly. A missing base URL is not fatal here; the transport
// surfaces it on first use.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("MEDIBILL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// API defaults
	v.SetDefault("api.base_url", "")
	v.SetDefault("api.timeout", "30s")
	v.SetDefault("api.runtime_config", "assets/config.json")
	v.SetDefault("api.request_logging", false)

	// Session defaults
	v.SetDefault("session.path", "")

	// Search defaults
	v.SetDefault("search.page_size", 10)
	v.SetDefault("search.debounce_ms", "200ms")

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	envBindings := map[string]string{
		"api.base_url":        "MEDIBILL_API_BASE_URL",
		"api.timeout":         "MEDIBILL_API_TIMEOUT",
		"api.runtime_config":  "MEDIBILL_API_RUNTIME_CONFIG",
		"api.request_logging": "MEDIBILL_API_REQUEST_LOGGING",
		"session.path":        "MEDIBILL_SESSION_PATH",
		"search.page_size":    "MEDIBILL_SEARCH_PAGE_SIZE",
		"search.debounce_ms":  "MEDIBILL_SEARCH_DEBOUNCE_MS",
		"log.level":           "MEDIBILL_LOG_LEVEL",
		"log.format":          "MEDIBILL_LOG_FORMAT",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}
	cfg.API = APIConfig{
		BaseURL:        v.GetString("api.base_url"),
		Timeout:        v.GetDuration("api.timeout"),
		RuntimeConfig:  v.GetString("api.runtime_config"),
		RequestLogging: v.GetBool("api.request_logging"),
	}
	cfg.Session = SessionConfig{
		Path: v.GetString("session.path"),
	}
	cfg.Search = SearchConfig{
		PageSize:   v.GetInt("search.page_size"),
		DebounceMS: v.GetDuration("search.debounce_ms"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = ResolveBaseURL(cfg.API.RuntimeConfig)
	}

	return cfg, nil
}
