package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all client configuration.
// Values are loaded from environment variables with sensible defaults.
type Config struct {
	// Backend
	APIBaseURL string
	LogLevel   string

	// HTTP client
	HTTPTimeout time.Duration

	// Resilience
	MaxConcurrency int

	// Cache (reference data: categories, analytics)
	CacheTTL time.Duration

	// Observability
	OTLPEndpoint string
	TraceEnabled bool

	// Local state (tokens, theme, locale)
	StateFile string
}

// Load reads configuration from environment variables with defaults.
func Load() *Config {
	return &Config{
		APIBaseURL: getEnv("STOCKPILOT_API_URL", "http://localhost:5000/api"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),

		HTTPTimeout: getEnvDuration("HTTP_TIMEOUT", 15*time.Second),

		MaxConcurrency: getEnvInt("MAX_CONCURRENCY", 16),

		CacheTTL: getEnvDuration("CACHE_TTL", 5*time.Minute),

		OTLPEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
		TraceEnabled: getEnv("TRACE_ENABLED", "false") == "true",

		StateFile: getEnv("STOCKPILOT_STATE_FILE", defaultStateFile()),
	}
}

// defaultStateFile places local state under the user config dir,
// falling back to the working directory when none is resolvable.
func defaultStateFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".stockpilot-state.yaml"
	}
	return filepath.Join(dir, "stockpilot", "state.yaml")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
