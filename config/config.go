package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds SDK configuration derived from environment variables.
type Config struct {
	AdServerBaseURL string
	SearchBaseURL   string
	HTTPTimeout     time.Duration
	ServiceName     string
	// Tracing configuration
	TracingEnabled    bool
	TracingEndpoint   string
	TracingSampleRate float64
	// Playground server configuration
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Load parses environment variables and returns a Config populated with
// defaults when variables are absent.
func Load() Config {
	cfg := Config{}

	cfg.AdServerBaseURL = getenv("AD_SERVER_BASE_URL", "https://ads.example.com/v1/rma")
	cfg.SearchBaseURL = getenv("SEARCH_BASE_URL", "https://search.example.com/api/intelligent-search")
	cfg.HTTPTimeout = envDuration("HTTP_TIMEOUT", 2*time.Second)
	cfg.ServiceName = getenv("SERVICE_NAME", "ads-sdk")

	cfg.TracingEnabled = envBool("TRACING_ENABLED", false)
	cfg.TracingEndpoint = getenv("TRACING_ENDPOINT", "localhost:4317")
	cfg.TracingSampleRate = envFloat("TRACING_SAMPLE_RATE", 0.1)

	cfg.Port = getenv("PORT", "8787")
	cfg.ReadTimeout = envDuration("READ_TIMEOUT", 5*time.Second)
	cfg.WriteTimeout = envDuration("WRITE_TIMEOUT", 10*time.Second)

	return cfg
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func envBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func envFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}
