package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.AdServerBaseURL == "" || cfg.SearchBaseURL == "" {
		t.Fatalf("expected base URL defaults, got %+v", cfg)
	}
	if cfg.HTTPTimeout != 2*time.Second {
		t.Fatalf("expected 2s default timeout, got %v", cfg.HTTPTimeout)
	}
	if cfg.ServiceName != "ads-sdk" {
		t.Fatalf("expected default service name, got %q", cfg.ServiceName)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("AD_SERVER_BASE_URL", "https://ads.test/v1")
	t.Setenv("HTTP_TIMEOUT", "500ms")
	t.Setenv("TRACING_ENABLED", "true")
	t.Setenv("TRACING_SAMPLE_RATE", "0.25")

	cfg := Load()

	if cfg.AdServerBaseURL != "https://ads.test/v1" {
		t.Fatalf("override not applied: %q", cfg.AdServerBaseURL)
	}
	if cfg.HTTPTimeout != 500*time.Millisecond {
		t.Fatalf("timeout override not applied: %v", cfg.HTTPTimeout)
	}
	if !cfg.TracingEnabled || cfg.TracingSampleRate != 0.25 {
		t.Fatalf("tracing overrides not applied: %+v", cfg)
	}
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("HTTP_TIMEOUT", "not-a-duration")
	t.Setenv("TRACING_SAMPLE_RATE", "nope")

	cfg := Load()

	if cfg.HTTPTimeout != 2*time.Second {
		t.Fatalf("expected default on malformed duration, got %v", cfg.HTTPTimeout)
	}
	if cfg.TracingSampleRate != 0.1 {
		t.Fatalf("expected default on malformed float, got %v", cfg.TracingSampleRate)
	}
}
