package infra

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "VIDU_BASE_URL", "VIDU_TIMEOUT_SECONDS", "ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
	}
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("port = %s, want 8080", cfg.Port)
	}
	if cfg.ViduBaseURL != "https://api.vidu.com/ent/v2" {
		t.Fatalf("base url = %s", cfg.ViduBaseURL)
	}
	if cfg.UpstreamTimeout != 30*time.Second {
		t.Fatalf("upstream timeout = %s", cfg.UpstreamTimeout)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "*" {
		t.Fatalf("origins = %v", cfg.AllowedOrigins)
	}
}

func TestLoadConfigAllowsMissingAPIKey(t *testing.T) {
	t.Setenv("VIDU_API_KEY", "")
	t.Setenv("VITE_VIDU_API_KEY", "")
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("missing key must not fail config load: %v", err)
	}
	if cfg.ViduAPIKey != "" {
		t.Fatalf("key = %q, want empty", cfg.ViduAPIKey)
	}
}

func TestLoadConfigLegacyKeyName(t *testing.T) {
	t.Setenv("VIDU_API_KEY", "")
	t.Setenv("VITE_VIDU_API_KEY", "legacy-key")
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.ViduAPIKey != "legacy-key" {
		t.Fatalf("key = %q, want legacy fallback", cfg.ViduAPIKey)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("VIDU_TIMEOUT_SECONDS", "10")
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.Port != "9090" {
		t.Fatalf("port = %s", cfg.Port)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://b.example" {
		t.Fatalf("origins = %v", cfg.AllowedOrigins)
	}
	if cfg.UpstreamTimeout != 10*time.Second {
		t.Fatalf("upstream timeout = %s", cfg.UpstreamTimeout)
	}
}
