package config

import (
	"reflect"
	"testing"
	"time"
)

func TestParseOrigins(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"", nil},
		{"http://a.test", []string{"http://a.test"}},
		{" http://a.test , ,http://b.test ", []string{"http://a.test", "http://b.test"}},
	}
	for _, tt := range tests {
		if got := parseOrigins(tt.raw); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseOrigins(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestLoadDefaultsAndOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("RATE_LIMIT", "not-a-number")
	t.Setenv("RATE_LIMIT_WINDOW_SECONDS", "30")
	t.Setenv("REDIS_URL", "")

	cfg := Load()

	if cfg.ServerPort != "9090" {
		t.Errorf("ServerPort = %q, want 9090", cfg.ServerPort)
	}
	if cfg.RateLimit != 120 {
		t.Errorf("RateLimit = %d, want fallback 120", cfg.RateLimit)
	}
	if cfg.RateLimitWindow != 30*time.Second {
		t.Errorf("RateLimitWindow = %v, want 30s", cfg.RateLimitWindow)
	}
	if cfg.RedisURL != "" {
		t.Errorf("RedisURL = %q, want empty", cfg.RedisURL)
	}
}

func TestRateLimitKey(t *testing.T) {
	if got := CacheKey.RateLimitKey("10.0.0.1", 42); got != "ratelimit:10.0.0.1:42" {
		t.Errorf("RateLimitKey = %q", got)
	}
}
