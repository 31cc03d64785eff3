package config

import (
	"testing"
	"time"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"session": map[string]any{
			"loginTtl":   "168h",
			"cookieName": "token",
		},
		"rateLimit": map[string]any{
			"window": "15m",
		},
		"stripe": map[string]any{
			"secretKey": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "SESSION_LOGINTTL", want: "session.loginTtl"},
		{envKey: "SESSION_COOKIENAME", want: "session.cookieName"},
		{envKey: "RATELIMIT_WINDOW", want: "rateLimit.window"},
		{envKey: "STRIPE_SECRETKEY", want: "stripe.secretKey"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	if cfg.Session.CookieName != "token" {
		t.Fatalf("cookie name default = %q, want token", cfg.Session.CookieName)
	}
	if cfg.Session.RegisterTTL != time.Hour {
		t.Fatalf("register ttl default = %v, want 1h", cfg.Session.RegisterTTL)
	}
	if cfg.Session.LoginTTL != 7*24*time.Hour {
		t.Fatalf("login ttl default = %v, want 168h", cfg.Session.LoginTTL)
	}
	if cfg.RateLimit.Max != 100 || cfg.RateLimit.Window != 15*time.Minute {
		t.Fatalf("rate limit defaults = %d/%v, want 100/15m", cfg.RateLimit.Max, cfg.RateLimit.Window)
	}
}
