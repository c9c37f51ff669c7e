package config

import (
	"testing"

	"github.com/catchup-chat/catchup/internal/auth"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "ENV", "CHAT_API_URL", "CHAT_CREDENTIALS_FILE",
		"GATEWAY_TOKEN", "UPSTREAM_RPS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("default port: %q", cfg.Port)
	}
	if !cfg.IsDevelopment() {
		t.Errorf("default env should be development, got %q", cfg.Env)
	}
	if cfg.ChatAPIURL != "https://chat.googleapis.com" {
		t.Errorf("default chat API URL: %q", cfg.ChatAPIURL)
	}
	if cfg.CredentialsFile != auth.DefaultTokenPath() {
		t.Errorf("default credentials file: %q", cfg.CredentialsFile)
	}
	if cfg.UpstreamRPS != 0 {
		t.Errorf("default upstream RPS should be 0, got %v", cfg.UpstreamRPS)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("ENV", "production")
	t.Setenv("CHAT_API_URL", "http://localhost:8181")
	t.Setenv("CHAT_CREDENTIALS_FILE", "/tmp/token.json")
	t.Setenv("GATEWAY_TOKEN", "s3cret")
	t.Setenv("UPSTREAM_RPS", "2.5")

	cfg := Load()
	if cfg.Port != "9000" || cfg.Env != "production" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.ChatAPIURL != "http://localhost:8181" || cfg.CredentialsFile != "/tmp/token.json" {
		t.Errorf("upstream settings not applied: %+v", cfg)
	}
	if cfg.GatewayToken != "s3cret" || cfg.UpstreamRPS != 2.5 {
		t.Errorf("gateway settings not applied: %+v", cfg)
	}
	if cfg.IsDevelopment() {
		t.Error("production env reported as development")
	}
}

func TestLoadProductionRequiresToken(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENV", "production")

	defer func() {
		if recover() == nil {
			t.Error("expected panic for unauthenticated production gateway")
		}
	}()
	Load()
}

func TestLoadRejectsBadRPS(t *testing.T) {
	clearEnv(t)
	t.Setenv("UPSTREAM_RPS", "fast")

	defer func() {
		if recover() == nil {
			t.Error("expected panic for unparsable UPSTREAM_RPS")
		}
	}()
	Load()
}
