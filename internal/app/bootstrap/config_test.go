package bootstrap

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigDefaultsAndFile(t *testing.T) {
	path := writeConfigFile(t, `
service:
  id: test-api
  http_port: 9999
dependencies:
  postgres_url: postgres://localhost:5432/test
  redis_url: redis://localhost:6379/1
otp:
  length: 8
  ttl_seconds: 120
auth:
  cookie_name: my_session
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.ServiceID != "test-api" {
		t.Fatalf("service id = %q", cfg.ServiceID)
	}
	if cfg.HTTPPort != 9999 {
		t.Fatalf("http port = %d", cfg.HTTPPort)
	}
	if cfg.GRPCPort != 9090 {
		t.Fatalf("grpc port default = %d, want 9090", cfg.GRPCPort)
	}
	if cfg.OtpLength != 8 {
		t.Fatalf("otp length = %d, want 8", cfg.OtpLength)
	}
	if cfg.OtpTTL != 2*time.Minute {
		t.Fatalf("otp ttl = %v, want 2m", cfg.OtpTTL)
	}
	if cfg.CookieName != "my_session" {
		t.Fatalf("cookie name = %q", cfg.CookieName)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Fatalf("token ttl default = %v, want 24h", cfg.TokenTTL)
	}
	if len(cfg.PublicPrefixes) == 0 {
		t.Fatalf("public prefixes default missing")
	}
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `
dependencies:
  postgres_url: postgres://file-host:5432/file
  redis_url: redis://file-host:6379/0
`)
	t.Setenv("DB_URL", "postgres://env-host:5432/env")
	t.Setenv("REDIS_URL", "redis://env-host:6379/2")
	t.Setenv("HTTP_PORT", "8181")
	t.Setenv("TOKEN_EXPIRY_HOURS", "2")
	t.Setenv("OTP_LENGTH", "4")
	t.Setenv("OTP_TTL_SECONDS", "60")
	t.Setenv("AUTH_COOKIE_SECURE", "true")
	t.Setenv("PUBLIC_PATH_PREFIXES", "/api/public/,/healthz")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.DatabaseURL != "postgres://env-host:5432/env" {
		t.Fatalf("database url = %q", cfg.DatabaseURL)
	}
	if cfg.RedisURL != "redis://env-host:6379/2" {
		t.Fatalf("redis url = %q", cfg.RedisURL)
	}
	if cfg.HTTPPort != 8181 {
		t.Fatalf("http port = %d", cfg.HTTPPort)
	}
	if cfg.TokenTTL != 2*time.Hour {
		t.Fatalf("token ttl = %v", cfg.TokenTTL)
	}
	if cfg.OtpLength != 4 {
		t.Fatalf("otp length = %d", cfg.OtpLength)
	}
	if cfg.OtpTTL != time.Minute {
		t.Fatalf("otp ttl = %v", cfg.OtpTTL)
	}
	if !cfg.CookieSecure {
		t.Fatalf("cookie secure not applied")
	}
	if len(cfg.PublicPrefixes) != 2 {
		t.Fatalf("public prefixes = %v", cfg.PublicPrefixes)
	}
}

func TestLoadConfigRequiresDependencies(t *testing.T) {
	path := writeConfigFile(t, `
dependencies:
  redis_url: redis://localhost:6379/0
`)
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected missing database url to fail")
	}

	path = writeConfigFile(t, `
dependencies:
  postgres_url: postgres://localhost:5432/test
`)
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected missing redis url to fail")
	}
}

func TestLoadConfigRejectsShortOtp(t *testing.T) {
	path := writeConfigFile(t, `
dependencies:
  postgres_url: postgres://localhost:5432/test
  redis_url: redis://localhost:6379/0
`)
	t.Setenv("OTP_LENGTH", "3")
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected OTP_LENGTH below 4 to fail")
	}
}
