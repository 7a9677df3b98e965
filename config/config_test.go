package config

import (
	"strings"
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
)

func TestAppConfig_Defaults(t *testing.T) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("env.Parse: %v", err)
	}
	cfg.Sanitize()

	if cfg.API.BaseURL != "http://localhost:8080" {
		t.Errorf("API.BaseURL = %q, want default", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 30*time.Second {
		t.Errorf("API.Timeout = %v, want 30s", cfg.API.Timeout)
	}
	if cfg.Session.Backend != SessionBackendFile {
		t.Errorf("Session.Backend = %q, want file", cfg.Session.Backend)
	}
	if cfg.Session.FilePath == "" {
		t.Error("Session.FilePath must default to a concrete path")
	}
	if !strings.HasSuffix(cfg.Session.FilePath, "session.json") {
		t.Errorf("Session.FilePath = %q, want .../session.json", cfg.Session.FilePath)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
}

func TestAppConfig_FromEnvironment(t *testing.T) {
	t.Setenv("DMS_API_BASE_URL", "https://dms.internal/")
	t.Setenv("DMS_API_TIMEOUT", "5s")
	t.Setenv("SESSION_BACKEND", "REDIS")
	t.Setenv("SESSION_REDIS_ADDR", "redis.internal:6379")
	t.Setenv("LOG_LEVEL", "DEBUG")

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("env.Parse: %v", err)
	}
	cfg.Sanitize()

	if cfg.API.BaseURL != "https://dms.internal" {
		t.Errorf("BaseURL = %q, want trailing slash stripped", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", cfg.API.Timeout)
	}
	if cfg.Session.Backend != SessionBackendRedis {
		t.Errorf("Session.Backend = %q, want redis", cfg.Session.Backend)
	}
	if cfg.Session.RedisAddr != "redis.internal:6379" {
		t.Errorf("RedisAddr = %q", cfg.Session.RedisAddr)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestAppConfig_SanitizeGuardrails(t *testing.T) {
	cfg := AppConfig{
		LogLevel: "verbose",
		API:      APIConfig{BaseURL: "  http://x/  ", Timeout: -1},
		Session:  SessionConfig{Backend: "etcd", RedisTTL: -time.Minute},
	}
	cfg.Sanitize()

	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info fallback", cfg.LogLevel)
	}
	if cfg.API.BaseURL != "http://x" {
		t.Errorf("BaseURL = %q, want trimmed", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s fallback", cfg.API.Timeout)
	}
	if cfg.Session.Backend != SessionBackendFile {
		t.Errorf("Backend = %q, want file fallback", cfg.Session.Backend)
	}
	if cfg.Session.RedisTTL != 0 {
		t.Errorf("RedisTTL = %v, want clamped to 0", cfg.Session.RedisTTL)
	}
}

func TestAppConfig_DevModeFromNodeEnv(t *testing.T) {
	t.Setenv("NODE_ENV", "development")

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("env.Parse: %v", err)
	}
	cfg.Sanitize()

	if !cfg.IsDev {
		t.Error("NODE_ENV=development must enable dev mode")
	}
}
