package bootstrap

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/dms-platform/dms-cli/config"
)

func testConfig(t *testing.T) *config.AppConfig {
	t.Helper()
	cfg := &config.AppConfig{
		API: config.APIConfig{
			BaseURL: "http://localhost:18080",
			Timeout: 5 * time.Second,
		},
		Session: config.SessionConfig{
			Backend:  config.SessionBackendFile,
			FilePath: filepath.Join(t.TempDir(), "session.json"),
		},
	}
	cfg.Sanitize()
	return cfg
}

func TestBuildServices_WiresContainer(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	container, err := BuildServices(ServiceDeps{Config: testConfig(t), Logger: logger})
	if err != nil {
		t.Fatalf("BuildServices: %v", err)
	}
	defer container.Close()

	if container.Auth == nil || container.Browser == nil || container.Uploads == nil ||
		container.Directory == nil || container.RefData == nil || container.Gateway == nil {
		t.Fatal("container has unwired services")
	}
}

func TestBuildServices_RequiresConfig(t *testing.T) {
	if _, err := BuildServices(ServiceDeps{}); err == nil {
		t.Fatal("BuildServices must fail without config")
	}
}

func TestBuildServices_RestoresPersistedSession(t *testing.T) {
	cfg := testConfig(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	container, err := BuildServices(ServiceDeps{Config: cfg, Logger: logger})
	if err != nil {
		t.Fatalf("BuildServices: %v", err)
	}
	defer container.Close()

	// Fresh store, nothing persisted: restore resolves to signed out.
	if err := container.Auth.Restore(context.Background()); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if container.Auth.Current() != nil {
		t.Fatal("expected no session on a fresh store")
	}
	if container.Auth.Token() != "" {
		t.Fatal("expected empty token on a fresh store")
	}
}
