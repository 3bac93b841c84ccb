package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonesrussell/content-qa/internal/config"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, "service:\n  name: content-qa\n")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Service.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Service.Port)
	}
	if cfg.Service.Concurrency != 10 {
		t.Errorf("expected default concurrency 10, got %d", cfg.Service.Concurrency)
	}
	if cfg.Service.ShutdownTimeout != 15*time.Second {
		t.Errorf("expected default shutdown timeout 15s, got %s", cfg.Service.ShutdownTimeout)
	}
	if cfg.Database.Driver != "postgres" {
		t.Errorf("expected default driver postgres, got %s", cfg.Database.Driver)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected default log level info, got %s", cfg.Logging.Level)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "service:\n  port: 9000\ndatabase:\n  driver: sqlite\n")

	t.Setenv("CONTENTQA_PORT", "9100")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Service.Port != 9100 {
		t.Errorf("env override must win, got port %d", cfg.Service.Port)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Errorf("expected driver sqlite from file, got %s", cfg.Database.Driver)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level debug from env, got %s", cfg.Logging.Level)
	}
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	path := writeConfig(t, "database:\n  driver: oracle\n")

	if _, err := config.Load(path); err == nil {
		t.Error("expected error for unsupported driver")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Error("expected error for missing config file")
	}
}
