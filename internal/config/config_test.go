package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_DotEnv(t *testing.T) {
	t.Run("missing file uses defaults", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("DB_DRIVER", "sqlite")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.HTTP.Port == "" || cfg.Auth.AdminPassword == "" {
			t.Fatalf("expected defaults, got %+v", cfg)
		}
	})

	t.Run("malformed file", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)
		if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("SHEETS_URL=\"https://example.test\n"), 0o600); err != nil {
			t.Fatalf("write .env: %v", err)
		}

		if _, err := Load(); err == nil || !strings.Contains(err.Error(), "load .env") {
			t.Fatalf("expected .env error, got %v", err)
		}
	})

	t.Run("unreadable file", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)
		if err := os.Mkdir(filepath.Join(dir, ".env"), 0o700); err != nil {
			t.Fatalf("mkdir: %v", err)
		}

		if _, err := Load(); err == nil {
			t.Fatalf("expected error for a .env directory")
		}
	})
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DB_DRIVER", "mysql")
	if _, err := Load(); err == nil {
		t.Fatalf("expected unsupported driver error")
	}
}
