package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.ServerAddr != ":8080" {
		t.Errorf("expected default server_addr %q, got %q", ":8080", cfg.ServerAddr)
	}
	if cfg.SiteDir != "site" {
		t.Errorf("expected default site_dir %q, got %q", "site", cfg.SiteDir)
	}
	if cfg.FetchTimeout != 0 {
		t.Errorf("expected no default fetch timeout, got %v", cfg.FetchTimeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "folio.yml")
	yml := `server_addr: ":9000"
site_dir: public
remote_base: https://example.github.io/portfolio/
fetch_timeout: 5s
log_level: debug
allowed_origins:
  - https://example.com
`
	if err := os.WriteFile(path, []byte(yml), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ServerAddr != ":9000" {
		t.Errorf("server_addr: got %q", cfg.ServerAddr)
	}
	if cfg.SiteDir != "public" {
		t.Errorf("site_dir: got %q", cfg.SiteDir)
	}
	if cfg.RemoteBase != "https://example.github.io/portfolio/" {
		t.Errorf("remote_base: got %q", cfg.RemoteBase)
	}
	if cfg.FetchTimeout != 5*time.Second {
		t.Errorf("fetch_timeout: got %v", cfg.FetchTimeout)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("log_level: got %q", cfg.LogLevel)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "https://example.com" {
		t.Errorf("allowed_origins: got %v", cfg.AllowedOrigins)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.yml"))
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.SiteDir != "site" {
		t.Errorf("expected default site_dir, got %q", cfg.SiteDir)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("FOLIO_SERVER_ADDR", ":7070")
	t.Setenv("FOLIO_LOG_LEVEL", "warn")

	cfg, err := Load(filepath.Join(t.TempDir(), "folio.yml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ServerAddr != ":7070" {
		t.Errorf("env override failed: got %q", cfg.ServerAddr)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("env override failed: got %q", cfg.LogLevel)
	}
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("FOLIO_SITE_DIR=from-dotenv\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	t.Setenv("FOLIO_SITE_DIR", "")
	os.Unsetenv("FOLIO_SITE_DIR")

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	if got := os.Getenv("FOLIO_SITE_DIR"); got != "from-dotenv" {
		t.Errorf("FOLIO_SITE_DIR = %q, want from-dotenv", got)
	}

	if err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Errorf("missing .env should be ignored, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty addr", func(c *Config) { c.ServerAddr = "" }},
		{"empty site dir", func(c *Config) { c.SiteDir = "" }},
		{"bad remote scheme", func(c *Config) { c.RemoteBase = "ftp://example.com" }},
		{"remote without host", func(c *Config) { c.RemoteBase = "https://" }},
		{"negative timeout", func(c *Config) { c.FetchTimeout = -time.Second }},
		{"unknown level", func(c *Config) { c.LogLevel = "loud" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestSetupLog(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.LogLevel = "warn"
	logger := SetupLog(cfg, &buf)

	logger.Info("hidden")
	slog.Warn("shown", "container", "project-container")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info should be filtered at warn level")
	}
	if !strings.Contains(out, "container=project-container") {
		t.Errorf("default logger not installed: %q", out)
	}
}
