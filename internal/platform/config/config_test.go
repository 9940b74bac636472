package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"syntaxlabs/internal/platform/config"
)

func TestNewDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.DBPath != filepath.Join(dir, ".syntaxlabs", "syntaxlabs.db") {
		t.Fatalf("unexpected db path %s", cfg.DBPath)
	}
	if cfg.LoginDelay != 1500*time.Millisecond || cfg.RegisterDelay != 2*time.Second {
		t.Fatalf("unexpected delays: %v %v", cfg.LoginDelay, cfg.RegisterDelay)
	}
	if cfg.BannerTTL != 5*time.Second {
		t.Fatalf("banner ttl should default to 5s, got %v", cfg.BannerTTL)
	}
}

func TestNewRequiresDataDir(t *testing.T) {
	if _, err := config.New(" "); err == nil {
		t.Fatalf("empty data dir must fail")
	}
}

func TestYAMLThenEnvPrecedence(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, ".syntaxlabs"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	yamlDoc := "log_mode: prod\nlogin_delay: 250ms\nbanner_ttl: 3s\n"
	if err := os.WriteFile(filepath.Join(dir, ".syntaxlabs", "config.yaml"), []byte(yamlDoc), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	t.Setenv("SYNTAXLABS_LOGIN_DELAY", "0")

	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.LogMode != "prod" {
		t.Fatalf("yaml log mode not applied: %s", cfg.LogMode)
	}
	if cfg.BannerTTL != 3*time.Second {
		t.Fatalf("yaml banner ttl not applied: %v", cfg.BannerTTL)
	}
	if cfg.LoginDelay != 0 {
		t.Fatalf("env must override yaml, got %v", cfg.LoginDelay)
	}
}

func TestDotEnvFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, ".syntaxlabs"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".syntaxlabs", ".env"), []byte("SYNTAXLABS_ASSISTANT_DELAY=10ms\n"), 0o644); err != nil {
		t.Fatalf("write env: %v", err)
	}
	t.Cleanup(func() { _ = os.Unsetenv("SYNTAXLABS_ASSISTANT_DELAY") })

	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.AssistantDelay != 10*time.Millisecond {
		t.Fatalf("expected .env delay, got %v", cfg.AssistantDelay)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	t.Parallel()
	cfg := config.Default(t.TempDir())
	cfg.LogMode = "verbose"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("unknown log mode must fail")
	}
	cfg = config.Default(t.TempDir())
	cfg.LoginDelay = -time.Second
	if err := cfg.Validate(); err == nil {
		t.Fatalf("negative delay must fail")
	}
	cfg = config.Default(t.TempDir())
	cfg.BannerTTL = 0
	if err := cfg.Validate(); err == nil {
		t.Fatalf("zero banner ttl must fail")
	}
}
