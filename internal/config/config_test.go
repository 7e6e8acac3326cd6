package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	_ "time/tzdata"
)

func TestParseEnvDefaults(t *testing.T) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != "5175" || cfg.Epoch != "2022-02-10" || cfg.Timezone != "Europe/Stockholm" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Production() {
		t.Fatal("expected development by default")
	}
}

func TestParseEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("WORDS_PLAIN", "true")
	t.Setenv("NODE_ENV", "production")

	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != "9000" || !cfg.PlainWords || !cfg.Production() {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("WORDS_PLAIN", "not-a-bool")

	var cfg Config
	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("KLURO_EPOCH=2023-01-01\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Chdir(dir)
	// t.Setenv registers cleanup so the value loaded from .env does not leak.
	t.Setenv("KLURO_EPOCH", "")
	os.Unsetenv("KLURO_EPOCH")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Epoch != "2023-01-01" {
		t.Fatalf("expected epoch from .env, got %s", cfg.Epoch)
	}
}

func TestLocation(t *testing.T) {
	loc, err := Config{Timezone: "Europe/Stockholm"}.Location()
	if err != nil || loc.String() != "Europe/Stockholm" {
		t.Fatalf("expected Europe/Stockholm, got %v (%v)", loc, err)
	}
	if _, err := (Config{Timezone: "Mars/Olympus"}).Location(); err == nil {
		t.Fatal("expected error for unknown zone")
	}
}
