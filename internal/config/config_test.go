package config

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := Config{
		HTTPAddr:        "localhost:8080",
		LogLevel:        "info",
		Theme:           "resume",
		ThemeVariant:    "light",
		ShutdownTimeout: 5 * time.Second,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("RESUMEGEN_HTTP_ADDR", ":9000")
	t.Setenv("RESUMEGEN_SEED_FILE", "seed.yaml")
	t.Setenv("RESUMEGEN_THEME_VARIANT", "dark")
	t.Setenv("RESUMEGEN_SHUTDOWN_TIMEOUT", "250ms")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTPAddr != ":9000" || cfg.SeedFile != "seed.yaml" || cfg.ThemeVariant != "dark" {
		t.Fatalf("unexpected config %#v", cfg)
	}
	if cfg.ShutdownTimeout != 250*time.Millisecond {
		t.Fatalf("unexpected timeout %v", cfg.ShutdownTimeout)
	}
}

func TestLoadError(t *testing.T) {
	t.Setenv("RESUMEGEN_SHUTDOWN_TIMEOUT", "soon")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
