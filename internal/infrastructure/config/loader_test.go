package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/skypaper/internal/domain"
	"github.com/doeshing/skypaper/internal/infrastructure/config"
)

func TestFileLoader_WritesDefaultOnFirstLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	loader := config.NewFileLoader(path)

	cfg, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(config.Default(), cfg); diff != "" {
		t.Fatalf("first Load() mismatch (-want +got):\n%s", diff)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("default config not written: %v", err)
	}

	// A second load round-trips the written file.
	again, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("second Load() error = %v", err)
	}
	if diff := cmp.Diff(cfg, again); diff != "" {
		t.Fatalf("round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestFileLoader_HydratesPartialConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	partial := []byte("search:\n  query: nebula\nhistory:\n  cap: 10\n")
	if err := os.WriteFile(path, partial, 0o600); err != nil {
		t.Fatalf("write partial config: %v", err)
	}

	cfg, err := config.NewFileLoader(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Search.Query != "nebula" {
		t.Fatalf("query = %q, want nebula", cfg.Search.Query)
	}
	if cfg.Search.MediaType != "image" {
		t.Fatalf("media_type = %q, want hydrated image", cfg.Search.MediaType)
	}
	if cfg.Catalog.BaseURL != domain.DefaultCatalogBaseURL {
		t.Fatalf("base_url = %q, want hydrated default", cfg.Catalog.BaseURL)
	}
	if cfg.HistoryCap() != 10 {
		t.Fatalf("HistoryCap() = %d, want 10", cfg.HistoryCap())
	}
}

func TestFileLoader_MalformedYAMLErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("search: [unclosed"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := config.NewFileLoader(path).Load(context.Background()); err == nil {
		t.Fatal("Load() accepted malformed YAML")
	}
}

func TestFileLoader_EnvOverridePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	t.Setenv("SKYPAPER_CONFIG", path)

	loader := config.NewFileLoader("")
	if got := loader.Path(); got != path {
		t.Fatalf("Path() = %q, want %q", got, path)
	}
}
