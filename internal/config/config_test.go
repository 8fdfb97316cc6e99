package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFrom_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom(t.TempDir())
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	if cfg.BackendMode != BackendModeLive {
		t.Errorf("expected live mode by default, got %s", cfg.BackendMode)
	}
	if cfg.BackendURL != DefaultBackendURL {
		t.Errorf("expected default backend URL, got %s", cfg.BackendURL)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	cfg := &Config{
		Version:       "1.0",
		DatabasePath:  filepath.Join(dir, "test.db"),
		BackendMode:   BackendModeCanned,
		DefaultSiteID: "SITE-A",
	}
	if err := SaveTo(dir, cfg); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	got, err := LoadFrom(dir)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	if got.BackendMode != BackendModeCanned {
		t.Errorf("expected canned mode, got %s", got.BackendMode)
	}
	if got.DefaultSiteID != "SITE-A" {
		t.Errorf("expected default site SITE-A, got %s", got.DefaultSiteID)
	}
	if got.DatabasePath != cfg.DatabasePath {
		t.Errorf("expected database path round-trip, got %s", got.DatabasePath)
	}
	// Empty URL in the file falls back to the default
	if got.BackendURL != DefaultBackendURL {
		t.Errorf("expected default backend URL fallback, got %s", got.BackendURL)
	}
}

func TestLoadFrom_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	if err := SaveTo(dir, Default()); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	// Corrupt the file
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("failed to corrupt config: %v", err)
	}

	if _, err := LoadFrom(dir); err == nil {
		t.Fatal("expected error for invalid JSON, got nil")
	}
}
