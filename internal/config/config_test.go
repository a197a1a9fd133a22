package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestResolveDefaults(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{})

	if cfg.InputDir != "." {
		t.Errorf("InputDir = %q, want .", cfg.InputDir)
	}
	if cfg.OutputDir != filepath.Join(".", "renders") {
		t.Errorf("OutputDir = %q", cfg.OutputDir)
	}
	if cfg.RenderSize != 256 || cfg.Supersample != 2 {
		t.Errorf("render settings = %d/%d, want 256/2", cfg.RenderSize, cfg.Supersample)
	}
	if cfg.Format != "webp" {
		t.Errorf("Format = %q, want webp", cfg.Format)
	}
	if cfg.Workers != runtime.NumCPU() {
		t.Errorf("Workers = %d, want NumCPU", cfg.Workers)
	}
}

func TestFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{"input_dir": "models", "render_size": 128, "format": "tga"}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg.Resolve(Flags{InputDir: "other", Size: 512})

	if cfg.InputDir != "other" {
		t.Errorf("InputDir = %q, want flag override", cfg.InputDir)
	}
	if cfg.RenderSize != 512 {
		t.Errorf("RenderSize = %d, want 512", cfg.RenderSize)
	}
	if cfg.Format != "tga" {
		t.Errorf("Format = %q, want tga from file", cfg.Format)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("expected error for missing config file")
	}
}
