package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}

	if cfg.Water.WaveCount != 20 {
		t.Errorf("expected 20 waves, got %d", cfg.Water.WaveCount)
	}
	if cfg.Water.AmpMax != 0.1 {
		t.Errorf("expected amp_max 0.1, got %v", cfg.Water.AmpMax)
	}
	if cfg.Water.GridX != 500 || cfg.Water.GridZ != 500 {
		t.Errorf("expected 500x500 grid, got %dx%d", cfg.Water.GridX, cfg.Water.GridZ)
	}
	if cfg.Water.CorrectedSpeedFloor {
		t.Error("expected legacy speed floor by default")
	}
	if cfg.Water.RefractiveCaustics {
		t.Error("expected radial caustics by default")
	}
	if !cfg.Water.Animate {
		t.Error("expected animation on by default")
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
water:
  wave_count: 4
  seed: 99
  refractive_caustics: true
graphics:
  width: 800
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		t.Fatalf("loadFromFile() error = %v", err)
	}

	if cfg.Water.WaveCount != 4 {
		t.Errorf("wave_count = %d, want 4", cfg.Water.WaveCount)
	}
	if cfg.Water.Seed != 99 {
		t.Errorf("seed = %d, want 99", cfg.Water.Seed)
	}
	if !cfg.Water.RefractiveCaustics {
		t.Error("refractive_caustics not applied from file")
	}
	if cfg.Graphics.Width != 800 {
		t.Errorf("width = %d, want 800", cfg.Graphics.Width)
	}
	// Values absent from the file keep their defaults.
	if cfg.Graphics.Height != 720 {
		t.Errorf("height = %d, want default 720", cfg.Graphics.Height)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level = %s, want debug", cfg.Logging.Level)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("loadFromFile(missing) = nil, want error")
	}
}
