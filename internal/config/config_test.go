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
	if cfg.Graphics.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Graphics.Height)
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}

	if cfg.Scene.PrismSides != 6 {
		t.Errorf("expected 6 prism sides, got %d", cfg.Scene.PrismSides)
	}
	if len(cfg.Scene.Ramps) == 0 {
		t.Error("expected at least one default ramp")
	}

	if cfg.Params.Ambient != 0.2 {
		t.Errorf("expected ambient 0.2, got %f", cfg.Params.Ambient)
	}
	if cfg.Params.OrbitText == "" {
		t.Error("expected a default orbit text phrase")
	}
	if cfg.Params.BlackBackground {
		t.Error("expected black_background to be false by default")
	}
	if cfg.Params.LockCamera {
		t.Error("expected lock_camera to be false by default")
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false

scene:
  descriptor_url: "https://example.net/scene.json"
  model_path: "assets/prism.obj"
  prism_sides: 8

params:
  ambient: 0.35
  orbit_text: "HELLO"
  orbit_tilt: 25
  orbit_radius: 40
  speed: 0.02
  black_background: true
  lock_camera: true

logging:
  level: "debug"
  log_file: "viewer.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Graphics.Width)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen true")
	}
	if cfg.Scene.DescriptorURL != "https://example.net/scene.json" {
		t.Errorf("unexpected descriptor url %q", cfg.Scene.DescriptorURL)
	}
	if cfg.Scene.PrismSides != 8 {
		t.Errorf("expected 8 prism sides, got %d", cfg.Scene.PrismSides)
	}
	if cfg.Params.Ambient != 0.35 {
		t.Errorf("expected ambient 0.35, got %f", cfg.Params.Ambient)
	}
	if cfg.Params.OrbitText != "HELLO" {
		t.Errorf("expected orbit text HELLO, got %q", cfg.Params.OrbitText)
	}
	if !cfg.Params.BlackBackground || !cfg.Params.LockCamera {
		t.Error("expected boolean params to load as true")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level debug, got %q", cfg.Logging.Level)
	}

	// Fields absent from the file keep their defaults
	if len(cfg.Scene.Ramps) == 0 {
		t.Error("expected default ramps to survive partial file")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Params.Ambient = 0.55
	cfg.Scene.ModelPath = "assets/custom.obj"

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if loaded.Params.Ambient != 0.55 {
		t.Errorf("ambient did not round-trip, got %f", loaded.Params.Ambient)
	}
	if loaded.Scene.ModelPath != "assets/custom.obj" {
		t.Errorf("model path did not round-trip, got %q", loaded.Scene.ModelPath)
	}
}
