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
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}

	if cfg.Camera.FOV != 60 {
		t.Errorf("expected fov 60, got %f", cfg.Camera.FOV)
	}
	if cfg.Camera.SprintScale != 3 {
		t.Errorf("expected sprint scale 3, got %f", cfg.Camera.SprintScale)
	}

	if cfg.Shadow.Resolution != 2048 {
		t.Errorf("expected shadow resolution 2048, got %d", cfg.Shadow.Resolution)
	}
	if !cfg.Shadow.Enabled {
		t.Error("expected shadows to be enabled by default")
	}

	if cfg.Assets.Model != "Cube" {
		t.Errorf("expected default model 'Cube', got %s", cfg.Assets.Model)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	cfg := Default()
	cfg.Graphics.Width = 1920
	cfg.Graphics.Height = 1080
	cfg.Camera.FOV = 75
	cfg.Shadow.Resolution = 4096
	cfg.Assets.Model = "Sponza"

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loadFromFile failed: %v", err)
	}

	if loaded.Graphics.Width != 1920 || loaded.Graphics.Height != 1080 {
		t.Errorf("resolution round trip failed: got %dx%d", loaded.Graphics.Width, loaded.Graphics.Height)
	}
	if loaded.Camera.FOV != 75 {
		t.Errorf("fov round trip failed: got %f", loaded.Camera.FOV)
	}
	if loaded.Shadow.Resolution != 4096 {
		t.Errorf("shadow resolution round trip failed: got %d", loaded.Shadow.Resolution)
	}
	if loaded.Assets.Model != "Sponza" {
		t.Errorf("model round trip failed: got %s", loaded.Assets.Model)
	}
}

func TestLoadFromFilePartial(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	// A partial file should only override the keys it names.
	partial := "graphics:\n  width: 800\nlogging:\n  level: debug\n"
	if err := os.WriteFile(path, []byte(partial), 0644); err != nil {
		t.Fatalf("writing partial config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		t.Fatalf("loadFromFile failed: %v", err)
	}

	if cfg.Graphics.Width != 800 {
		t.Errorf("expected width 800, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("expected default height 720 preserved, got %d", cfg.Graphics.Height)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.Logging.Level)
	}
}
