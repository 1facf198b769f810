package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	if cfg.Listen != ":8000" {
		t.Errorf("Listen: got %q", cfg.Listen)
	}
	if cfg.ChunkSize != 4000 {
		t.Errorf("ChunkSize: got %d", cfg.ChunkSize)
	}
	if cfg.Width != 200 || cfg.Height != 150 {
		t.Errorf("canvas: got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.MaxFrames != 10 {
		t.Errorf("MaxFrames: got %d", cfg.MaxFrames)
	}
	if cfg.MaxPalettes != 500 {
		t.Errorf("MaxPalettes: got %d", cfg.MaxPalettes)
	}
	if cfg.RotationInterval() != 5*time.Second {
		t.Errorf("RotationInterval: got %v", cfg.RotationInterval())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "framecast.yml")
	content := []byte("listen: \":9000\"\nchunk_size: 1000\nwidth: 64\nheight: 48\nrotation_sec: 2.5\n")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if cfg.Listen != ":9000" {
		t.Errorf("Listen: got %q", cfg.Listen)
	}
	if cfg.ChunkSize != 1000 {
		t.Errorf("ChunkSize: got %d", cfg.ChunkSize)
	}
	if cfg.Width != 64 || cfg.Height != 48 {
		t.Errorf("canvas: got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.RotationInterval() != 2500*time.Millisecond {
		t.Errorf("RotationInterval: got %v", cfg.RotationInterval())
	}

	// Keys the file does not set keep their defaults.
	if cfg.MaxFrames != 10 {
		t.Errorf("MaxFrames should stay at default, got %d", cfg.MaxFrames)
	}
	if cfg.VideoPath != "video.mp4" {
		t.Errorf("VideoPath should stay at default, got %q", cfg.VideoPath)
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.yml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestLoadFromFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yml")
	if err := os.WriteFile(path, []byte("listen: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFromFile(path); err == nil {
		t.Fatal("expected an error for malformed YAML")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -1 }},
		{"zero chunk size", func(c *Config) { c.ChunkSize = 0 }},
		{"zero max frames", func(c *Config) { c.MaxFrames = 0 }},
		{"zero max palettes", func(c *Config) { c.MaxPalettes = 0 }},
		{"zero rotation", func(c *Config) { c.RotationSec = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Defaults()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}
