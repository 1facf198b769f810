// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the full configuration for framecast.
type Config struct {
	// Server
	Listen    string `yaml:"listen"`
	ChunkSize int    `yaml:"chunk_size"`

	// Canvas
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Retention
	MaxFrames   int `yaml:"max_frames"`
	MaxPalettes int `yaml:"max_palettes"`

	// Producers
	VideoPath   string  `yaml:"video_path"`
	FFmpegPath  string  `yaml:"ffmpeg_path"`
	ShapeCount  int     `yaml:"shape_count"`
	RotationSec float64 `yaml:"rotation_sec"`

	// Logging
	LogLevel string `yaml:"log_level"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		Listen:      ":8000",
		ChunkSize:   4000,
		Width:       200,
		Height:      150,
		MaxFrames:   10,
		MaxPalettes: 500,
		VideoPath:   "video.mp4",
		ShapeCount:  4,
		RotationSec: 5,
		LogLevel:    "info",
	}
}

// LoadFromFile loads configuration from a YAML file on top of the defaults.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the pipeline cannot work with.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: invalid canvas size %dx%d", c.Width, c.Height)
	}
	if c.ChunkSize <= 0 {
		return fmt.Errorf("config: chunk_size must be positive, got %d", c.ChunkSize)
	}
	if c.MaxFrames <= 0 {
		return fmt.Errorf("config: max_frames must be positive, got %d", c.MaxFrames)
	}
	if c.MaxPalettes <= 0 {
		return fmt.Errorf("config: max_palettes must be positive, got %d", c.MaxPalettes)
	}
	if c.RotationSec <= 0 {
		return fmt.Errorf("config: rotation_sec must be positive, got %g", c.RotationSec)
	}
	return nil
}

// RotationInterval returns the mode rotation interval as a Duration.
func (c Config) RotationInterval() time.Duration {
	return time.Duration(c.RotationSec * float64(time.Second))
}
