// Package config loads the shared tool configuration: a JSON file with
// CLI flag overrides on top.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
)

// Config holds the paths and export settings shared by the tools.
type Config struct {
	// Paths
	DiscImage string `json:"disc_image"`
	OutputDir string `json:"output_dir"`

	// Export settings
	Format  string `json:"format"`
	Scale   int    `json:"scale"`
	Workers int    `json:"workers"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve applies CLI flag overrides and fills remaining empty fields
// with defaults. Flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.DiscImage != "" {
		c.DiscImage = flags.DiscImage
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Scale > 0 {
		c.Scale = flags.Scale
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.OutputDir == "" {
		c.OutputDir = "out"
	}
	if c.Format == "" {
		c.Format = "webp"
	}
	if c.Scale <= 0 {
		c.Scale = 1
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	DiscImage string
	OutputDir string
	Format    string
	Scale     int
	Workers   int
}
