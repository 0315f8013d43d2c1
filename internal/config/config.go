// Package config loads and saves the hoard configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultCapacity is used when no capacity is configured anywhere.
// It matches the demo scenario so `hoard demo` works out of the box.
const DefaultCapacity = 2

// Config represents the hoard configuration file.
type Config struct {
	Capacity int          `yaml:"capacity"`
	Output   OutputConfig `yaml:"output"`
}

// OutputConfig defines output preferences.
type OutputConfig struct {
	Color string `yaml:"color"` // auto, always, never
	Quiet bool   `yaml:"quiet"`
}

// Path returns the path to the hoard config file.
func Path() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hoard.yaml")
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Capacity: DefaultCapacity,
		Output: OutputConfig{
			Color: "auto",
		},
	}
}

// Load reads the configuration from path, or from Path() when path is
// empty. A missing file is not an error; defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = Path()
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if cfg.Capacity <= 0 {
		return nil, fmt.Errorf("parsing %s: capacity must be positive, got %d", path, cfg.Capacity)
	}

	return cfg, nil
}

// Save writes the configuration to path, or to Path() when path is empty.
func Save(cfg *Config, path string) error {
	if path == "" {
		path = Path()
	}
	if path == "" {
		return os.ErrNotExist
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
