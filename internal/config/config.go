// Package config loads bitcube's YAML configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration.
type Config struct {
	// DBPath is the SQLite database holding saved states.
	DBPath string `yaml:"db_path"`

	// WorkspacePath is the JSON file holding the working cube.
	WorkspacePath string `yaml:"workspace_path"`

	// Palette maps cell colors 0..7 to terminal colors. Any lipgloss
	// color string works: ANSI numbers ("1") or hex ("#ff0000").
	Palette map[int]string `yaml:"palette"`
}

// Dir returns ~/.bitcube.
func Dir() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".bitcube")
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join(Dir(), "config.yaml")
}

// DefaultPalette returns the default cell colors: white, orange, green,
// red, blue, yellow in net order, grey for empty and magenta for the
// wildcard.
func DefaultPalette() map[int]string {
	return map[int]string{
		0: "8",
		1: "#ffffff",
		2: "#ff8c00",
		3: "#00a651",
		4: "#e4002b",
		5: "#0051ba",
		6: "#ffd500",
		7: "13",
	}
}

// Default returns the default configuration.
func Default() *Config {
	dir := Dir()
	return &Config{
		DBPath:        filepath.Join(dir, "bitcube.db"),
		WorkspacePath: filepath.Join(dir, "workspace.json"),
		Palette:       DefaultPalette(),
	}
}

// Load reads the config file at path over the defaults. A missing file is
// not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	// Palette entries in the file are merged over the default palette.
	palette := cfg.Palette
	cfg.Palette = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	for k, v := range cfg.Palette {
		palette[k] = v
	}
	cfg.Palette = palette

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.DBPath == "" {
		return errors.New("db_path is required")
	}
	if c.WorkspacePath == "" {
		return errors.New("workspace_path is required")
	}
	for k := range c.Palette {
		if k < 0 || k > 7 {
			return fmt.Errorf("palette: color %d out of range 0..7", k)
		}
	}
	return nil
}

// Save writes the configuration to path, creating its directory.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
