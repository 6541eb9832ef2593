// Package config handles configuration loading and validation for draglist.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	Theme      string `yaml:"theme"`       // lipgloss palette name
	RowHeight  int    `yaml:"row_height"`  // height of each row in terminal lines
	RowSpacing int    `yaml:"row_spacing"` // blank lines between rows
	Mouse      bool   `yaml:"mouse"`       // enable mouse capture for drag reordering
	TasksFile  string `yaml:"tasks_file"`  // override for the task list path
	DataDir    string `yaml:"-"`           // set by caller, not from config file
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Theme:      "tokyo-night",
		RowHeight:  1,
		RowSpacing: 0,
		Mouse:      true,
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the
// provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
	if c.RowHeight == 0 {
		c.RowHeight = defaults.RowHeight
	}
}

// RowPitch is the vertical distance between the tops of adjacent rows.
func (c *Config) RowPitch() int {
	return c.RowHeight + c.RowSpacing
}
