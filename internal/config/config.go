// Package config loads and saves the tool's YAML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultThreshold is the clustering distance, in pixels, used when neither
// the config file nor the command line sets one.
const DefaultThreshold = 10

// Config holds all monalign settings.
type Config struct {
	// StorePath locates the snapshot database.
	StorePath string `yaml:"store_path"`

	// Threshold is the clustering distance in pixels, applied uniformly
	// to both axes. Zero means exact equality only.
	Threshold int32 `yaml:"threshold"`

	// AutoApprove skips the confirmation prompt before applying.
	AutoApprove bool `yaml:"auto_approve"`

	// Theme selects terminal colors: auto, dark, or light.
	Theme string `yaml:"theme"`

	// WatchDebounceMS batches rapid store changes in watch mode.
	WatchDebounceMS int `yaml:"watch_debounce_ms"`

	// HistoryPath locates the journal of applied corrections.
	HistoryPath string `yaml:"history_path"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		StorePath:       defaultStorePath(),
		Threshold:       DefaultThreshold,
		Theme:           "auto",
		WatchDebounceMS: 500,
		HistoryPath:     defaultHistoryPath(),
	}
}

// DefaultPath returns the config file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "monalign.yaml"
	}
	return filepath.Join(home, ".config", "monalign", "config.yaml")
}

func defaultStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "monitors.db"
	}
	return filepath.Join(home, ".config", "monalign", "monitors.db")
}

func defaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "history.jsonl"
	}
	return filepath.Join(home, ".config", "monalign", "history.jsonl")
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults; environment overrides apply either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies MONALIGN_* environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if path := os.Getenv("MONALIGN_STORE"); path != "" {
		c.StorePath = path
	}

	if raw := os.Getenv("MONALIGN_THRESHOLD"); raw != "" {
		if v, err := strconv.ParseInt(raw, 10, 32); err == nil {
			c.Threshold = int32(v)
		}
	}

	if raw := os.Getenv("MONALIGN_AUTO_APPROVE"); raw != "" {
		switch strings.ToLower(raw) {
		case "1", "true", "yes":
			c.AutoApprove = true
		case "0", "false", "no":
			c.AutoApprove = false
		}
	}

	if theme := os.Getenv("MONALIGN_THEME"); theme != "" {
		c.Theme = theme
	}
}
