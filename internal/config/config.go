package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the utf8check CLI defaults. Flags override whatever is loaded
// from the file.
type Config struct {
	Format string `yaml:"format"` // "text" or "json"
	Lang   string `yaml:"lang"`   // "en" or "ja"
	All    bool   `yaml:"all"`    // collect every error, not just the first
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Format: "text",
		Lang:   "en",
	}
}

// Load reads configuration from the specified path.
func Load(path string) (*Config, error) {
	if !filepath.IsAbs(path) {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		path = abs
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if cfg.Format != "text" && cfg.Format != "json" {
		return nil, fmt.Errorf("unknown format %q in config", cfg.Format)
	}
	return cfg, nil
}

// Save writes the configuration to the specified path.
func Save(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
