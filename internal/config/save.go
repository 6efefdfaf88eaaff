package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk form of Config. Durations are written as
// strings ("100ms") so the file stays readable.
type fileConfig struct {
	Version        int          `yaml:"version"`
	APIEndpoint    string       `yaml:"api_endpoint"`
	Interval       string       `yaml:"interval"`
	RequestTimeout string       `yaml:"request_timeout"`
	Sort           string       `yaml:"sort"`
	Output         OutputConfig `yaml:"output"`
}

// Marshal renders cfg as YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(fileConfig{
		Version:        cfg.Version,
		APIEndpoint:    cfg.APIEndpoint,
		Interval:       cfg.Interval.String(),
		RequestTimeout: cfg.RequestTimeout.String(),
		Sort:           cfg.Sort,
		Output:         cfg.Output,
	})
}

// Save writes cfg to path, creating parent directories as needed.
func Save(path string, cfg *Config) error {
	data, err := Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
