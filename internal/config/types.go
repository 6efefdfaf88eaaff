package config

import (
	"time"

	"github.com/wavefnx/roller/internal/client"
	"github.com/wavefnx/roller/internal/tracker"
	"github.com/wavefnx/roller/internal/ui"
)

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .roller.yaml configuration file.
type Config struct {
	Version int `yaml:"version" mapstructure:"version"`

	// APIEndpoint is the tracker API base URL.
	APIEndpoint string `yaml:"api_endpoint" mapstructure:"api_endpoint"`

	// Interval is how long each loop iteration waits for a key press.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`

	// RequestTimeout bounds the metadata request. The event stream is untimed.
	RequestTimeout time.Duration `yaml:"request_timeout" mapstructure:"request_timeout"`

	// Sort is the initial sort order: "gps", "tps" or "dps".
	Sort string `yaml:"sort" mapstructure:"sort"`

	Output OutputConfig `yaml:"output" mapstructure:"output"`
}

// OutputConfig controls terminal output formatting.
type OutputConfig struct {
	// Color mode: "auto", "always", or "never".
	// "auto" disables color when output is piped.
	Color string `yaml:"color" mapstructure:"color"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version:        CurrentConfigVersion,
		APIEndpoint:    client.DefaultEndpoint,
		Interval:       tracker.DefaultInterval,
		RequestTimeout: client.DefaultTimeout,
		Sort:           tracker.ByGps.String(),
		Output: OutputConfig{
			Color: ui.ColorModeAuto,
		},
	}
}

// Strategy returns the configured initial sort strategy, defaulting to
// gas per second for unknown names.
func (c *Config) Strategy() tracker.Strategy {
	s, _ := tracker.ParseStrategy(c.Sort)
	return s
}
