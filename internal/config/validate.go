package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/wavefnx/roller/internal/errors"
	"github.com/wavefnx/roller/internal/tracker"
)

// MinInterval is the shortest accepted poll interval.
const MinInterval = time.Millisecond

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New(errors.ErrConfig,
			"Config is nil",
			"This is unexpected - try reloading the configuration.")
	}

	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but roller only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Upgrade roller or lower the version in your config.")
	}

	if err := validateEndpoint(cfg.APIEndpoint); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(),
			"Set api_endpoint to an http(s) URL, e.g. https://tracker-api-gdesfolyga-uw.a.run.app")
	}

	if err := validateTiming(cfg.Interval, cfg.RequestTimeout); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(),
			"Use Go duration syntax like '100ms' or '10s'.")
	}

	if _, ok := tracker.ParseStrategy(cfg.Sort); !ok {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("sort '%s' isn't valid - use 'gps', 'tps', or 'dps'", cfg.Sort),
			"Check the 'sort' setting in your .roller.yaml.")
	}

	if err := validateOutput(cfg.Output); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(),
			"Check the 'output' section in your .roller.yaml.")
	}

	return nil
}

func validateEndpoint(endpoint string) error {
	if endpoint == "" {
		return fmt.Errorf("api_endpoint is empty")
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("api_endpoint '%s' isn't a valid URL: %v", endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("api_endpoint '%s' must use http or https", endpoint)
	}
	if u.Host == "" {
		return fmt.Errorf("api_endpoint '%s' has no host", endpoint)
	}
	return nil
}

func validateTiming(interval, timeout time.Duration) error {
	if interval < MinInterval {
		return fmt.Errorf("interval %v is too short - it must be at least %v", interval, MinInterval)
	}
	if timeout <= 0 {
		return fmt.Errorf("request_timeout must be positive, got %v", timeout)
	}
	return nil
}

// validateOutput checks output configuration.
func validateOutput(out OutputConfig) error {
	validColors := map[string]bool{"auto": true, "always": true, "never": true, "": true}
	if !validColors[out.Color] {
		return fmt.Errorf("output.color '%s' isn't valid - use 'auto', 'always', or 'never'", out.Color)
	}
	return nil
}
