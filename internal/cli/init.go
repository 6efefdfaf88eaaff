package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/wavefnx/roller/internal/config"
	"github.com/wavefnx/roller/internal/errors"
	"github.com/wavefnx/roller/internal/tracker"
	"github.com/wavefnx/roller/internal/ui"
)

// InitOptions holds options for the init command.
type InitOptions struct {
	Path           string // Where to write; defaults to ./.roller.yaml
	Endpoint       string // Pre-specified API endpoint
	Interval       string // Pre-specified poll interval, e.g. "100ms"
	Sort           string // Pre-specified sort order
	Overwrite      bool   // Overwrite existing config without asking
	NonInteractive bool   // Skip prompts, use defaults
	Out            io.Writer
}

// getInitDefaults reads init values from the environment. CI implies
// non-interactive mode.
func getInitDefaults() InitOptions {
	nonInteractive := os.Getenv("ROLLER_NON_INTERACTIVE")
	return InitOptions{
		Endpoint:       os.Getenv("ROLLER_API_ENDPOINT"),
		Interval:       os.Getenv("ROLLER_INTERVAL"),
		Sort:           os.Getenv("ROLLER_SORT"),
		NonInteractive: isTruthy(nonInteractive) || os.Getenv("CI") != "",
	}
}

// mergeInitOptions fills unset flag values from the environment.
func mergeInitOptions(opts InitOptions) InitOptions {
	env := getInitDefaults()
	if opts.Endpoint == "" {
		opts.Endpoint = env.Endpoint
	}
	if opts.Interval == "" {
		opts.Interval = env.Interval
	}
	if opts.Sort == "" {
		opts.Sort = env.Sort
	}
	opts.NonInteractive = opts.NonInteractive || env.NonInteractive
	return opts
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// Init creates a new .roller.yaml configuration file.
func Init(opts InitOptions) error {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	configPath := opts.Path
	if configPath == "" {
		configPath = config.ConfigFileName
	}

	if _, err := os.Stat(configPath); err == nil && !opts.Overwrite {
		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", configPath),
				"Use --force to overwrite")
		}

		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", configPath)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Fprintln(out, "Cancelled.")
			return nil
		}
	}

	defaults := config.DefaultConfig()
	endpoint := orDefault(opts.Endpoint, defaults.APIEndpoint)
	interval := orDefault(opts.Interval, defaults.Interval.String())
	sortBy := orDefault(opts.Sort, defaults.Sort)

	if !opts.NonInteractive {
		fmt.Fprintln(out, ui.RenderHeader(ui.HeaderInfo{
			Version: formatVersion(version),
			Tagline: "Create " + configPath,
		}))
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("API endpoint").
					Description("Base URL serving /networkMetadata and /sse").
					Placeholder(defaults.APIEndpoint).
					Value(&endpoint).
					Validate(validateEndpointInput),
				huh.NewInput().
					Title("Poll interval").
					Description("How long each refresh waits for a key press").
					Placeholder(defaults.Interval.String()).
					Value(&interval).
					Validate(func(s string) error {
						_, err := parseIntervalInput(s)
						return err
					}),
				huh.NewSelect[string]().
					Title("Sort by").
					Options(
						huh.NewOption(tracker.ByGps.Label(), tracker.ByGps.String()),
						huh.NewOption(tracker.ByTps.Label(), tracker.ByTps.String()),
						huh.NewOption(tracker.ByDps.Label(), tracker.ByDps.String()),
					).
					Value(&sortBy),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Check terminal compatibility or use --non-interactive flag")
		}
	}

	cfg, err := buildInitConfig(endpoint, interval, sortBy)
	if err != nil {
		return err
	}

	if err := config.Save(configPath, cfg); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Failed to write config file: %s", configPath),
			"Check directory permissions")
	}

	fmt.Fprintf(out, "%s Created %s\n\n", ui.SymbolSuccess, configPath)
	fmt.Fprintln(out, ui.InfoStyle().Render("Next steps:"))
	fmt.Fprintln(out, "  roller           - Open the live dashboard")
	fmt.Fprintln(out, "  roller networks  - List the tracked networks")
	return nil
}

// buildInitConfig turns the collected answers into a validated config.
func buildInitConfig(endpoint, interval, sortBy string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.APIEndpoint = strings.TrimRight(strings.TrimSpace(endpoint), "/")

	d, err := parseIntervalInput(interval)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("'%s' doesn't look like a valid interval", interval),
			"Try something like 100ms or 1s.")
	}
	cfg.Interval = d

	s, ok := tracker.ParseStrategy(strings.ToLower(strings.TrimSpace(sortBy)))
	if !ok {
		return nil, errors.New(errors.ErrConfig,
			fmt.Sprintf("'%s' isn't a sort order I know", sortBy),
			"Use one of: gps, tps, dps.")
	}
	cfg.Sort = s.String()

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseIntervalInput(s string) (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if d < config.MinInterval {
		return 0, fmt.Errorf("interval must be at least %s", config.MinInterval)
	}
	return d, nil
}

func validateEndpointInput(s string) error {
	cfg := config.DefaultConfig()
	cfg.APIEndpoint = strings.TrimSpace(s)
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("enter an http(s) URL with a host")
	}
	return nil
}

func orDefault(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

// initCommand is the implementation called by the cobra command.
func initCommand(opts InitOptions) error {
	return Init(mergeInitOptions(opts))
}
