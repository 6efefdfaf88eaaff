package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/wavefnx/roller/internal/config"
	"github.com/wavefnx/roller/internal/errors"
	"github.com/wavefnx/roller/internal/tracker"
	"github.com/wavefnx/roller/internal/ui"
)

// GlobalFlags holds the persistent flags shared by every command.
type GlobalFlags struct {
	ConfigPath  string
	IntervalMs  int
	APIEndpoint string
	Sort        string
	NoColor     bool
}

// AddGlobalFlags registers --config, --interval-ms, --api-endpoint, --sort and
// --no-color as persistent flags on cmd.
func AddGlobalFlags(cmd *cobra.Command, flags *GlobalFlags) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.ConfigPath, "config", "", "config file (default: ./.roller.yaml, then ~/.config/roller/config.yaml)")
	pf.IntVarP(&flags.IntervalMs, "interval-ms", "i", 0, "key poll interval in milliseconds (default 100)")
	pf.StringVar(&flags.APIEndpoint, "api-endpoint", "", "tracker API base URL")
	pf.StringVar(&flags.Sort, "sort", "", "initial sort order: gps, tps or dps")
	pf.BoolVar(&flags.NoColor, "no-color", false, "disable colored output")
}

// ApplyOverrides copies every flag the user set onto cfg. changed reports
// whether a flag was given on the command line, so unset flags never mask
// values from the file or environment.
func ApplyOverrides(cfg *config.Config, flags GlobalFlags, changed func(name string) bool) error {
	if changed("interval-ms") {
		interval, err := ParseIntervalMs(flags.IntervalMs)
		if err != nil {
			return err
		}
		cfg.Interval = interval
	}
	if changed("api-endpoint") {
		cfg.APIEndpoint = strings.TrimRight(strings.TrimSpace(flags.APIEndpoint), "/")
	}
	if changed("sort") {
		s, ok := tracker.ParseStrategy(strings.ToLower(strings.TrimSpace(flags.Sort)))
		if !ok {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("'%s' isn't a sort order I know", flags.Sort),
				"Use one of: gps, tps, dps.")
		}
		cfg.Sort = s.String()
	}
	if changed("no-color") && flags.NoColor {
		cfg.Output.Color = ui.ColorModeNever
	}
	return nil
}

// ParseIntervalMs converts the --interval-ms value into a duration.
func ParseIntervalMs(ms int) (time.Duration, error) {
	if ms <= 0 {
		return 0, errors.New(errors.ErrConfig,
			fmt.Sprintf("%dms isn't a usable poll interval", ms),
			"Pass a positive number of milliseconds, e.g. -i 100.")
	}
	return time.Duration(ms) * time.Millisecond, nil
}
