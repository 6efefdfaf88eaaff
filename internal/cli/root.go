package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wavefnx/roller/internal/config"
	"github.com/wavefnx/roller/internal/ui"
)

var globalFlags GlobalFlags

// rootCmd launches the live dashboard when run without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "roller",
	Short: "Live rollup metrics in your terminal",
	Long: `roller streams block height, transactions, gas and data throughput
for a set of rollups and shows them in a live, sortable table.

Keys:
  up/down   move the selection
  g         sort by gas per second
  t         sort by transactions per second
  k or d    sort by KB per second
  q         quit

Examples:
  roller
  roller --sort tps -i 250
  roller --api-endpoint http://localhost:8080
  roller networks --json`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return dashboardCommand(cmd.Context(), cfg)
	},
}

func init() {
	AddGlobalFlags(rootCmd, &globalFlags)
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		reportError(os.Stdout, os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig resolves the configuration for cmd: file, then env, then the
// flags the user actually passed. The result is validated and the color
// mode applied before returning.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, _, err := config.LoadOrDefault(globalFlags.ConfigPath)
	if err != nil {
		return nil, err
	}
	if err := ApplyOverrides(cfg, globalFlags, cmd.Flags().Changed); err != nil {
		return nil, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	ui.ApplyColorMode(cfg.Output.Color)
	return cfg, nil
}

// reportError prints err for a human, or as a JSON envelope on stdout in
// machine mode.
func reportError(stdout, stderr io.Writer, err error) {
	if MachineMode() {
		_ = WriteJSONFromError(stdout, err)
		return
	}

	if isUnknownCommandError(err) {
		msg := err.Error()
		if name := extractUnknownCommand(err); name != "" {
			msg = fmt.Sprintf("Unknown command %q", name)
		}
		fmt.Fprintf(stderr, "%s %s\n\n  Run 'roller --help' to see what's available.\n", ui.SymbolFail, msg)
		return
	}

	msg := err.Error()
	if !strings.HasPrefix(msg, ui.SymbolFail) {
		msg = ui.SymbolFail + " " + msg
	}
	fmt.Fprintln(stderr, strings.TrimRight(msg, "\n"))
}

// isUnknownCommandError reports whether err is cobra's unknown command or
// unknown flag error.
func isUnknownCommandError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") || strings.HasPrefix(msg, "unknown flag") ||
		strings.HasPrefix(msg, "unknown shorthand flag")
}

// extractUnknownCommand pulls the command name out of cobra's
// `unknown command "foo" for "roller"` message.
func extractUnknownCommand(err error) string {
	msg := err.Error()
	start := strings.Index(msg, `"`)
	if start == -1 {
		return ""
	}
	end := strings.Index(msg[start+1:], `"`)
	if end == -1 {
		return ""
	}
	return msg[start+1 : start+1+end]
}
