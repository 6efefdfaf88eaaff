package cli

import (
	"github.com/spf13/cobra"

	"github.com/wavefnx/roller/internal/errors"
	"github.com/wavefnx/roller/internal/logger"
)

// Command-specific flags
var (
	networksJSON       bool
	networksYAML       bool
	initEndpointFlag   string
	initIntervalFlag   string
	initSortFlag       string
	initForce          bool
	initNonInteractive bool
)

// networksCmd prints the tracked networks without starting the dashboard
var networksCmd = &cobra.Command{
	Use:   "networks",
	Short: "List the tracked networks",
	Long: `Fetch the network metadata once and print it, sorted by label.

Works without a terminal, so it is the way to script against roller.

Examples:
  roller networks
  roller networks --json
  roller networks --yaml --api-endpoint http://localhost:8080`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := outputFormat(networksJSON, networksYAML)
		if err != nil {
			return err
		}
		machineMode = format == formatJSON

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		c := newClient(cfg, logger.NewEnvLogger("[roller]"))
		return Networks(cmd.Context(), c, NetworksOptions{
			Format:  format,
			Out:     cmd.OutOrStdout(),
			Spinner: format == formatTable,
		})
	},
}

// initCmd creates a new .roller.yaml configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a .roller.yaml config in the current directory",
	Long: `Create a .roller.yaml configuration file in the current directory.

Prompts for the API endpoint, poll interval and initial sort order.
Values can also come from flags or ROLLER_* environment variables;
with --non-interactive (or when CI is set) defaults fill the rest.

Examples:
  roller init
  roller init --endpoint http://localhost:8080 --sort tps
  roller init --non-interactive --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(InitOptions{
			Endpoint:       initEndpointFlag,
			Interval:       initIntervalFlag,
			Sort:           initSortFlag,
			Overwrite:      initForce,
			NonInteractive: initNonInteractive,
			Out:            cmd.OutOrStdout(),
		})
	},
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for roller.

Examples:
  # Bash
  roller completion bash > /etc/bash_completion.d/roller

  # Zsh
  roller completion zsh > "${fpath[1]}/_roller"

  # Fish
  roller completion fish > ~/.config/fish/completions/roller.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(out)
		case "zsh":
			return rootCmd.GenZshCompletion(out)
		case "fish":
			return rootCmd.GenFishCompletion(out, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(out)
		default:
			return errors.New(errors.ErrConfig,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

func init() {
	// networks command flags
	networksCmd.Flags().BoolVar(&networksJSON, "json", false, "print networks as JSON")
	networksCmd.Flags().BoolVar(&networksYAML, "yaml", false, "print networks as YAML")

	// init command flags
	initCmd.Flags().StringVar(&initEndpointFlag, "endpoint", "", "API endpoint to write")
	initCmd.Flags().StringVar(&initIntervalFlag, "interval", "", "poll interval to write (e.g., 100ms, 1s)")
	initCmd.Flags().StringVar(&initSortFlag, "sort-by", "", "initial sort order to write: gps, tps or dps")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")
	initCmd.Flags().BoolVar(&initNonInteractive, "non-interactive", false, "skip prompts and use defaults")

	rootCmd.AddCommand(networksCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
}
