// Package cli implements the roller command-line interface.
//
// Commands are Cobra commands that load configuration and then delegate
// to the client, dashboard and config packages:
//
//	roller              - Live metrics dashboard (default)
//	roller networks     - Print the tracked networks (table, --json, --yaml)
//	roller init         - Create .roller.yaml
//	roller version      - Print build information
//	roller completion   - Shell completion scripts
//
// # Flag Handling
//
// Global flags (--config, --interval-ms, --api-endpoint, --sort, --no-color)
// are persistent on the root command. Configuration resolves in the order
// default, file, ROLLER_* environment, then flags; ApplyOverrides only
// touches values whose flag was actually passed.
package cli
