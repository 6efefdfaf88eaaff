package cli

import (
	"context"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wavefnx/roller/internal/client"
	"github.com/wavefnx/roller/internal/config"
	"github.com/wavefnx/roller/internal/dashboard"
	"github.com/wavefnx/roller/internal/errors"
	"github.com/wavefnx/roller/internal/logger"
	"github.com/wavefnx/roller/internal/tracker"
	"github.com/wavefnx/roller/internal/ui"
)

// debugLogFile receives log output while the dashboard owns the screen.
const debugLogFile = "roller-debug.log"

// dashboardCommand fetches metadata, connects to the event stream and runs
// the live table until the user quits or the stream ends.
func dashboardCommand(ctx context.Context, cfg *config.Config) error {
	diag := logger.NewEnvLogger("[roller]")
	c := newClient(cfg, diag)

	networks, err := fetchNetworks(ctx, c, true)
	if err != nil {
		return err
	}
	if len(networks) == 0 {
		ui.PrintWarning("No networks reported by " + c.BaseURL() + "; the table will stay empty")
	}

	stream, err := c.OpenStream(ctx)
	if err != nil {
		return err
	}
	defer stream.Close()

	restore, err := redirectLog()
	if err != nil {
		return err
	}
	defer restore()

	return dashboard.Run(ctx, dashboard.Options{
		Networks: networks,
		Stream:   stream,
		Interval: cfg.Interval,
		Strategy: cfg.Strategy(),
		Endpoint: c.BaseURL(),
		Logger:   diag,
	})
}

// redirectLog keeps log output off the screen while the dashboard runs:
// into debugLogFile when ROLLER_DEBUG is set, otherwise nowhere. The
// returned func puts the previous writer back.
func redirectLog() (func(), error) {
	prev := log.Writer()
	prevPrefix := log.Prefix()

	if !logger.DebugEnabled() {
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(prev) }, nil
	}

	f, err := tea.LogToFile(debugLogFile, "roller")
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrTerminal,
			"Couldn't open the debug log",
			"Unset "+logger.DebugEnvVar+" or check write permissions in this directory.")
	}
	return func() {
		log.SetOutput(prev)
		log.SetPrefix(prevPrefix)
		f.Close()
	}, nil
}

func newClient(cfg *config.Config, diag logger.Logger) *client.Client {
	return client.New(cfg.APIEndpoint,
		client.WithTimeout(cfg.RequestTimeout),
		client.WithLogger(diag),
	)
}

// fetchNetworks loads the network list, showing a spinner on stderr unless
// quiet output was asked for.
func fetchNetworks(ctx context.Context, c *client.Client, showSpinner bool) ([]tracker.Network, error) {
	if !showSpinner {
		return c.FetchNetworks(ctx)
	}

	spinner := ui.NewSpinner("Fetching networks from " + c.BaseURL())
	spinner.Start()

	networks, err := c.FetchNetworks(ctx)
	if err != nil {
		spinner.Fail()
		return nil, err
	}
	spinner.Success()
	return networks, nil
}
