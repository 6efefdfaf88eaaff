// Package dashboard provides the interactive Bubble Tea TUI for live rollup
// metrics. The tracker loop runs in a background goroutine and owns all
// state; the TUI only displays snapshots and feeds key presses back.
package dashboard

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	rollerrors "github.com/wavefnx/roller/internal/errors"
	"github.com/wavefnx/roller/internal/logger"
	"github.com/wavefnx/roller/internal/tracker"
)

// Options configures the dashboard.
type Options struct {
	// Networks is the initial registry, in display order until the first sort.
	Networks []tracker.Network
	// Stream yields events. If it is an io.Closer it is closed on exit.
	Stream tracker.Stream
	// Interval is the key poll timeout per loop iteration.
	Interval time.Duration
	// Strategy is the initial sort order.
	Strategy tracker.Strategy
	// Endpoint is shown in the header.
	Endpoint string
	// Logger receives loop and parse diagnostics.
	Logger logger.Logger
}

// Run starts the dashboard TUI and the tracker loop.
// The loop runs in a background goroutine while the TUI runs in the main thread.
// It returns when the loop finishes or the user force-quits; a user quit
// and a clean end of stream return nil.
func Run(ctx context.Context, opts Options) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return rollerrors.New(rollerrors.ErrTerminal,
			"The dashboard needs an interactive terminal",
			"Run `roller networks` for plain output.")
	}

	log := opts.Logger
	if log == nil {
		log = logger.Noop()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	input := NewKeyInput(DefaultInputBuffer)
	model := NewModel(input, cancel, opts.Endpoint)
	program := tea.NewProgram(model, tea.WithAltScreen())
	bridge := NewBridge(program)

	state := tracker.NewState(opts.Networks,
		tracker.WithStrategy(opts.Strategy),
		tracker.WithParseObserver(tracker.ParseObserverFunc(func(network, field string, err error) {
			log.Debug("%s: bad %s field: %v", network, field, err)
		})),
	)
	loop := tracker.NewLoop(state, opts.Stream, input, bridge,
		tracker.WithInterval(opts.Interval),
		tracker.WithLogger(log),
	)

	loopErr := make(chan error, 1)
	go func() {
		err := loop.Run(ctx)
		loopErr <- err
		bridge.LoopDone(err)
	}()

	final, runErr := program.Run()

	// Unblock a loop still waiting on the stream.
	cancel()
	if c, ok := opts.Stream.(io.Closer); ok {
		c.Close()
	}
	err := <-loopErr

	if runErr != nil {
		return rollerrors.WrapWithCode(runErr, rollerrors.ErrTerminal,
			"The dashboard stopped unexpectedly",
			"Check that your terminal supports full-screen programs.")
	}
	if m, ok := final.(Model); ok && m.Forced() {
		log.Debug("force quit after %d updates", state.Stats().Applied)
		return nil
	}
	return loopResult(err)
}

// loopResult maps the loop's return value to the command's result.
func loopResult(err error) error {
	if err == nil || errors.Is(err, context.Canceled) {
		return nil
	}
	if rollerrors.CodeOf(err) != "" {
		return err
	}
	return rollerrors.WrapWithCode(err, rollerrors.ErrStream,
		"The event stream failed",
		"Check your network connection and restart roller.")
}
