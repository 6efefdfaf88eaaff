package tracker

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/wavefnx/roller/internal/logger"
)

// DefaultInterval is how long each iteration waits for a key.
const DefaultInterval = 100 * time.Millisecond

// Key is a user command decoded from the keyboard.
type Key int

const (
	KeyNone Key = iota // anything without a binding
	KeyUp
	KeyDown
	KeySortGps
	KeySortTps
	KeySortDps
	KeyQuit
)

// String returns a short name for the key, for logs.
func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeySortGps:
		return "sort-gps"
	case KeySortTps:
		return "sort-tps"
	case KeySortDps:
		return "sort-dps"
	case KeyQuit:
		return "quit"
	default:
		return "none"
	}
}

// Stream delivers events in arrival order. Next blocks until an event is
// available. It returns io.EOF once the stream has ended.
type Stream interface {
	Next(ctx context.Context) (Event, error)
}

// Input delivers key presses. Poll waits at most timeout and reports
// whether a key arrived.
type Input interface {
	Poll(timeout time.Duration) (Key, bool, error)
}

// Renderer displays snapshots. It must not keep references into the
// snapshot beyond what it copies.
type Renderer interface {
	Render(Snapshot) error
}

// LoopState is the lifecycle state of a Loop. A loop is running from
// creation until Run returns, and terminating afterwards.
type LoopState int

const (
	LoopRunning LoopState = iota
	LoopTerminating
)

// String returns a human-readable state name.
func (s LoopState) String() string {
	switch s {
	case LoopRunning:
		return "running"
	case LoopTerminating:
		return "terminating"
	default:
		return "unknown"
	}
}

// Loop drives a State from a Stream and an Input, rendering after every
// change. It runs on a single goroutine and owns the State while running.
type Loop struct {
	state    *State
	stream   Stream
	input    Input
	renderer Renderer
	interval time.Duration
	log      logger.Logger
	status   LoopState
}

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithInterval sets the input poll timeout. Non-positive values are ignored.
func WithInterval(d time.Duration) LoopOption {
	return func(l *Loop) {
		if d > 0 {
			l.interval = d
		}
	}
}

// WithLogger sets the loop's logger.
func WithLogger(log logger.Logger) LoopOption {
	return func(l *Loop) {
		if log != nil {
			l.log = log
		}
	}
}

// NewLoop creates a loop over the given collaborators.
func NewLoop(state *State, stream Stream, input Input, renderer Renderer, opts ...LoopOption) *Loop {
	l := &Loop{
		state:    state,
		stream:   stream,
		input:    input,
		renderer: renderer,
		interval: DefaultInterval,
		log:      logger.Noop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// State returns the loop's lifecycle state.
func (l *Loop) State() LoopState {
	return l.status
}

// Run processes events until the quit key is pressed or the stream ends.
// A clean end of stream or a quit returns nil. Stream, input and render
// errors are returned as is; nothing is retried.
//
// ctx is handed to the stream. The loop itself does not watch it.
func (l *Loop) Run(ctx context.Context) error {
	defer func() { l.status = LoopTerminating }()

	// Show the metadata before the first event arrives.
	if err := l.render(); err != nil {
		return err
	}

	for {
		ev, err := l.stream.Next(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				l.log.Info("event stream ended")
				return nil
			}
			l.log.Error("event stream failed: %v", err)
			return err
		}

		if !l.state.Apply(ev) {
			l.log.Debug("dropped event for unknown network %q", ev.Network)
		}
		if err := l.render(); err != nil {
			return err
		}

		key, ok, err := l.input.Poll(l.interval)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}

		quit, changed := l.handleKey(key)
		if quit {
			l.log.Debug("quit requested")
			return nil
		}
		if changed {
			if err := l.render(); err != nil {
				return err
			}
		}
	}
}

// handleKey applies one key to the state. It reports whether the loop
// should stop and whether the view changed.
func (l *Loop) handleKey(key Key) (quit bool, changed bool) {
	switch key {
	case KeyUp:
		l.state.MoveUp()
	case KeyDown:
		l.state.MoveDown()
	case KeySortGps:
		l.state.SetStrategy(ByGps)
	case KeySortTps:
		l.state.SetStrategy(ByTps)
	case KeySortDps:
		l.state.SetStrategy(ByDps)
	case KeyQuit:
		return true, false
	default:
		return false, false
	}
	return false, true
}

func (l *Loop) render() error {
	return l.renderer.Render(l.state.Snapshot())
}
