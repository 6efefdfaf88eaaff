package client

import (
	"context"
	"io"

	"github.com/wavefnx/roller/internal/errors"
	"github.com/wavefnx/roller/internal/logger"
	"github.com/wavefnx/roller/internal/tracker"
)

var _ tracker.Stream = (*Stream)(nil)

// Stream yields tracker events from an open SSE connection.
// It is not safe for concurrent use.
type Stream struct {
	body    io.ReadCloser
	scanner *sseScanner
	log     logger.Logger
}

func newStream(body io.ReadCloser, log logger.Logger) *Stream {
	return &Stream{
		body:    body,
		scanner: newSSEScanner(body),
		log:     log,
	}
}

// Next blocks until the next typed event. Events without an "event:" field
// are skipped. It returns io.EOF when the server closes the stream and an
// ErrStream error when reading fails.
func (s *Stream) Next(ctx context.Context) (tracker.Event, error) {
	for {
		if err := ctx.Err(); err != nil {
			return tracker.Event{}, errors.WrapWithCode(err, errors.ErrStream,
				"Event stream cancelled", "")
		}
		if !s.scanner.Next() {
			if err := s.scanner.Err(); err != nil {
				return tracker.Event{}, errors.WrapWithCode(err, errors.ErrStream,
					"Lost connection to the event stream",
					"Check your network connection and restart roller.")
			}
			return tracker.Event{}, io.EOF
		}

		ev := s.scanner.Event()
		if ev.Type == "" {
			s.log.Debug("skipping untyped event")
			continue
		}
		return tracker.Event{Network: ev.Type, Data: ev.Data}, nil
	}
}

// Close releases the connection.
func (s *Stream) Close() error {
	return s.body.Close()
}
