package client

import (
	"bufio"
	"io"
	"strings"
)

// Framing follows lib/llm/sse.go of the Bureau project
// (Copyright 2026 The Bureau Authors, Apache-2.0).

// maxSSELine bounds a single line of the stream.
const maxSSELine = 1 << 20

// sseEvent is one Server-Sent Event. Type is empty when the event carried
// no "event:" field.
type sseEvent struct {
	Type string
	Data string
}

// sseFrame accumulates the fields of the event being read.
type sseFrame struct {
	typ  string
	data []string
}

// apply records one "field: value" line. Only data and event matter here;
// id, retry and unknown fields are dropped.
func (f *sseFrame) apply(line string) {
	if strings.HasPrefix(line, ":") {
		return
	}
	name, value, found := strings.Cut(line, ":")
	if found {
		value = strings.TrimPrefix(value, " ")
	}
	switch name {
	case "data":
		f.data = append(f.data, value)
	case "event":
		f.typ = value
	}
}

// flush ends the frame. It yields an event only if data was seen, and
// resets the frame either way.
func (f *sseFrame) flush() (sseEvent, bool) {
	defer func() { *f = sseFrame{} }()
	if f.data == nil {
		return sseEvent{}, false
	}
	return sseEvent{Type: f.typ, Data: strings.Join(f.data, "\n")}, true
}

// sseScanner reads Server-Sent Events from an io.Reader. Events end at a
// blank line or at end of input.
type sseScanner struct {
	lines   *bufio.Scanner
	frame   sseFrame
	current sseEvent
	done    bool
}

func newSSEScanner(r io.Reader) *sseScanner {
	lines := bufio.NewScanner(r)
	lines.Buffer(make([]byte, 0, 64*1024), maxSSELine)
	return &sseScanner{lines: lines}
}

// Next advances to the next event. It returns false at end of input or on
// a read error; Err tells them apart.
func (s *sseScanner) Next() bool {
	s.current = sseEvent{}
	if s.done {
		return false
	}

	for s.lines.Scan() {
		line := strings.TrimSuffix(s.lines.Text(), "\r")
		if line != "" {
			s.frame.apply(line)
			continue
		}
		if ev, ok := s.frame.flush(); ok {
			s.current = ev
			return true
		}
	}

	s.done = true
	if s.lines.Err() != nil {
		return false
	}
	// Final event without a trailing blank line.
	ev, ok := s.frame.flush()
	s.current = ev
	return ok
}

// Event returns the event read by the last successful Next.
func (s *sseScanner) Event() sseEvent {
	return s.current
}

// Err returns the read error that stopped the scanner, or nil on a clean
// end of input.
func (s *sseScanner) Err() error {
	return s.lines.Err()
}
