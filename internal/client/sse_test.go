package client

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanAll(t *testing.T, input string) []sseEvent {
	t.Helper()
	s := newSSEScanner(strings.NewReader(input))
	var events []sseEvent
	for s.Next() {
		events = append(events, s.Event())
	}
	require.NoError(t, s.Err())
	return events
}

func TestSSEScanner(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect []sseEvent
	}{
		{
			name:   "single event",
			input:  "event: base\ndata: {\"tps\":\"1\"}\n\n",
			expect: []sseEvent{{Type: "base", Data: `{"tps":"1"}`}},
		},
		{
			name:  "two events",
			input: "event: a\ndata: 1\n\nevent: b\ndata: 2\n\n",
			expect: []sseEvent{
				{Type: "a", Data: "1"},
				{Type: "b", Data: "2"},
			},
		},
		{
			name:   "multi-line data is joined",
			input:  "event: a\ndata: line1\ndata: line2\n\n",
			expect: []sseEvent{{Type: "a", Data: "line1\nline2"}},
		},
		{
			name:   "no space after colon",
			input:  "event:a\ndata:x\n\n",
			expect: []sseEvent{{Type: "a", Data: "x"}},
		},
		{
			name:   "crlf line endings",
			input:  "event: a\r\ndata: x\r\n\r\n",
			expect: []sseEvent{{Type: "a", Data: "x"}},
		},
		{
			name:   "comments id and retry are ignored",
			input:  ": keepalive\nid: 7\nretry: 1000\nevent: a\ndata: x\n\n",
			expect: []sseEvent{{Type: "a", Data: "x"}},
		},
		{
			name:   "event without data is skipped",
			input:  "event: lonely\n\nevent: a\ndata: x\n\n",
			expect: []sseEvent{{Type: "a", Data: "x"}},
		},
		{
			name:   "untyped event keeps empty type",
			input:  "data: x\n\n",
			expect: []sseEvent{{Data: "x"}},
		},
		{
			name:   "final event without trailing blank line",
			input:  "event: a\ndata: x",
			expect: []sseEvent{{Type: "a", Data: "x"}},
		},
		{
			name:   "bare data field is an empty line",
			input:  "event: a\ndata\ndata: x\n\n",
			expect: []sseEvent{{Type: "a", Data: "\nx"}},
		},
		{
			name:   "colons after the first stay in the value",
			input:  "event: a\ndata: {\"k\":\"v\"}\n\n",
			expect: []sseEvent{{Type: "a", Data: `{"k":"v"}`}},
		},
		{
			name:   "blank lines between events",
			input:  "\n\nevent: a\ndata: x\n\n\n\n",
			expect: []sseEvent{{Type: "a", Data: "x"}},
		},
		{
			name:   "empty input",
			input:  "",
			expect: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, scanAll(t, tt.input))
		})
	}
}

type failingReader struct {
	data string
	err  error
}

func (r *failingReader) Read(p []byte) (int, error) {
	if r.data == "" {
		return 0, r.err
	}
	n := copy(p, r.data)
	r.data = r.data[n:]
	return n, nil
}

func TestSSEScanner_ReadError(t *testing.T) {
	boom := errors.New("connection reset")
	s := newSSEScanner(&failingReader{data: "event: a\ndata: 1\n\nevent: b\n", err: boom})

	require.True(t, s.Next())
	assert.Equal(t, sseEvent{Type: "a", Data: "1"}, s.Event())

	assert.False(t, s.Next())
	assert.ErrorIs(t, s.Err(), boom)
	assert.False(t, s.Next(), "stays stopped after an error")
}

func TestSSEScanner_LongLine(t *testing.T) {
	payload := strings.Repeat("x", 200*1024)

	events := scanAll(t, "event: big\ndata: "+payload+"\n\n")

	require.Len(t, events, 1)
	assert.Equal(t, "big", events[0].Type)
	assert.Len(t, events[0].Data, len(payload))
}

func TestSSEScanner_EOFIsNotAnError(t *testing.T) {
	s := newSSEScanner(&failingReader{err: io.EOF})

	assert.False(t, s.Next())
	assert.NoError(t, s.Err())
}
