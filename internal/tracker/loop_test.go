package tracker

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wavefnx/roller/internal/logger"
)

// fakeStream replays events, then returns err (io.EOF if unset).
type fakeStream struct {
	events []Event
	err    error
	calls  int
}

func (s *fakeStream) Next(ctx context.Context) (Event, error) {
	s.calls++
	if len(s.events) == 0 {
		if s.err != nil {
			return Event{}, s.err
		}
		return Event{}, io.EOF
	}
	ev := s.events[0]
	s.events = s.events[1:]
	return ev, nil
}

// fakeInput returns one scripted poll result per call, then nothing.
type fakeInput struct {
	keys     []Key
	err      error
	timeouts []time.Duration
}

func (in *fakeInput) Poll(timeout time.Duration) (Key, bool, error) {
	in.timeouts = append(in.timeouts, timeout)
	if in.err != nil {
		return KeyNone, false, in.err
	}
	if len(in.keys) == 0 {
		return KeyNone, false, nil
	}
	k := in.keys[0]
	in.keys = in.keys[1:]
	return k, true, nil
}

type fakeRenderer struct {
	snapshots []Snapshot
	failAt    int
}

func (r *fakeRenderer) Render(s Snapshot) error {
	r.snapshots = append(r.snapshots, s)
	if r.failAt > 0 && len(r.snapshots) == r.failAt {
		return errors.New("render failed")
	}
	return nil
}

func (r *fakeRenderer) last() Snapshot {
	return r.snapshots[len(r.snapshots)-1]
}

func TestKey_String(t *testing.T) {
	assert.Equal(t, "up", KeyUp.String())
	assert.Equal(t, "down", KeyDown.String())
	assert.Equal(t, "sort-gps", KeySortGps.String())
	assert.Equal(t, "sort-tps", KeySortTps.String())
	assert.Equal(t, "sort-dps", KeySortDps.String())
	assert.Equal(t, "quit", KeyQuit.String())
	assert.Equal(t, "none", KeyNone.String())
}

func TestLoopState_String(t *testing.T) {
	assert.Equal(t, "running", LoopRunning.String())
	assert.Equal(t, "terminating", LoopTerminating.String())
	assert.Equal(t, "unknown", LoopState(7).String())
}

func TestLoop_RendersBeforeFirstEvent(t *testing.T) {
	r := &fakeRenderer{}
	l := NewLoop(NewState(testNetworks("a")), &fakeStream{}, &fakeInput{}, r)

	require.NoError(t, l.Run(context.Background()))

	require.Len(t, r.snapshots, 1)
	assert.Nil(t, r.snapshots[0].Networks[0].Metrics)
}

func TestLoop_EndOfStreamReturnsNil(t *testing.T) {
	log := logger.NewBufferLogger()
	stream := &fakeStream{events: []Event{
		{Network: "a", Data: payload(1, 1, 1, 1)},
		{Network: "b", Data: payload(2, 2, 2, 2)},
	}}
	r := &fakeRenderer{}
	l := NewLoop(NewState(testNetworks("a", "b")), stream, &fakeInput{}, r, WithLogger(log))

	assert.Equal(t, LoopRunning, l.State())
	require.NoError(t, l.Run(context.Background()))

	assert.Equal(t, LoopTerminating, l.State())
	assert.Equal(t, 3, stream.calls)
	assert.Len(t, r.snapshots, 3, "initial render plus one per event")
	assert.Equal(t, []string{"b", "a"}, names(r.last().Networks))
	assert.True(t, log.HasLevel("info"))
}

func TestLoop_StreamErrorPropagates(t *testing.T) {
	boom := errors.New("connection reset")
	log := logger.NewBufferLogger()
	l := NewLoop(NewState(testNetworks("a")), &fakeStream{err: boom}, &fakeInput{}, &fakeRenderer{}, WithLogger(log))

	err := l.Run(context.Background())

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, LoopTerminating, l.State())
	assert.True(t, log.HasLevel("error"))
}

func TestLoop_Quit(t *testing.T) {
	stream := &fakeStream{events: []Event{
		{Network: "a", Data: payload(1, 1, 1, 1)},
		{Network: "a", Data: payload(2, 1, 1, 1)},
	}}
	r := &fakeRenderer{}
	l := NewLoop(NewState(testNetworks("a")), stream, &fakeInput{keys: []Key{KeyQuit}}, r)

	require.NoError(t, l.Run(context.Background()))

	assert.Equal(t, 1, stream.calls, "no reads after quit")
	assert.Len(t, r.snapshots, 2)
	assert.Equal(t, LoopTerminating, l.State())
}

func TestLoop_SortKeyRerenders(t *testing.T) {
	stream := &fakeStream{events: []Event{
		{Network: "x", Data: payload(1, 1, 9, 0)},
		{Network: "y", Data: payload(1, 9, 1, 0)},
	}}
	r := &fakeRenderer{}
	in := &fakeInput{keys: []Key{KeyNone, KeySortTps}}
	l := NewLoop(NewState(testNetworks("x", "y")), stream, in, r)

	require.NoError(t, l.Run(context.Background()))

	// initial, event x, event y, after sort-tps
	require.Len(t, r.snapshots, 4)
	assert.Equal(t, ByGps, r.snapshots[2].Strategy)
	assert.Equal(t, []string{"x", "y"}, names(r.snapshots[2].Networks))
	assert.Equal(t, ByTps, r.snapshots[3].Strategy)
	assert.Equal(t, []string{"y", "x"}, names(r.snapshots[3].Networks))
}

func TestLoop_UnboundKeyDoesNotRender(t *testing.T) {
	stream := &fakeStream{events: []Event{{Network: "a", Data: payload(1, 1, 1, 1)}}}
	r := &fakeRenderer{}
	l := NewLoop(NewState(testNetworks("a")), stream, &fakeInput{keys: []Key{KeyNone}}, r)

	require.NoError(t, l.Run(context.Background()))

	assert.Len(t, r.snapshots, 2)
}

func TestLoop_OneKeyPerIteration(t *testing.T) {
	stream := &fakeStream{events: []Event{
		{Network: "a", Data: payload(1, 1, 1, 1)},
		{Network: "b", Data: payload(1, 1, 1, 1)},
	}}
	r := &fakeRenderer{}
	in := &fakeInput{keys: []Key{KeyDown, KeyDown, KeyDown}}
	l := NewLoop(NewState(testNetworks("a", "b", "c")), stream, in, r)

	require.NoError(t, l.Run(context.Background()))

	assert.Len(t, in.keys, 1, "third key is never consumed")
	assert.Equal(t, 2, r.last().Cursor)
}

func TestLoop_CursorKeys(t *testing.T) {
	stream := &fakeStream{events: []Event{
		{Network: "a", Data: payload(1, 1, 1, 1)},
		{Network: "a", Data: payload(2, 1, 1, 1)},
		{Network: "a", Data: payload(3, 1, 1, 1)},
	}}
	r := &fakeRenderer{}
	in := &fakeInput{keys: []Key{KeyDown, KeyDown, KeyUp}}
	l := NewLoop(NewState(testNetworks("a", "b")), stream, in, r)

	require.NoError(t, l.Run(context.Background()))

	assert.Equal(t, 0, r.last().Cursor)
	assert.Equal(t, 0, l.state.Cursor())
}

func TestLoop_DroppedEventIsLogged(t *testing.T) {
	t.Setenv(logger.DebugEnvVar, "")
	log := logger.NewBufferLogger()
	stream := &fakeStream{events: []Event{{Network: "ghost", Data: "{}"}}}
	st := NewState(testNetworks("a"))
	l := NewLoop(st, stream, &fakeInput{}, &fakeRenderer{}, WithLogger(log))

	require.NoError(t, l.Run(context.Background()))

	assert.True(t, log.HasLevel("debug"))
	assert.Equal(t, uint64(1), st.Stats().Dropped)
}

func TestLoop_RenderErrorStops(t *testing.T) {
	stream := &fakeStream{events: []Event{{Network: "a", Data: payload(1, 1, 1, 1)}}}

	t.Run("initial render", func(t *testing.T) {
		l := NewLoop(NewState(testNetworks("a")), stream, &fakeInput{}, &fakeRenderer{failAt: 1})
		assert.EqualError(t, l.Run(context.Background()), "render failed")
	})

	t.Run("render after event", func(t *testing.T) {
		s := &fakeStream{events: []Event{{Network: "a", Data: payload(1, 1, 1, 1)}}}
		l := NewLoop(NewState(testNetworks("a")), s, &fakeInput{}, &fakeRenderer{failAt: 2})
		assert.EqualError(t, l.Run(context.Background()), "render failed")
	})
}

func TestLoop_PollErrorStops(t *testing.T) {
	stream := &fakeStream{events: []Event{{Network: "a", Data: payload(1, 1, 1, 1)}}}
	l := NewLoop(NewState(testNetworks("a")), stream, &fakeInput{err: errors.New("tty closed")}, &fakeRenderer{})

	assert.EqualError(t, l.Run(context.Background()), "tty closed")
}

func TestLoop_Interval(t *testing.T) {
	tests := []struct {
		name   string
		opts   []LoopOption
		expect time.Duration
	}{
		{name: "default", expect: DefaultInterval},
		{name: "custom", opts: []LoopOption{WithInterval(250 * time.Millisecond)}, expect: 250 * time.Millisecond},
		{name: "zero ignored", opts: []LoopOption{WithInterval(0)}, expect: DefaultInterval},
		{name: "negative ignored", opts: []LoopOption{WithInterval(-time.Second)}, expect: DefaultInterval},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stream := &fakeStream{events: []Event{{Network: "a", Data: "{}"}}}
			in := &fakeInput{}
			l := NewLoop(NewState(testNetworks("a")), stream, in, &fakeRenderer{}, tt.opts...)

			require.NoError(t, l.Run(context.Background()))
			assert.Equal(t, []time.Duration{tt.expect}, in.timeouts)
		})
	}
}

func TestLoop_NilLoggerIgnored(t *testing.T) {
	l := NewLoop(NewState(nil), &fakeStream{}, &fakeInput{}, &fakeRenderer{}, WithLogger(nil))
	assert.NotNil(t, l.log)
}
