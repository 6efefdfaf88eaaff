package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewState_Defaults(t *testing.T) {
	st := NewState(testNetworks("b", "a"))

	assert.Equal(t, ByGps, st.Strategy())
	assert.Equal(t, 0, st.Cursor())
	assert.Equal(t, Stats{}, st.Stats())
	assert.Equal(t, []string{"b", "a"}, st.Registry().Names(), "input order kept until the first sort")
}

func TestNewState_WithStrategy(t *testing.T) {
	st := NewState(testNetworks("a"), WithStrategy(ByDps))

	assert.Equal(t, ByDps, st.Strategy())
	assert.Equal(t, "dps", st.Snapshot().StrategyName())
}

func TestState_Stats(t *testing.T) {
	var forwarded []string
	st := NewState(testNetworks("a", "b"), WithParseObserver(ParseObserverFunc(func(network, field string, err error) {
		forwarded = append(forwarded, network+"."+field)
	})))

	st.Apply(Event{Network: "a", Data: payload(1, 1, 1, 1)})
	st.Apply(Event{Network: "b", Data: `{"blockNumber":2,"tps":"x","gps":"1","dps":"1"}`})
	st.Apply(Event{Network: "nope", Data: payload(1, 1, 1, 1)})
	st.Apply(Event{Network: "", Data: ""})

	assert.Equal(t, Stats{Applied: 2, Dropped: 2, ParseFailures: 1}, st.Stats())
	assert.Equal(t, []string{"b.tps"}, forwarded)
	assert.Equal(t, st.Stats(), st.Snapshot().Stats)
}

func TestState_ApplyResortsEvenWhenDropped(t *testing.T) {
	st := NewState(testNetworks("a", "b"))
	st.registry.ApplyUpdate("b", payload(1, 0, 10, 0))
	require.Equal(t, []string{"a", "b"}, st.Registry().Names(), "raw update does not sort")

	st.Apply(Event{Network: "unknown", Data: "{}"})

	assert.Equal(t, []string{"b", "a"}, st.Registry().Names())
}

func TestState_SnapshotIdempotent(t *testing.T) {
	st := NewState(testNetworks("a", "b", "c"))
	st.Apply(Event{Network: "b", Data: payload(5, 1, 2, 3)})
	st.MoveDown()

	first := st.Snapshot()
	second := st.Snapshot()

	assert.Equal(t, first, second)
}

func TestState_SnapshotIsACopy(t *testing.T) {
	st := NewState(testNetworks("a", "b"))
	snap := st.Snapshot()

	snap.Networks[0].Name = "changed"
	st.Apply(Event{Network: "b", Data: payload(1, 0, 9, 0)})

	assert.Equal(t, "changed", snap.Networks[0].Name)
	assert.Nil(t, snap.Networks[1].Metrics, "old snapshot does not see new metrics")
	assert.Equal(t, []string{"b", "a"}, st.Registry().Names())
}

func TestSnapshot_Selected(t *testing.T) {
	snap := Snapshot{Networks: testNetworks("x", "y"), Cursor: 1}
	n, ok := snap.Selected()
	require.True(t, ok)
	assert.Equal(t, "y", n.Name)

	_, ok = Snapshot{}.Selected()
	assert.False(t, ok)

	_, ok = Snapshot{Networks: testNetworks("x"), Cursor: 4}.Selected()
	assert.False(t, ok)
}

func TestState_MoveOnEmptyRegistry(t *testing.T) {
	st := NewState(nil)

	st.MoveDown()
	st.MoveUp()

	assert.Equal(t, 0, st.Cursor())
	_, ok := st.Snapshot().Selected()
	assert.False(t, ok)
}
