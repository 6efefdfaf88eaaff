package tracker

// Event is one item from the stream: the network it is about and its raw
// JSON payload.
type Event struct {
	Network string
	Data    string
}

// Stats counts what happened to incoming events.
type Stats struct {
	Applied       uint64 // events merged into a known network
	Dropped       uint64 // events for networks not in the registry
	ParseFailures uint64 // payload fields that fell back to 0
}

// Snapshot is a read-only copy of State for rendering.
type Snapshot struct {
	Networks []Network
	Cursor   int
	Strategy Strategy
	Stats    Stats
}

// StrategyName returns the name of the active sort strategy.
func (s Snapshot) StrategyName() string {
	return s.Strategy.String()
}

// Selected returns the network under the cursor, if any.
func (s Snapshot) Selected() (Network, bool) {
	if s.Cursor < 0 || s.Cursor >= len(s.Networks) {
		return Network{}, false
	}
	return s.Networks[s.Cursor], true
}

// State owns the registry, the cursor and the sort strategy.
// It is not safe for concurrent use; the Loop that drives it is its only user.
type State struct {
	registry *Registry
	cursor   Cursor
	strategy Strategy
	stats    Stats
	observer ParseObserver
}

// StateOption configures a State.
type StateOption func(*State)

// WithStrategy sets the initial sort strategy. The default is ByGps.
func WithStrategy(s Strategy) StateOption {
	return func(st *State) {
		st.strategy = s
	}
}

// WithParseObserver forwards payload parse failures to o, in addition to
// counting them in Stats.
func WithParseObserver(o ParseObserver) StateOption {
	return func(st *State) {
		st.observer = o
	}
}

// NewState builds the state for the initial set of networks.
// The input order is kept until the first sort.
func NewState(networks []Network, opts ...StateOption) *State {
	st := &State{strategy: ByGps}
	for _, opt := range opts {
		opt(st)
	}
	st.registry = NewRegistry(networks, ParseObserverFunc(st.countParseFailure))
	return st
}

func (st *State) countParseFailure(network, field string, err error) {
	st.stats.ParseFailures++
	if st.observer != nil {
		st.observer.ParseFailure(network, field, err)
	}
}

// Apply merges an event and resorts. Returns false if the event was dropped
// because no network has that name.
func (st *State) Apply(ev Event) bool {
	ok := st.registry.ApplyUpdate(ev.Network, ev.Data)
	if ok {
		st.stats.Applied++
	} else {
		st.stats.Dropped++
	}
	st.registry.Sort(st.strategy)
	return ok
}

// SetStrategy switches the sort strategy and resorts immediately.
func (st *State) SetStrategy(s Strategy) {
	st.strategy = s
	st.registry.Sort(s)
}

// Strategy returns the active sort strategy.
func (st *State) Strategy() Strategy {
	return st.strategy
}

// MoveUp moves the cursor one row up.
func (st *State) MoveUp() {
	st.cursor.MoveUp(st.registry.Len())
}

// MoveDown moves the cursor one row down.
func (st *State) MoveDown() {
	st.cursor.MoveDown(st.registry.Len())
}

// Cursor returns the cursor position.
func (st *State) Cursor() int {
	return st.cursor.Index()
}

// Registry returns the underlying registry.
func (st *State) Registry() *Registry {
	return st.registry
}

// Stats returns the event counters.
func (st *State) Stats() Stats {
	return st.stats
}

// Snapshot copies the current state for a renderer.
func (st *State) Snapshot() Snapshot {
	return Snapshot{
		Networks: st.registry.Networks(),
		Cursor:   st.cursor.Index(),
		Strategy: st.strategy,
		Stats:    st.stats,
	}
}
