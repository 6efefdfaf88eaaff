// Package tracker keeps the live view of monitored networks in sync with the
// metrics event stream.
//
// The package has no I/O of its own. Everything it talks to is an interface:
//
//	Stream    - yields (network, payload) events in arrival order
//	Input     - yields at most one key per poll, with a timeout
//	Renderer  - receives a read-only Snapshot whenever the view changes
//
// # State
//
// State is the single value that owns the mutable data: the network
// Registry, the selection Cursor and the active sort Strategy. Loop is the
// only writer. Renderers only ever see copies produced by State.Snapshot.
//
// # Merging
//
// Registry.ApplyUpdate looks a network up by name and replaces its Metrics
// wholesale. Events for networks that were not part of the initial metadata
// are dropped without error. Payload fields that do not parse default to 0
// and are reported to the ParseObserver.
//
// # Sorting
//
// Networks are kept in descending order of the metric selected by the
// Strategy (gas/s, tx/s or data/s), using a stable sort so ties keep their
// previous relative order. Networks that have not reported yet sort as 0.
//
// The Cursor is a plain index. It does not follow a network when a resort
// moves it, so the highlighted row can change under a stationary cursor.
//
// # Event Loop
//
// Loop.Run alternates between the two suspension points:
//
//  1. Stream.Next blocks until the next event arrives
//  2. the event is merged, the registry resorted, and a Snapshot rendered
//  3. Input.Poll waits up to the configured interval (default 100ms)
//  4. a key, if any, moves the cursor, switches strategy or quits
//
// The loop ends when the quit key is pressed, when the stream ends, or when
// the stream fails. It never reconnects.
package tracker
