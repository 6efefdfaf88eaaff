package dashboard

import "github.com/wavefnx/roller/internal/tracker"

// SnapshotMsg carries a freshly rendered state from the loop.
type SnapshotMsg struct {
	Snapshot tracker.Snapshot
}

// loopDoneMsg signals the loop has returned.
type loopDoneMsg struct {
	err error
}
