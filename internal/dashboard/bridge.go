package dashboard

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wavefnx/roller/internal/tracker"
)

// sender is the part of *tea.Program the bridge needs.
type sender interface {
	Send(msg tea.Msg)
}

// Bridge implements tracker.Renderer by forwarding snapshots to the Bubble
// Tea program via program.Send(). This is goroutine-safe.
type Bridge struct {
	program sender
}

var _ tracker.Renderer = (*Bridge)(nil)

// NewBridge creates a new bridge that forwards snapshots to the given program.
func NewBridge(program *tea.Program) *Bridge {
	return &Bridge{program: program}
}

// Render forwards a snapshot to the TUI. Once the program has exited,
// Send returns immediately and the snapshot is discarded.
func (b *Bridge) Render(s tracker.Snapshot) error {
	b.program.Send(SnapshotMsg{Snapshot: s})
	return nil
}

// LoopDone signals that the loop has finished.
func (b *Bridge) LoopDone(err error) {
	b.program.Send(loopDoneMsg{err: err})
}
