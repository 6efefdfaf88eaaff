package dashboard

import (
	"time"

	"github.com/wavefnx/roller/internal/tracker"
)

// DefaultInputBuffer is how many key presses may queue between loop polls.
const DefaultInputBuffer = 16

// KeyInput hands decoded key presses from the Bubble Tea program to the
// loop. Push never blocks; keys beyond the buffer are dropped.
type KeyInput struct {
	keys chan tracker.Key
}

var _ tracker.Input = (*KeyInput)(nil)

// NewKeyInput creates an input with room for size pending keys.
func NewKeyInput(size int) *KeyInput {
	if size <= 0 {
		size = DefaultInputBuffer
	}
	return &KeyInput{keys: make(chan tracker.Key, size)}
}

// Push queues a key. It reports false if the queue was full.
func (in *KeyInput) Push(k tracker.Key) bool {
	select {
	case in.keys <- k:
		return true
	default:
		return false
	}
}

// Poll waits up to timeout for one key.
func (in *KeyInput) Poll(timeout time.Duration) (tracker.Key, bool, error) {
	select {
	case k := <-in.keys:
		return k, true, nil
	default:
	}
	if timeout <= 0 {
		return tracker.KeyNone, false, nil
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case k := <-in.keys:
		return k, true, nil
	case <-timer.C:
		return tracker.KeyNone, false, nil
	}
}

// Pending returns the number of queued keys.
func (in *KeyInput) Pending() int {
	return len(in.keys)
}
