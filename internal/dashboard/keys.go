package dashboard

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wavefnx/roller/internal/tracker"
)

// KeyMap defines the dashboard key bindings.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	SortGps key.Binding
	SortTps key.Binding
	SortDps key.Binding
	Quit    key.Binding

	// ForceQuit leaves immediately, even while the stream is silent.
	ForceQuit key.Binding
}

// DefaultKeyMap is the built-in binding set. "k" sorts by data rate, so
// there is no vim-style navigation.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "down"),
	),
	SortGps: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "gas/s"),
	),
	SortTps: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "txs/s"),
	),
	SortDps: key.NewBinding(
		key.WithKeys("k", "d"),
		key.WithHelp("k/d", "kb/s"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	ForceQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "force quit"),
	),
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.SortGps, k.SortTps, k.SortDps, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.SortGps, k.SortTps, k.SortDps},
		{k.Quit, k.ForceQuit},
	}
}

// Translate maps a key press to a loop key. ok is false for keys the loop
// does not handle (including ForceQuit).
func (k KeyMap) Translate(msg tea.KeyMsg) (tracker.Key, bool) {
	switch {
	case key.Matches(msg, k.Up):
		return tracker.KeyUp, true
	case key.Matches(msg, k.Down):
		return tracker.KeyDown, true
	case key.Matches(msg, k.SortGps):
		return tracker.KeySortGps, true
	case key.Matches(msg, k.SortTps):
		return tracker.KeySortTps, true
	case key.Matches(msg, k.SortDps):
		return tracker.KeySortDps, true
	case key.Matches(msg, k.Quit):
		return tracker.KeyQuit, true
	}
	return tracker.KeyNone, false
}
