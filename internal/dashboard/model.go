package dashboard

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wavefnx/roller/internal/tracker"
	"github.com/wavefnx/roller/internal/ui"
)

// Model is the Bubble Tea model for the dashboard. It never changes the
// tracker state itself: keys go to the loop through KeyInput and the view
// shows whatever snapshot the loop sent last.
type Model struct {
	table    table.Model
	help     help.Model
	keys     KeyMap
	input    *KeyInput
	cancel   context.CancelFunc
	endpoint string

	snapshot    tracker.Snapshot
	hasSnapshot bool

	width  int
	height int

	done     bool
	err      error
	forced   bool
	quitting bool
}

// NewModel creates a dashboard model that forwards keys to input.
// cancel is called on ctrl+c.
func NewModel(input *KeyInput, cancel context.CancelFunc, endpoint string) Model {
	t := table.New(
		table.WithColumns(columns(tracker.ByGps, 0)),
		table.WithFocused(true),
	)
	t.SetStyles(ui.TableStyles())

	return Model{
		table:    t,
		help:     help.New(),
		keys:     DefaultKeyMap,
		input:    input,
		cancel:   cancel,
		endpoint: endpoint,
	}
}

// Init returns the initial command for the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.relayout()
		m.resize()
		return m, nil

	case SnapshotMsg:
		m.snapshot = msg.Snapshot
		m.hasSnapshot = true
		m.relayout()
		m.resize()
		return m, nil

	case loopDoneMsg:
		m.done = true
		m.err = msg.err
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		if m.cancel != nil {
			m.cancel()
		}
		m.forced = true
		m.quitting = true
		return m, tea.Quit
	}

	k, ok := m.keys.Translate(msg)
	if !ok {
		return m, nil
	}
	if m.done {
		// Nobody is polling any more.
		if k == tracker.KeyQuit {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}
	if m.input != nil {
		m.input.Push(k)
	}
	return m, nil
}

// relayout rebuilds columns and rows for the current width and snapshot.
// Rows are cleared first: the table renders on every setter and a row
// wider than the columns would index past them.
func (m *Model) relayout() {
	cols := columns(m.snapshot.Strategy, m.width)
	m.table.SetRows(nil)
	m.table.SetColumns(cols)
	m.table.SetRows(rows(m.snapshot, len(cols)))
	m.table.SetCursor(m.snapshot.Cursor)
}

// resize fits the table to the terminal height.
func (m *Model) resize() {
	if m.width > 0 {
		m.table.SetWidth(m.width - 2)
	}
	h := len(m.snapshot.Networks) + 1
	if m.height > 0 {
		h = max(2, m.height-chrome-2)
	}
	m.table.SetHeight(h)
}

// Snapshot returns the last snapshot received.
func (m Model) Snapshot() tracker.Snapshot {
	return m.snapshot
}

// Err returns the loop error, if the loop has finished.
func (m Model) Err() error {
	return m.err
}

// Forced reports whether the user left with ctrl+c.
func (m Model) Forced() bool {
	return m.forced
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder

	sb.WriteString(m.renderHeader())
	sb.WriteString("\n")
	sb.WriteString(m.renderStatus())
	sb.WriteString("\n")
	sb.WriteString(tableBoxStyle.Render(m.table.View()))

	if m.height == 0 || ShowFooter(m.height) {
		sb.WriteString("\n")
		sb.WriteString(m.help.View(m.keys))
	}

	return sb.String()
}

// renderHeader renders the title line.
func (m Model) renderHeader() string {
	indicator := liveStyle.Render(ui.SymbolLive + " live")
	if m.done {
		indicator = endedStyle.Render(ui.SymbolFail + " ended")
	} else if !m.hasSnapshot {
		indicator = endpointStyle.Render(ui.SymbolPending + " connecting")
	}

	header := titleStyle.Render("roller") + " " + indicator
	if m.endpoint != "" && GetLayoutMode(m.width) != LayoutMinimal {
		header += " " + endpointStyle.Render(m.endpoint)
	}
	return header
}

// renderStatus renders network count, sort order and event counters.
func (m Model) renderStatus() string {
	s := m.snapshot
	sep := separatorStyle.Render(" | ")

	parts := []string{
		fmt.Sprintf("%d networks", len(s.Networks)),
		strategyStyle.Render("sorted by " + s.Strategy.Label()),
		statsStyle.Render(fmt.Sprintf("%d updates", s.Stats.Applied)),
	}
	if s.Stats.Dropped > 0 {
		parts = append(parts, droppedStyle.Render(fmt.Sprintf("%d dropped", s.Stats.Dropped)))
	}
	if s.Stats.ParseFailures > 0 {
		parts = append(parts, droppedStyle.Render(fmt.Sprintf("%d bad fields", s.Stats.ParseFailures)))
	}
	return strings.Join(parts, sep)
}
