package dashboard

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/wavefnx/roller/internal/ui"
)

// Layout breakpoints for responsive design
const (
	BreakpointCompact  = 80
	BreakpointStandard = 120
)

// Height breakpoints
const (
	HeightMinimal = 12
)

// LayoutMode represents the responsive layout mode based on terminal size.
type LayoutMode int

const (
	LayoutMinimal LayoutMode = iota
	LayoutCompact
	LayoutStandard
)

// chrome is the number of lines used by the header and footer.
const chrome = 4

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ui.ColorNeonPink)

	endpointStyle = lipgloss.NewStyle().
			Foreground(ui.ColorMuted)

	strategyStyle = lipgloss.NewStyle().
			Foreground(ui.ColorNeonCyan)

	statsStyle = lipgloss.NewStyle().
			Foreground(ui.ColorSecondary)

	droppedStyle = lipgloss.NewStyle().
			Foreground(ui.ColorWarning)

	separatorStyle = lipgloss.NewStyle().
			Foreground(ui.ColorMuted)

	liveStyle = lipgloss.NewStyle().
			Foreground(ui.ColorSuccess)

	endedStyle = lipgloss.NewStyle().
			Foreground(ui.ColorError)

	tableBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ui.ColorGlassBorder)
)

// GetLayoutMode returns the layout mode based on terminal width.
func GetLayoutMode(width int) LayoutMode {
	switch {
	case width >= BreakpointStandard:
		return LayoutStandard
	case width >= BreakpointCompact:
		return LayoutCompact
	default:
		return LayoutMinimal
	}
}

// ShowFooter returns true if the terminal is tall enough for the footer.
func ShowFooter(height int) bool {
	return height >= HeightMinimal
}
