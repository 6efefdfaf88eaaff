package ui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// TableStyle provides consistent styling for tables across the CLI.
type TableStyle struct {
	Header   lipgloss.Style
	Cell     lipgloss.Style
	Selected lipgloss.Style
	Border   lipgloss.Style
}

// DefaultTableStyle returns the default table styling.
func DefaultTableStyle() TableStyle {
	return TableStyle{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary),
		Cell: lipgloss.NewStyle().
			Foreground(ColorPrimary),
		Selected: lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Background(ColorGlassBorder),
		Border: lipgloss.NewStyle().
			Foreground(ColorMuted),
	}
}

// TableStyles returns bubbles table styles matching DefaultTableStyle.
func TableStyles() table.Styles {
	ts := DefaultTableStyle()
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorMuted).
		BorderBottom(true).
		Bold(true).
		Foreground(ts.Header.GetForeground())
	s.Cell = s.Cell.
		Foreground(ts.Cell.GetForeground())
	s.Selected = s.Selected.
		Foreground(ColorNeonPink).
		Background(ColorDarkSurface).
		Bold(true)
	return s
}

// TableColumn defines a table column with name and width.
type TableColumn struct {
	Title string
	Width int
}

// Columns converts TableColumns into bubbles table columns.
func Columns(columns []TableColumn) []table.Column {
	cols := make([]table.Column, len(columns))
	for i, c := range columns {
		cols[i] = table.Column{Title: c.Title, Width: c.Width}
	}
	return cols
}

// NewTable creates a new Bubbles table with default styling.
func NewTable(columns []TableColumn, rows []table.Row) table.Model {
	t := table.New(
		table.WithColumns(Columns(columns)),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1), // +1 for header
	)
	t.SetStyles(TableStyles())
	return t
}

// RenderSimpleTable renders a non-interactive table string.
// This is for CLI output (not TUI), producing a simple formatted table.
func RenderSimpleTable(columns []TableColumn, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	tableRows := make([]table.Row, len(rows))
	for i, row := range rows {
		tableRows[i] = table.Row(row)
	}

	t := NewTable(columns, tableRows)
	// The cursor row is always highlighted; plain output has no cursor.
	s := TableStyles()
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)
	return t.View()
}

// FitColumns widens each column to its longest cell (or title), capped at limit (0 means no cap).
func FitColumns(titles []string, rows [][]string, limit int) []TableColumn {
	cols := make([]TableColumn, len(titles))
	for i, title := range titles {
		w := lipgloss.Width(title)
		for _, row := range rows {
			if i < len(row) {
				w = max(w, lipgloss.Width(row[i]))
			}
		}
		if limit > 0 && w > limit {
			w = limit
		}
		cols[i] = TableColumn{Title: title, Width: w}
	}
	return cols
}
