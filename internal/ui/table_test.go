package ui

import (
	"testing"

	"github.com/charmbracelet/bubbles/table"
	"github.com/stretchr/testify/assert"
)

func TestDefaultTableStyle(t *testing.T) {
	style := DefaultTableStyle()

	assert.NotPanics(t, func() {
		_ = style.Header.Render("test")
		_ = style.Cell.Render("test")
		_ = style.Selected.Render("test")
		_ = style.Border.Render("test")
	})
}

func TestNewTable(t *testing.T) {
	columns := []TableColumn{
		{Title: "Network", Width: 20},
		{Title: "Block", Width: 10},
	}
	rows := []table.Row{
		{"Base", "1,024"},
		{"Zora", "77"},
	}

	view := NewTable(columns, rows).View()

	assert.Contains(t, view, "Network")
	assert.Contains(t, view, "Block")
	assert.Contains(t, view, "Base")
	assert.Contains(t, view, "Zora")
}

func TestNewTable_EmptyRows(t *testing.T) {
	view := NewTable([]TableColumn{{Title: "Name", Width: 20}}, []table.Row{}).View()
	assert.Contains(t, view, "Name")
}

func TestRenderSimpleTable(t *testing.T) {
	columns := []TableColumn{
		{Title: "Network", Width: 15},
		{Title: "Stack", Width: 10},
	}
	rows := [][]string{
		{"base", "op-stack"},
		{"degen", "orbit"},
	}

	output := RenderSimpleTable(columns, rows)

	for _, s := range []string{"Network", "Stack", "base", "degen", "op-stack", "orbit"} {
		assert.Contains(t, output, s)
	}
}

func TestRenderSimpleTable_EmptyRows(t *testing.T) {
	assert.Empty(t, RenderSimpleTable([]TableColumn{{Title: "Name", Width: 20}}, nil))
}

func TestColumns(t *testing.T) {
	cols := Columns([]TableColumn{{Title: "A", Width: 3}, {Title: "B", Width: 5}})
	assert.Equal(t, []table.Column{{Title: "A", Width: 3}, {Title: "B", Width: 5}}, cols)
}

func TestFitColumns(t *testing.T) {
	rows := [][]string{
		{"arbitrum-nova", "x"},
		{"base", "longer value"},
	}

	cols := FitColumns([]string{"Name", "Value"}, rows, 0)
	assert.Equal(t, []TableColumn{{Title: "Name", Width: 13}, {Title: "Value", Width: 12}}, cols)

	capped := FitColumns([]string{"Name", "Value"}, rows, 8)
	assert.Equal(t, 8, capped[0].Width)
	assert.Equal(t, 8, capped[1].Width)

	short := FitColumns([]string{"Title"}, [][]string{{"a"}, {}}, 0)
	assert.Equal(t, 5, short[0].Width)
}
