package dashboard

import (
	"math"

	"github.com/charmbracelet/bubbles/table"
	"github.com/dustin/go-humanize"

	"github.com/wavefnx/roller/internal/tracker"
)

// placeholder is shown for networks with no metrics yet.
const placeholder = "-"

func formatBlock(m *tracker.Metrics) string {
	if m == nil {
		return placeholder
	}
	if m.BlockNumber > math.MaxInt64 {
		return humanize.Comma(math.MaxInt64)
	}
	return humanize.Comma(int64(m.BlockNumber))
}

func formatRate(m *tracker.Metrics, v func(tracker.Metrics) float64) string {
	if m == nil {
		return placeholder
	}
	return humanize.CommafWithDigits(v(*m), 2)
}

func networkLabel(n tracker.Network) string {
	if n.Label != "" {
		return n.Label
	}
	return n.Name
}

// rows converts a snapshot into table rows, in snapshot order. Each row is
// cut to ncols cells so it matches the columns in use.
func rows(s tracker.Snapshot, ncols int) []table.Row {
	out := make([]table.Row, len(s.Networks))
	for i, n := range s.Networks {
		row := table.Row{
			networkLabel(n),
			formatBlock(n.Metrics),
			formatRate(n.Metrics, func(m tracker.Metrics) float64 { return m.TPS }),
			formatRate(n.Metrics, func(m tracker.Metrics) float64 { return m.GPS }),
			formatRate(n.Metrics, func(m tracker.Metrics) float64 { return m.DPS }),
			n.Stack,
			n.DA,
			n.ParentChain,
		}
		out[i] = row[:min(ncols, len(row))]
	}
	return out
}

// Column titles, in row order.
const (
	colNetwork    = "Network"
	colBlock      = "Block"
	colTPS        = "TPS"
	colGPS        = "MGas/s"
	colDPS        = "KB/s"
	colStack      = "Stack"
	colDA         = "DA"
	colSettlement = "Settlement"
)

// columns returns the table columns, marking the one being sorted on.
func columns(strategy tracker.Strategy, width int) []table.Column {
	cols := []table.Column{
		{Title: colNetwork, Width: 22},
		{Title: colBlock, Width: 13},
		{Title: colTPS, Width: 10},
		{Title: colGPS, Width: 10},
		{Title: colDPS, Width: 10},
		{Title: colStack, Width: 14},
		{Title: colDA, Width: 12},
		{Title: colSettlement, Width: 10},
	}

	sorted := map[tracker.Strategy]int{tracker.ByTps: 2, tracker.ByGps: 3, tracker.ByDps: 4}
	if i, ok := sorted[strategy]; ok {
		cols[i].Title += " ▼"
	}

	if GetLayoutMode(width) == LayoutMinimal && width > 0 {
		// Drop stack, DA and settlement on narrow terminals.
		cols = cols[:5]
	}
	return cols
}
