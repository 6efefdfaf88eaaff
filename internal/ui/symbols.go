package ui

// Unicode symbols for status indicators.
const (
	SymbolSuccess  = "✓" // operation succeeded
	SymbolFail     = "✗" // operation failed
	SymbolPending  = "○" // not started
	SymbolComplete = "●" // done
	SymbolSkipped  = "⊘" // skipped
	SymbolWarning  = "⚠"
	SymbolLive     = "◉" // stream connected
)
