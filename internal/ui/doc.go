// Package ui provides terminal UI components for roller's CLI output.
//
// The package includes a spinner, tables, a header and styled text output
// using the Lip Gloss library for consistent terminal styling across
// commands and the dashboard.
//
// # Components Overview
//
//	Spinner      - Animated status indicator while network metadata loads
//	NewTable     - Bubbles table with the shared styling
//	RenderHeader - Branded title line used by the CLI
//
// # Color Scheme
//
// A neon palette shared with the dashboard. Semantic aliases:
//
//	ColorSuccess   - Successful operations
//	ColorError     - Failures and errors
//	ColorWarning   - Warnings and skipped items
//	ColorInfo      - Informational messages
//	ColorMuted     - Secondary text, timing info
//
// ApplyColorMode maps the output.color setting onto a lipgloss color
// profile; DisableColors forces monochrome output (for --no-color).
//
// # Spinner Usage
//
//	s := ui.NewSpinner("Fetching networks")
//	s.Start()
//	// ... do work ...
//	s.Success() // or s.Fail() or s.Skip()
package ui
