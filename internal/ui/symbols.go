package ui

// Unicode symbols for status indicators.
const (
	SymbolSuccess = "✓" // Check passed
	SymbolFail    = "✗" // Check failed
	SymbolPending = "○" // Nothing rendered yet
	SymbolLive    = "●" // Surface is refreshing
	SymbolSkipped = "⊘" // Entity skipped
)
