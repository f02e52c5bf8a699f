// Package ui provides terminal output components for the panels CLI.
//
// Styling uses Lip Gloss with a small ANSI palette:
//
//	ColorSuccess (green)  - passed checks
//	ColorError   (red)    - failures
//	ColorWarning (yellow) - warnings
//	ColorInfo    (cyan)   - names and paths
//	ColorMuted   (gray)   - secondary text
//	ColorAccent           - titles
//
// ApplyColorMode selects the color profile from the output.color setting;
// DisableColors forces monochrome output (for --no-color).
//
// SurfaceFrame and RenderFrames draw composed surfaces, optionally inside a
// rounded border. RenderLayoutTable, RenderSimpleTable and RenderSummary
// report what 'panels validate' found.
package ui
