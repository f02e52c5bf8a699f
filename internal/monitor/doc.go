// Package monitor implements the live terminal preview behind 'panels watch'.
//
// The preview ticks a dashboard at the wall-clock interval that matches the
// refresh rate requested by the panel configuration, and shows the text each
// surface last received.
//
// # Architecture
//
// The package uses the Bubble Tea framework (Model-Update-View):
//
//   - Model: the screens being previewed, selection, pause state, counters
//   - Update: processes key presses, tick events and world reloads
//   - View: renders the screens as framed grids with a header and footer
//
// # Message Flow
//
//  1. tickMsg fires at the interval for the scheduler's current rate
//  2. Update calls Tick on the dashboard, which rewrites every surface
//  3. View reads the surfaces' text back
//
// World reloads arrive as messages from a file watcher (see ReloadMsg) and
// are applied between ticks, so the dashboard is only ever touched from the
// Bubble Tea update loop.
//
// # Keyboard Shortcuts
//
//	q, Ctrl+C      - Quit
//	space, p       - Pause / resume
//	n              - Single tick while paused
//	tab, l / h     - Select next / previous screen
//	enter, f       - Show only the selected screen
//	b              - Toggle borders
//	?              - Toggle full help
package monitor
