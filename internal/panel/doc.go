// Package panel lays rendered command output out on fixed-size character grids.
//
// # Structure
//
//	Provider  - one multi-screen entity; owns a Surface per physical screen
//	Surface   - fixed width, 17 rows; owns its Columns in insertion order
//	Column    - owns Commands in insertion order and a derived width
//
// # Column widths
//
// A Surface starts with one Column spanning its full width. Whenever the
// column count grows from n to n+1 every column is resized to
//
//	floor(surfaceWidth/(n+1) + 0.5) - 1
//
// and every Command already placed is re-configured for the new width.
// Columns are only ever appended, never created sparsely.
//
// # Composition
//
// On each refresh a Surface runs every Column and writes the grid row-major:
// for each of the 17 rows, each column contributes its line for that row
// (fitted to the column width, or blank) followed by one separator
// character, and the row ends with "\n". Lines beyond row 17 are dropped.
package panel
