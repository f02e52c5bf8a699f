package panel

import (
	"math"
	"strings"

	"github.com/rileyhilliard/panels/internal/command"
	"github.com/rileyhilliard/panels/internal/host"
	"github.com/rileyhilliard/panels/internal/textfmt"
)

// Rows is the fixed number of text rows on every surface.
const Rows = 17

// SurfaceWidth derives a surface's character width from its geometry:
// 50 characters at font scale 1 on landscape textures, 25 otherwise.
// A non-positive font size counts as 1.
func SurfaceWidth(textureWidth, textureHeight, fontSize float64) int {
	base := 25.0
	if textureWidth > textureHeight {
		base = 50.0
	}
	if fontSize <= 0 {
		fontSize = 1
	}
	return int(base / fontSize)
}

// ColumnWidthFor returns floor(surfaceWidth/columns + 0.5) - 1, the width of
// each column once a surface is split into columns columns.
func ColumnWidthFor(surfaceWidth, columns int) int {
	if columns <= 0 {
		return surfaceWidth
	}
	return int(math.Floor(float64(surfaceWidth)/float64(columns)+0.5)) - 1
}

// wrap maps any id onto [0, n).
func wrap(id, n int) int {
	if n <= 0 {
		return 0
	}
	return ((id % n) + n) % n
}

// Surface is one fixed-size character grid.
type Surface struct {
	width     int
	columns   []*Column
	target    host.TextSurface
	separator rune
	grid      strings.Builder
}

// NewSurface creates a surface of the given width with a single full-width
// column. target may be nil, in which case Update only composes.
func NewSurface(width int, target host.TextSurface, separator rune) *Surface {
	return &Surface{
		width:     width,
		columns:   []*Column{NewColumn(width)},
		target:    target,
		separator: separator,
	}
}

// Width returns the surface width in characters.
func (s *Surface) Width() int {
	return s.width
}

// ColumnCount returns the number of columns.
func (s *Surface) ColumnCount() int {
	return len(s.columns)
}

// Column returns column i.
func (s *Surface) Column(i int) *Column {
	return s.columns[i]
}

// Columns returns the columns in insertion order.
func (s *Surface) Columns() []*Column {
	return append([]*Column(nil), s.columns...)
}

// ColumnWidth is the width every column currently has.
func (s *Surface) ColumnWidth() int {
	if len(s.columns) == 1 {
		return s.width
	}
	return ColumnWidthFor(s.width, len(s.columns))
}

// AddColumn appends a column and resizes every column, re-configuring all
// commands already placed.
func (s *Surface) AddColumn() *Column {
	width := ColumnWidthFor(s.width, len(s.columns)+1)
	col := NewColumn(width)
	s.columns = append(s.columns, col)
	for _, c := range s.columns {
		c.ChangeWidth(width)
	}
	return col
}

// SelectColumn resolves a column directive's id to a column index. An id
// equal to the column count appends a new column first; any other id wraps
// modulo the column count.
func (s *Surface) SelectColumn(id int) int {
	if id == len(s.columns) {
		s.AddColumn()
	}
	return wrap(id, len(s.columns))
}

// AddCommand places cmd in column (wrapped onto the existing columns).
func (s *Surface) AddCommand(column int, cmd command.Command) {
	s.columns[wrap(column, len(s.columns))].AddCommand(cmd)
}

// Compose runs every column and returns the row-major grid: Rows rows, each
// holding every column's width-fitted line plus one separator, ending in "\n".
func (s *Surface) Compose() string {
	outs := make([]*command.Buffer, len(s.columns))
	for i, c := range s.columns {
		outs[i], _ = c.Update()
	}

	s.grid.Reset()
	for row := 0; row < Rows; row++ {
		for i, c := range s.columns {
			if line, ok := outs[i].Line(row); ok {
				s.grid.WriteString(textfmt.Fit(line, c.Width()))
			} else {
				s.grid.WriteString(textfmt.Repeat(' ', c.Width()))
			}
			s.grid.WriteRune(s.separator)
		}
		s.grid.WriteByte('\n')
	}
	return s.grid.String()
}

// Update composes the grid and overwrites the target surface with it.
// It returns the composed text.
func (s *Surface) Update() string {
	text := s.Compose()
	if s.target != nil {
		s.target.WriteText(text, false)
	}
	return text
}
