package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// TableColumn defines a table column with name and width.
type TableColumn struct {
	Title string
	Width int
}

// NewTable creates a new Bubbles table with default styling.
func NewTable(columns []TableColumn, rows []table.Row) table.Model {
	cols := make([]table.Column, len(columns))
	for i, c := range columns {
		cols[i] = table.Column{
			Title: c.Title,
			Width: c.Width,
		}
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1), // +1 for header
	)

	// Apply styling
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorMuted).
		BorderBottom(true).
		Bold(true).
		Foreground(ColorPrimary)
	s.Cell = s.Cell.
		Foreground(ColorPrimary)
	s.Selected = s.Selected.
		Foreground(ColorPrimary).
		Background(ColorMuted).
		Bold(false)

	t.SetStyles(s)
	return t
}

// RenderSimpleTable renders a non-interactive table string.
// This is for CLI output (not TUI), producing a simple formatted table.
func RenderSimpleTable(columns []TableColumn, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	// Create the table
	tableRows := make([]table.Row, len(rows))
	for i, row := range rows {
		tableRows[i] = table.Row(row)
	}

	t := NewTable(columns, tableRows)
	return t.View()
}

// LayoutRow is one surface in the layout table printed by 'panels validate'.
type LayoutRow struct {
	Provider string
	Surface  int
	Width    int
	Columns  int
	ColWidth int
	Commands int
}

// RenderLayoutTable renders the surface layout of every provider.
func RenderLayoutTable(rows []LayoutRow) string {
	if len(rows) == 0 {
		return "No panels found"
	}

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(ColorMuted)
	nameStyle := lipgloss.NewStyle().Foreground(ColorInfo)
	mutedStyle := lipgloss.NewStyle().Foreground(ColorMuted)

	var output strings.Builder
	output.WriteString(headerStyle.Render(
		padRight("PROVIDER", 24)+padRight("SURFACE", 9)+padRight("WIDTH", 7)+padRight("COLUMNS", 13)+"COMMANDS") + "\n")

	prev := ""
	for _, row := range rows {
		name := ""
		if row.Provider != prev {
			name = nameStyle.Render(row.Provider)
			prev = row.Provider
		}
		commands := strconv.Itoa(row.Commands)
		if row.Commands == 0 {
			commands = mutedStyle.Render(SymbolPending + " none")
		}
		output.WriteString(padRight(name, 24) +
			padRight("#"+strconv.Itoa(row.Surface), 9) +
			padRight(strconv.Itoa(row.Width), 7) +
			padRight(fmt.Sprintf("%d x %d", row.Columns, row.ColWidth), 13) +
			commands + "\n")
	}

	return output.String()
}

// padRight pads a string to the specified width.
func padRight(s string, width int) string {
	// Account for ANSI codes when calculating visible length
	visibleLen := lipgloss.Width(s)
	if visibleLen >= width {
		return s
	}
	padding := width - visibleLen
	for i := 0; i < padding; i++ {
		s += " "
	}
	return s
}
