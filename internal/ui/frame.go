package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SurfaceFrame renders a composed surface grid for the terminal.
type SurfaceFrame struct {
	Title  string // e.g. "Bridge LCD #0"
	Grid   string // newline-terminated rows as written to the surface
	Framed bool   // draw a rounded border around the grid
}

// Render returns the frame. Without a border the title is printed above the
// raw grid so the rows stay byte-for-byte what the surface received.
func (f SurfaceFrame) Render() string {
	titleStyle := lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
	body := strings.TrimSuffix(f.Grid, "\n")

	if !f.Framed {
		return titleStyle.Render(f.Title) + "\n" + body + "\n"
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1)

	return titleStyle.Render(f.Title) + "\n" + box.Render(body) + "\n"
}

// RenderFrames renders frames side by side, wrapping onto new rows when the
// combined width would exceed maxWidth (0 means a single row).
func RenderFrames(frames []SurfaceFrame, maxWidth int) string {
	if len(frames) == 0 {
		return ""
	}

	var rows []string
	var row []string
	rowWidth := 0
	for _, f := range frames {
		block := f.Render()
		w := lipgloss.Width(block)
		if maxWidth > 0 && len(row) > 0 && rowWidth+w+1 > maxWidth {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, rowWidth = nil, 0
		}
		if len(row) > 0 {
			row = append(row, " ")
			rowWidth++
		}
		row = append(row, block)
		rowWidth += w
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
