package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/panels/internal/util"
)

// Problem is one issue found while validating a world.
type Problem struct {
	Entity  string
	Message string
}

// ValidationSummary holds the outcome of 'panels validate'.
type ValidationSummary struct {
	Providers int
	Surfaces  int
	Commands  int
	Skipped   []string // entities without text surfaces
	Problems  []Problem
}

// SummaryRenderer formats validation summaries for terminal display.
type SummaryRenderer struct {
	errorStyle   lipgloss.Style
	successStyle lipgloss.Style
	nameStyle    lipgloss.Style
	mutedStyle   lipgloss.Style
}

// NewSummaryRenderer creates a new summary renderer with default styles.
func NewSummaryRenderer() *SummaryRenderer {
	return &SummaryRenderer{
		errorStyle:   lipgloss.NewStyle().Foreground(ColorError),
		successStyle: lipgloss.NewStyle().Foreground(ColorSuccess),
		nameStyle:    lipgloss.NewStyle().Foreground(ColorInfo),
		mutedStyle:   lipgloss.NewStyle().Foreground(ColorMuted),
	}
}

// RenderSummary generates a formatted validation summary.
func RenderSummary(summary ValidationSummary) string {
	return NewSummaryRenderer().Render(summary)
}

// Render generates the formatted summary string.
func (r *SummaryRenderer) Render(summary ValidationSummary) string {
	var sb strings.Builder

	if len(summary.Problems) == 0 {
		sb.WriteString(r.successStyle.Render(fmt.Sprintf("%s %s, %s, %s",
			SymbolSuccess,
			util.Count(summary.Providers, "panel", "panels"),
			util.Count(summary.Surfaces, "surface", "surfaces"),
			util.Count(summary.Commands, "command", "commands"))))
		sb.WriteString("\n")
	} else {
		n := len(summary.Problems)
		sb.WriteString(r.errorStyle.Render(SymbolFail + " " + util.Count(n, "problem", "problems")))
		sb.WriteString("\n")

		for _, p := range summary.Problems {
			sb.WriteString("\n")
			if p.Entity != "" {
				sb.WriteString("  ")
				sb.WriteString(r.nameStyle.Render(p.Entity))
				sb.WriteString("\n")
			}
			for _, line := range strings.Split(strings.TrimRight(p.Message, "\n"), "\n") {
				sb.WriteString("    ")
				sb.WriteString(r.mutedStyle.Render(line))
				sb.WriteString("\n")
			}
		}
	}

	if n := len(summary.Skipped); n > 0 {
		sb.WriteString(r.mutedStyle.Render(SymbolSkipped + " " + util.Count(n, "entity", "entities") + " skipped: " + util.JoinOrNone(summary.Skipped)))
		sb.WriteString("\n")
	}

	return sb.String()
}
