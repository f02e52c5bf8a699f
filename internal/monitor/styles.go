package monitor

import "github.com/charmbracelet/lipgloss"

// Preview color palette
const (
	ColorSurfaceBg = lipgloss.Color("#12121A") // Dark surface

	ColorHealthy  = lipgloss.Color("#39FF14") // Neon green
	ColorWarning  = lipgloss.Color("#FFAA00") // Electric amber
	ColorCritical = lipgloss.Color("#FF0055") // Hot red-pink

	ColorTextPrimary   = lipgloss.Color("#FFFFFF") // Pure white
	ColorTextSecondary = lipgloss.Color("#B4B4D0") // Lavender gray
	ColorTextMuted     = lipgloss.Color("#6B6B8D") // Purple-gray

	ColorAccent = lipgloss.Color("#FF2E97") // Neon pink
)

// Base styles for the preview
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Background(ColorSurfaceBg).
			Bold(true).
			Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	SelectedTitleStyle = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Bold(true)

	PausedStyle = lipgloss.NewStyle().
			Foreground(ColorWarning).
			Bold(true)

	LiveStyle = lipgloss.NewStyle().
			Foreground(ColorHealthy)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorCritical)
)
