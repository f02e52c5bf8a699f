package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Semantic colors for status indication
const (
	ColorSuccess lipgloss.Color = "2" // Green
	ColorError   lipgloss.Color = "1" // Red
	ColorWarning lipgloss.Color = "3" // Yellow
	ColorInfo    lipgloss.Color = "6" // Cyan
)

// Text colors for content hierarchy
const (
	ColorPrimary   lipgloss.Color = "7" // White/default
	ColorSecondary lipgloss.Color = "4" // Blue
	ColorMuted     lipgloss.Color = "8" // Gray (bright black)
)

// Accent colors for headers and surface frames
const (
	ColorAccent lipgloss.Color = "#FF6AD5"
	ColorBorder lipgloss.Color = "#5A5A7A"
)

// Color modes accepted by output.color and --no-color.
const (
	ColorModeAuto   = "auto"
	ColorModeAlways = "always"
	ColorModeNever  = "never"
)

// DisableColors switches lipgloss to monochrome output.
func DisableColors() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// ApplyColorMode sets the lipgloss color profile for mode. In auto mode color
// follows whether stdout is a terminal.
func ApplyColorMode(mode string, isTTY bool) {
	switch mode {
	case ColorModeNever:
		DisableColors()
	case ColorModeAlways:
		lipgloss.SetColorProfile(termenv.ANSI256)
	default:
		if !isTTY {
			DisableColors()
			return
		}
		lipgloss.SetColorProfile(termenv.EnvColorProfile())
	}
}
