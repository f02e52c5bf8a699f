package monitor

import (
	"fmt"
	"strings"

	"github.com/rileyhilliard/panels/internal/ui"
)

// renderPreview renders the complete preview view.
func (m Model) renderPreview() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderScreens())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// renderHeader renders the title line with tick and reload counters.
func (m Model) renderHeader() string {
	title := SelectedTitleStyle.Render("panels watch")

	state := LiveStyle.Render(ui.SymbolLive + " live")
	if m.paused {
		state = PausedStyle.Render("paused")
	}

	stats := LabelStyle.Render(fmt.Sprintf(" | %d screens | %s (%s) | tick %d | reloads %d | ",
		len(m.screens), m.Rate(), m.Interval(), m.ticks, m.reloads))

	return HeaderStyle.Render(title + stats + state)
}

// renderScreens renders every screen, or only the selected one when focused.
func (m Model) renderScreens() string {
	if len(m.screens) == 0 {
		return LabelStyle.Render("No panels found in " + m.opts.World)
	}

	var frames []ui.SurfaceFrame
	for i, s := range m.screens {
		if m.focused && i != m.selected {
			continue
		}
		title := "  " + s.Title
		if i == m.selected {
			title = "▸ " + s.Title
		}
		frames = append(frames, ui.SurfaceFrame{
			Title:  title,
			Grid:   s.Source.Text(),
			Framed: m.frames,
		})
	}

	return ui.RenderFrames(frames, m.width)
}

// renderFooter renders the last reload error, if any, and the key help.
func (m Model) renderFooter() string {
	var b strings.Builder
	if m.lastErr != "" {
		b.WriteString(ErrorStyle.Render(ui.SymbolFail + " reload failed: " + strings.TrimPrefix(firstLine(m.lastErr), ui.SymbolFail+" ")))
		b.WriteString("\n")
	}
	b.WriteString(FooterStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
