package monitor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap holds the preview's key bindings.
type KeyMap struct {
	Quit   key.Binding
	Help   key.Binding
	Pause  key.Binding
	Step   key.Binding
	Next   key.Binding
	Prev   key.Binding
	Focus  key.Binding
	Frames key.Binding
	Back   key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Pause: key.NewBinding(
			key.WithKeys(" ", "space", "p"),
			key.WithHelp("space", "pause"),
		),
		Step: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "step"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "l", "right"),
			key.WithHelp("tab/l", "next screen"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "h", "left"),
			key.WithHelp("h", "previous screen"),
		),
		Focus: key.NewBinding(
			key.WithKeys("enter", "f"),
			key.WithHelp("enter", "focus"),
		),
		Frames: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "borders"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Next, k.Focus, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.Step},
		{k.Next, k.Prev, k.Focus, k.Back},
		{k.Frames, k.Help, k.Quit},
	}
}

// HandleKeyMsg processes keyboard input and returns updated model state and command.
// Returns true if the key was handled, false otherwise.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return true, nil

	case key.Matches(msg, m.keys.Back):
		switch {
		case m.help.ShowAll:
			m.help.ShowAll = false
		case m.focused:
			m.focused = false
		}
		return true, nil

	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return true, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
		return true, nil

	case key.Matches(msg, m.keys.Step):
		if m.paused {
			m.tick()
		}
		return true, nil

	case key.Matches(msg, m.keys.Next):
		if n := len(m.screens); n > 0 {
			m.selected = (m.selected + 1) % n
		}
		return true, nil

	case key.Matches(msg, m.keys.Prev):
		if n := len(m.screens); n > 0 {
			m.selected = (m.selected - 1 + n) % n
		}
		return true, nil

	case key.Matches(msg, m.keys.Focus):
		if len(m.screens) > 0 {
			m.focused = !m.focused
		}
		return true, nil

	case key.Matches(msg, m.keys.Frames):
		m.frames = !m.frames
		return true, nil
	}

	return false, nil
}
