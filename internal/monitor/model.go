package monitor

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/panels/internal/config"
	"github.com/rileyhilliard/panels/internal/host"
	"github.com/rileyhilliard/panels/internal/world"
)

// Ticker refreshes every surface once per call.
type Ticker interface {
	Tick()
}

// TextSource exposes the text a surface last received.
type TextSource interface {
	Text() string
}

// Screen is one previewed surface.
type Screen struct {
	Title  string
	Source TextSource
}

// Options configures a Model.
type Options struct {
	// Scheduler reports the rate requested by the panel configuration.
	// A nil scheduler always uses the coarse rate.
	Scheduler *host.ManualScheduler
	Refresh   config.RefreshConfig
	Frames    bool
	World     string

	// Apply merges a reloaded world into the running one and returns how
	// many inventories changed.
	Apply func(*world.World) int
}

// Model is the Bubble Tea model for the live preview.
type Model struct {
	ticker  Ticker
	screens []Screen
	opts    Options
	keys    KeyMap
	help    help.Model

	selected int
	focused  bool
	paused   bool
	frames   bool
	quitting bool

	width, height int

	ticks    int
	lastTick time.Time
	reloads  int
	lastErr  string
}

// tickMsg signals a periodic refresh.
type tickMsg time.Time

// reloadMsg carries a reloaded world (or the error that prevented it).
type reloadMsg struct {
	world *world.World
	err   error
}

// ReloadMsg wraps a watcher result for delivery with tea.Program.Send.
func ReloadMsg(w *world.World, err error) tea.Msg {
	return reloadMsg{world: w, err: err}
}

// NewModel creates a preview of screens driven by ticker.
func NewModel(ticker Ticker, screens []Screen, opts Options) Model {
	return Model{
		ticker:  ticker,
		screens: screens,
		opts:    opts,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		frames:  opts.Frames,
	}
}

// Init renders the first frame immediately and starts the tick timer.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return tickMsg(time.Now()) }
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tickMsg:
		if !m.paused {
			m.tick()
			m.lastTick = time.Time(msg)
		}
		return m, m.tickCmd()

	case reloadMsg:
		if msg.err != nil {
			m.lastErr = msg.err.Error()
			return m, nil
		}
		if msg.world != nil && m.opts.Apply != nil {
			m.opts.Apply(msg.world)
		}
		m.reloads++
		m.lastErr = ""
	}

	return m, nil
}

// View renders the preview.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderPreview()
}

// tick refreshes the dashboard once.
func (m *Model) tick() {
	m.ticker.Tick()
	m.ticks++
}

// Rate returns the refresh rate currently requested.
func (m Model) Rate() host.Rate {
	if m.opts.Scheduler == nil {
		return host.RateCoarse
	}
	return m.opts.Scheduler.Rate()
}

// Interval returns the wall-clock tick interval for the current rate.
func (m Model) Interval() time.Duration {
	if d := m.opts.Refresh.Interval(m.Rate()); d > 0 {
		return d
	}
	return time.Second
}

// Ticks returns how many refreshes have run.
func (m Model) Ticks() int {
	return m.ticks
}

// tickCmd returns a command that sends a tick after the refresh interval.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.Interval(), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
