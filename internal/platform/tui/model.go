package tui

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/maze"
)

// statusRows is the number of terminal rows below the playfield:
// the event status line and the key help.
const statusRows = 2

// DefaultHold is how long a direction stays held after its last key press.
const DefaultHold = 150 * time.Millisecond

// Options configures a maze program.
type Options struct {
	Config  config.MazeConfig
	Levels  *maze.Levels
	Runtime core.RuntimeConfig // Zero TickRate uses Config.TickRate; zero Seed uses the clock
	Hold    time.Duration
	Cols    int // Initial terminal size, updated on resize
	Rows    int
	Logger  *log.Logger
}

// Model is the Bubble Tea model for running a maze session.
type Model struct {
	session  *maze.Session
	screen   *core.Screen
	cfg      config.MazeConfig
	tickRate int
	keys     KeyMap
	help     help.Model
	input    *HeldInput
	flash    *Flash
	logger   *log.Logger
	err      error
	quitting bool
}

// NewModel creates a session and the model that drives it.
func NewModel(opts Options) (Model, error) {
	rt := opts.Runtime
	if rt.TickRate <= 0 {
		rt.TickRate = opts.Config.TickRate
	}
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if opts.Hold <= 0 {
		opts.Hold = DefaultHold
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger = logger.With("run", uuid.NewString())

	flash := NewFlash(2 * rt.TickRate)
	sink := maze.Sinks{maze.LogSink{Logger: logger}, flash}

	session, err := maze.NewSession(opts.Config, opts.Levels, rand.New(rand.NewSource(rt.Seed)), sink, nil)
	if err != nil {
		return Model{}, err
	}
	logger.Info("session created", "seed", rt.Seed, "tick_rate", rt.TickRate, "levels", session.LevelCount())

	h := help.New()
	h.Width = opts.Cols

	return Model{
		session:  session,
		screen:   core.NewScreen(max(opts.Cols, 1), max(opts.Rows-statusRows, 1)),
		cfg:      opts.Config,
		tickRate: rt.TickRate,
		keys:     DefaultKeyMap(),
		help:     h,
		input:    NewHeldInput(holdTicks(opts.Hold, rt.TickRate)),
		flash:    flash,
		logger:   logger,
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(max(msg.Width, 1), max(msg.Height-statusRows, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records a key press; the session sees it on the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	m.input.Press(m.keys.Action(msg))
	return m, nil
}

// handleTick advances the session by one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	prev := m.session.State()

	if err := m.session.Step(m.input.Frame()); err != nil {
		m.logger.Error("session step failed", "error", err)
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}
	m.flash.Tick()

	if state := m.session.State(); state != prev {
		m.logger.Debug("state changed", "from", prev, "to", state, "tick", m.session.Tick())
		if state != maze.StatePlaying {
			m.input.Release()
		}
	}

	if m.session.Done() {
		m.logger.Info("session ended", "outcome", m.session.Outcome(), "ticks", m.session.Tick())
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.tickRate)
}

// saveScreenshot writes the current frame as plain text to ~/.maze/screenshots.
func (m *Model) saveScreenshot() {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".maze", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("level%d_%s.txt", m.session.LevelIndex()+1, timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// draw renders the current snapshot into the screen buffer.
func (m Model) draw() {
	snap := m.session.Snapshot()
	sc := maze.FitScale(snap.WorldW, snap.WorldH, m.screen.Width(), m.screen.Height(),
		m.cfg.Render.CellWidth, m.cfg.Render.CellHeight)
	maze.Render(m.screen, snap, sc)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	return RenderScreen(m.screen) + "\n" + renderStatus(m.flash) + "\n" + m.help.View(m.keys)
}

// Session returns the driven session.
func (m Model) Session() *maze.Session {
	return m.session
}

// Err returns the error that ended the program, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program and blocks until the session ends.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok && m.err != nil {
		return m.err
	}
	return nil
}
