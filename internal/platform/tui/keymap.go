package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-maze/internal/core"
)

// KeyMap defines the key bindings for the maze.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Confirm    key.Binding
	Restart    key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Confirm, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Confirm, k.Restart, k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "start"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "retry"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// Action translates a key message to a game action, or ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// HeldInput emulates held keys on terminals, which only report presses.
// A direction stays held for a fixed number of ticks after its last press
// (key repeat keeps refreshing it); pressing a new direction releases the
// others. Confirm, Restart and Quit are delivered on the next frame only.
type HeldInput struct {
	hold    int
	held    map[core.Action]int
	pending core.InputFrame
}

// NewHeldInput creates a tracker that holds directions for holdTicks frames.
func NewHeldInput(holdTicks int) *HeldInput {
	return &HeldInput{
		hold:    max(holdTicks, 1),
		held:    make(map[core.Action]int),
		pending: core.NewInputFrame(),
	}
}

func isDirection(a core.Action) bool {
	switch a {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		return true
	}
	return false
}

// Press records a key press.
func (h *HeldInput) Press(a core.Action) {
	if a == core.ActionNone {
		return
	}
	if !isDirection(a) {
		h.pending.Set(a)
		return
	}
	for d := range h.held {
		if d != a {
			delete(h.held, d)
		}
	}
	h.held[a] = h.hold
}

// Frame returns the input for the next tick and ages the held directions.
func (h *HeldInput) Frame() core.InputFrame {
	frame := h.pending.Clone()
	h.pending.Clear()

	for a, ttl := range h.held {
		frame.Set(a)
		if ttl <= 1 {
			delete(h.held, a)
		} else {
			h.held[a] = ttl - 1
		}
	}
	return frame
}

// Release drops every held direction and pending action.
func (h *HeldInput) Release() {
	clear(h.held)
	h.pending.Clear()
}
