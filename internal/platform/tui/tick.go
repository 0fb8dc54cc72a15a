// Package tui runs a maze session inside a Bubble Tea program. It turns key
// presses into per-tick input frames, drives the session at a fixed tick rate
// and draws its snapshots with lipgloss colors.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a session tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(max(tickRate, 1))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// holdTicks converts a hold duration to a whole number of ticks, at least one.
func holdTicks(d time.Duration, tickRate int) int {
	ticks := int((d*time.Duration(tickRate) + time.Second/2) / time.Second)
	return max(ticks, 1)
}
