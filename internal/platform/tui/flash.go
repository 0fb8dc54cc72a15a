package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-maze/internal/maze"
)

// footprints alternate on every step cue.
var footprints = [2]string{"▖", "▗"}

// Flash is an event sink that turns session events into a short-lived
// status line message.
type Flash struct {
	duration int
	text     string
	ttl      int
	steps    int
}

// NewFlash creates a flash whose messages last duration ticks.
func NewFlash(duration int) *Flash {
	return &Flash{duration: max(duration, 1)}
}

// Emit implements maze.EventSink.
func (f *Flash) Emit(e maze.Event) {
	switch e.Kind {
	case maze.EventStep:
		f.steps++
		return
	case maze.EventLevelComplete:
		f.text = fmt.Sprintf("Level %d complete!", e.Level+1)
	case maze.EventCaught:
		f.text = "The monster got you."
	case maze.EventVictory:
		f.text = "You escaped the maze!"
	default:
		return
	}
	f.ttl = f.duration
}

// Tick ages the current message.
func (f *Flash) Tick() {
	if f.ttl > 0 {
		f.ttl--
		if f.ttl == 0 {
			f.text = ""
		}
	}
}

// Text returns the active message, or "".
func (f *Flash) Text() string {
	return f.text
}

// Footprint returns the glyph for the latest step cue, or "" before the first.
func (f *Flash) Footprint() string {
	if f.steps == 0 {
		return ""
	}
	return footprints[f.steps%2]
}
