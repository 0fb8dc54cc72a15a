package maze

import (
	"github.com/charmbracelet/log"
)

// EventKind identifies a discrete gameplay cue.
type EventKind int

const (
	EventDirectionChanged EventKind = iota // Enemy movement vector changed
	EventStep                              // Player footstep while moving
	EventLevelComplete                     // Player reached the goal
	EventCaught                            // Player touched the enemy
	EventVictory                           // Last level completed
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventDirectionChanged:
		return "direction_changed"
	case EventStep:
		return "step"
	case EventLevelComplete:
		return "level_complete"
	case EventCaught:
		return "caught"
	case EventVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Event is emitted by the session core and consumed fire-and-forget by the
// presentation layer (sound cues, flashes, logs).
type Event struct {
	Kind  EventKind
	Tick  uint64
	Level int // 0-indexed level the event happened on
}

// EventSink receives events. Implementations must not block.
type EventSink interface {
	Emit(Event)
}

// EventSinkFunc adapts a function to EventSink.
type EventSinkFunc func(Event)

// Emit calls f(e).
func (f EventSinkFunc) Emit(e Event) {
	f(e)
}

// NopSink discards events.
type NopSink struct{}

// Emit does nothing.
func (NopSink) Emit(Event) {}

// Sinks fans an event out to several sinks in order.
type Sinks []EventSink

// Emit forwards e to every non-nil sink.
func (s Sinks) Emit(e Event) {
	for _, sink := range s {
		if sink != nil {
			sink.Emit(e)
		}
	}
}

// EventLog records events in memory.
type EventLog struct {
	Events []Event
}

// Emit appends e.
func (l *EventLog) Emit(e Event) {
	l.Events = append(l.Events, e)
}

// Count returns how many events of kind k were recorded.
func (l *EventLog) Count(k EventKind) int {
	n := 0
	for _, e := range l.Events {
		if e.Kind == k {
			n++
		}
	}
	return n
}

// Reset drops all recorded events.
func (l *EventLog) Reset() {
	l.Events = l.Events[:0]
}

// LogSink writes events to a structured logger. Per-tick cues go to Debug.
type LogSink struct {
	Logger *log.Logger
}

// Emit logs e.
func (s LogSink) Emit(e Event) {
	if s.Logger == nil {
		return
	}
	switch e.Kind {
	case EventDirectionChanged, EventStep:
		s.Logger.Debug("event", "kind", e.Kind, "tick", e.Tick, "level", e.Level+1)
	default:
		s.Logger.Info("event", "kind", e.Kind, "tick", e.Tick, "level", e.Level+1)
	}
}
