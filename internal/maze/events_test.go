package maze

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestEventKindString(t *testing.T) {
	tests := []struct {
		kind     EventKind
		expected string
	}{
		{EventDirectionChanged, "direction_changed"},
		{EventStep, "step"},
		{EventLevelComplete, "level_complete"},
		{EventCaught, "caught"},
		{EventVictory, "victory"},
		{EventKind(99), "unknown"},
	}

	for _, tc := range tests {
		if got := tc.kind.String(); got != tc.expected {
			t.Errorf("EventKind(%d).String() = %q, expected %q", tc.kind, got, tc.expected)
		}
	}
}

func TestSinksFanOut(t *testing.T) {
	a, b := &EventLog{}, &EventLog{}
	calls := 0
	sinks := Sinks{a, nil, b, EventSinkFunc(func(Event) { calls++ })}

	sinks.Emit(Event{Kind: EventCaught})
	sinks.Emit(Event{Kind: EventStep})

	if len(a.Events) != 2 || len(b.Events) != 2 || calls != 2 {
		t.Errorf("fan-out delivered %d/%d/%d events, expected 2 each", len(a.Events), len(b.Events), calls)
	}
	if a.Count(EventCaught) != 1 {
		t.Errorf("Count(caught) = %d, expected 1", a.Count(EventCaught))
	}

	a.Reset()
	if len(a.Events) != 0 {
		t.Error("Reset() should drop recorded events")
	}
}

func TestLogSink(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.InfoLevel)

	sink := LogSink{Logger: logger}
	sink.Emit(Event{Kind: EventStep, Tick: 1})
	sink.Emit(Event{Kind: EventVictory, Tick: 9, Level: 1})

	out := buf.String()
	if strings.Contains(out, "step") {
		t.Errorf("step events should log at debug level, got %q", out)
	}
	if !strings.Contains(out, "victory") {
		t.Errorf("expected victory event in log output, got %q", out)
	}

	// A sink without a logger is a no-op.
	LogSink{}.Emit(Event{Kind: EventCaught})
}
