package debugui

import (
	"fmt"

	"github.com/plus3/blockfall/tetra"
)

// EventLog keeps the most recent board events for display. Feed it from
// session.Subscribe.
type EventLog struct {
	entries []tetra.Event
	next    int
	full    bool
	total   int
}

func NewEventLog(capacity int) *EventLog {
	if capacity <= 0 {
		panic("event log capacity must be positive")
	}
	return &EventLog{entries: make([]tetra.Event, capacity)}
}

// Add records e, evicting the oldest entry when the log is full.
func (l *EventLog) Add(e tetra.Event) {
	l.entries[l.next] = e
	l.next = (l.next + 1) % len(l.entries)
	if l.next == 0 {
		l.full = true
	}
	l.total++
}

// Entries returns the retained events, newest first.
func (l *EventLog) Entries() []tetra.Event {
	n := l.next
	if l.full {
		n = len(l.entries)
	}

	out := make([]tetra.Event, 0, n)
	for i := 1; i <= n; i++ {
		idx := (l.next - i + len(l.entries)) % len(l.entries)
		out = append(out, l.entries[idx])
	}
	return out
}

// Total returns the number of events added since creation.
func (l *EventLog) Total() int {
	return l.total
}

func describeEvent(e tetra.Event) string {
	switch e.Type {
	case tetra.EventLinesCleared:
		return fmt.Sprintf("%s %d rows %v", e.Type, e.Count, e.Rows)
	case tetra.EventSpawned, tetra.EventLocked, tetra.EventGameOver:
		return fmt.Sprintf("%s %s %v", e.Type, e.Kind, e.Cells)
	default:
		return e.Type.String()
	}
}
