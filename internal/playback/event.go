// internal/playback/event.go

package playback

import (
	"time"

	"procsim/internal/sched"
)

// EventKind represents the type of playback event
type EventKind int

const (
	EventStarted EventKind = iota
	EventProgress
	EventPaused
	EventResumed
	EventFinished
	EventReset
)

// Event is emitted on every tick and on every command that changes the session.
type Event struct {
	Time      time.Time
	Kind      EventKind
	Session   string
	Algorithm sched.Algorithm
	Cursor    int // cursor after the event
	Length    int // timeline length

	// progress only
	Occupant sched.Slot         // slot that was just played
	Ready    []sched.QueueEntry // Round-Robin ready queue at that slot

	// finished only
	Timeline      sched.Timeline
	Metrics       []sched.Metric
	MostEfficient *sched.Metric
	Summary       sched.Summary
}

func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "Started"
	case EventProgress:
		return "Progress"
	case EventPaused:
		return "Paused"
	case EventResumed:
		return "Resumed"
	case EventFinished:
		return "Finished"
	case EventReset:
		return "Reset"
	default:
		return "Unknown"
	}
}

// Sink consumes playback events.
type Sink interface {
	Emit(Event)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Event)

// Emit calls f(ev).
func (f SinkFunc) Emit(ev Event) { f(ev) }

// Sinks fans one event out to several sinks in order.
type Sinks []Sink

// Emit forwards ev to every sink.
func (s Sinks) Emit(ev Event) {
	for _, sink := range s {
		sink.Emit(ev)
	}
}
