// internal/playback/controller.go

package playback

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"procsim/internal/sched"
)

// ErrInvalidStateTransition is returned by commands that are not valid in the current status.
var ErrInvalidStateTransition = errors.New("invalid state transition")

// Status is the run status of the playback session.
type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusPaused
	StatusFinished
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// session is one playback run over an immutable timeline.
type session struct {
	id        string
	processes []sched.Process
	algorithm sched.Algorithm
	quantum   int
	timeline  sched.Timeline
	trace     sched.ReadyQueueTrace // Round-Robin only
	cursor    int
	done      chan struct{}
	doneOnce  sync.Once
}

func (s *session) end() {
	s.doneOnce.Do(func() { close(s.done) })
}

// Controller advances a cursor through a precomputed timeline, one slot per tick.
type Controller struct {
	mu       sync.Mutex // protects everything below
	status   Status
	session  *session
	clock    *TickClock
	interval time.Duration
	gen      uint64 // bumped whenever a clock is started or stopped, stale ticks are dropped

	logger *slog.Logger
	sink   Sink
}

// New creates an idle controller. Events go to sink, which may be nil.
func New(logger *slog.Logger, sink Sink) *Controller {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Controller{logger: logger, sink: sink}
}

// Start computes the timeline and begins playback, replacing any previous session.
// Invalid input is rejected before the current session is touched.
// With a non-positive interval no clock runs and the caller drives playback with Tick.
func (c *Controller) Start(processes []sched.Process, algo sched.Algorithm, quantum int, interval time.Duration) error {
	var (
		tl    sched.Timeline
		trace sched.ReadyQueueTrace
		err   error
	)
	if algo == sched.RoundRobin {
		tl, trace, err = sched.TraceRoundRobin(processes, quantum)
	} else {
		tl, err = sched.ComputeTimeline(processes, algo, quantum)
	}
	if err != nil {
		c.logger.Warn("start rejected", "algorithm", algo, "error", err)
		return err
	}

	s := &session{
		id:        uuid.NewString(),
		processes: slices.Clone(processes),
		algorithm: algo,
		quantum:   quantum,
		timeline:  tl,
		trace:     trace,
		done:      make(chan struct{}),
	}

	c.mu.Lock()
	prev, prevStatus := c.session, c.status
	c.stopClockLocked()
	c.session = s
	c.status = StatusRunning
	c.interval = interval
	started := c.eventLocked(EventStarted)
	c.mu.Unlock()

	if prev != nil {
		prev.end()
		if prevStatus == StatusRunning || prevStatus == StatusPaused {
			c.logger.Info("session replaced", "session", prev.id, "cursor", prev.cursor)
		}
	}
	c.logger.Info("session started",
		"session", s.id,
		"algorithm", algo,
		"quantum", quantum,
		"processes", len(processes),
		"length", len(tl),
		"interval", interval,
	)
	c.emit(started)
	c.startClock(s)
	return nil
}

// Tick advances playback by one slot. It returns false when the controller is not running.
func (c *Controller) Tick() bool {
	c.mu.Lock()
	return c.tickLocked()
}

// tickFrom is called by the clock loop of generation gen.
func (c *Controller) tickFrom(gen uint64) {
	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		return
	}
	c.tickLocked()
}

// tickLocked must be called with c.mu held and releases it.
func (c *Controller) tickLocked() bool {
	s := c.session
	if c.status != StatusRunning || s == nil {
		c.mu.Unlock()
		return false
	}

	// end of the timeline: finish once and report metrics
	if s.cursor >= len(s.timeline) {
		c.status = StatusFinished
		c.stopClockLocked()
		ev := c.eventLocked(EventFinished)
		c.mu.Unlock()

		ev.Timeline = slices.Clone(s.timeline)
		ev.Metrics = sched.ComputeMetrics(s.timeline, s.processes)
		if best, ok := sched.MostEfficient(ev.Metrics); ok {
			ev.MostEfficient = &best
		}
		ev.Summary = sched.Summarize(s.timeline, ev.Metrics)

		c.logger.Info("session finished",
			"session", s.id,
			"length", len(s.timeline),
			"avg_turnaround", ev.Summary.AverageTurnaround,
			"avg_waiting", ev.Summary.AverageWaiting,
		)
		c.emit(ev)
		s.end()
		return true
	}

	occupant := s.timeline[s.cursor]
	var ready []sched.QueueEntry
	if s.trace != nil {
		ready = s.trace.At(s.cursor).Ready
	}
	s.cursor++
	ev := c.eventLocked(EventProgress)
	ev.Occupant = occupant
	ev.Ready = ready
	c.mu.Unlock()

	c.logger.Debug("tick", "session", s.id, "cursor", ev.Cursor, "occupant", occupant)
	c.emit(ev)
	return true
}

// Pause suspends ticking; the cursor is kept.
func (c *Controller) Pause() error {
	c.mu.Lock()
	if c.status != StatusRunning {
		st := c.status
		c.mu.Unlock()
		return fmt.Errorf("%w: pause while %s", ErrInvalidStateTransition, st)
	}
	c.status = StatusPaused
	c.stopClockLocked()
	ev := c.eventLocked(EventPaused)
	c.mu.Unlock()

	c.logger.Info("session paused", "session", ev.Session, "cursor", ev.Cursor)
	c.emit(ev)
	return nil
}

// Resume continues ticking from the current cursor without recomputing the timeline.
func (c *Controller) Resume() error {
	c.mu.Lock()
	if c.status != StatusPaused {
		st := c.status
		c.mu.Unlock()
		return fmt.Errorf("%w: resume while %s", ErrInvalidStateTransition, st)
	}
	c.status = StatusRunning
	s := c.session
	ev := c.eventLocked(EventResumed)
	c.mu.Unlock()

	c.logger.Info("session resumed", "session", ev.Session, "cursor", ev.Cursor)
	c.emit(ev)
	c.startClock(s)
	return nil
}

// Reset cancels pending ticks and drops the session. Valid in every status.
func (c *Controller) Reset() {
	c.mu.Lock()
	prev := c.session
	c.stopClockLocked()
	c.session = nil
	c.status = StatusIdle
	ev := c.eventLocked(EventReset)
	c.mu.Unlock()

	if prev != nil {
		prev.end()
		c.logger.Info("session reset", "session", prev.id, "cursor", prev.cursor)
	}
	c.emit(ev)
}

// State is a point-in-time view of the controller.
type State struct {
	Session   string
	Status    Status
	Algorithm sched.Algorithm
	Quantum   int
	Cursor    int
	Timeline  sched.Timeline
}

// Snapshot returns the current state. The timeline is a copy.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	st := State{Status: c.status}
	if s := c.session; s != nil {
		st.Session = s.id
		st.Algorithm = s.algorithm
		st.Quantum = s.quantum
		st.Cursor = s.cursor
		st.Timeline = slices.Clone(s.timeline)
	}
	return st
}

// Done returns a channel that is closed when the current session finishes, is reset or is
// replaced. Without a session the channel is already closed.
func (c *Controller) Done() <-chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session == nil {
		closed := make(chan struct{})
		close(closed)
		return closed
	}
	return c.session.done
}

// startClock starts ticking for s once its started/resumed event is out, unless the session
// was paused, reset or replaced in the meantime.
func (c *Controller) startClock(s *session) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session != s || c.status != StatusRunning || c.clock != nil {
		return
	}
	c.startClockLocked()
}

// startClockLocked starts a clock for a new generation. Must be called with c.mu held.
func (c *Controller) startClockLocked() {
	c.gen++
	if c.interval <= 0 {
		return
	}
	clock := NewTickClock(1)
	clock.Start(c.interval)
	c.clock = clock

	gen := c.gen
	go func() {
		for range clock.Ch {
			c.tickFrom(gen)
		}
	}()
}

// stopClockLocked stops the running clock, if any. Must be called with c.mu held.
func (c *Controller) stopClockLocked() {
	c.gen++
	if c.clock != nil {
		c.clock.Stop()
		c.clock = nil
	}
}

func (c *Controller) eventLocked(kind EventKind) Event {
	ev := Event{Time: time.Now(), Kind: kind}
	if s := c.session; s != nil {
		ev.Session = s.id
		ev.Algorithm = s.algorithm
		ev.Cursor = s.cursor
		ev.Length = len(s.timeline)
	}
	return ev
}

// emit must be called without c.mu held so sinks may call back into the controller.
func (c *Controller) emit(ev Event) {
	if c.sink != nil {
		c.sink.Emit(ev)
	}
}
