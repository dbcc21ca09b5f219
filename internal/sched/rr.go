package sched

import (
	"fmt"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
)

// QueueEntry is a waiting process in the Round-Robin ready queue.
type QueueEntry struct {
	Name      string `json:"name"`
	Remaining int    `json:"remaining"`
}

// SlotTrace records the processor and the ready queue at the start of one time unit.
type SlotTrace struct {
	Running Slot
	Ready   []QueueEntry
}

// ReadyQueueTrace has one entry per timeline slot.
type ReadyQueueTrace []SlotTrace

// At returns the trace of slot i, or the zero value when i is out of range.
func (rt ReadyQueueTrace) At(i int) SlotTrace {
	if i < 0 || i >= len(rt) {
		return SlotTrace{}
	}
	return rt[i]
}

// TraceRoundRobin builds the Round-Robin timeline together with the ready queue seen at each slot.
func TraceRoundRobin(processes []Process, quantum int) (Timeline, ReadyQueueTrace, error) {
	if err := Validate(processes); err != nil {
		return nil, nil, err
	}
	if quantum <= 0 {
		return nil, nil, fmt.Errorf("%w: %d", ErrInvalidQuantum, quantum)
	}
	tl, trace := scheduleRR(processes, quantum, true)
	return tl, trace, nil
}

// scheduleRR grants each process at most quantum consecutive units in FIFO order.
// Arrivals are admitted after every executed unit, so a process arriving at the instant a
// quantum expires is queued ahead of the process being re-enqueued.
func scheduleRR(processes []Process, quantum int, tracing bool) (Timeline, ReadyQueueTrace) {
	arena := newArena(processes)
	tl := make(Timeline, 0, totalBurst(arena))
	queue := linkedlistqueue.New()

	var trace ReadyQueueTrace
	now, next := 0, 0
	admit := func() {
		for next < len(arena) && arena[next].Arrival <= now {
			queue.Enqueue(arena[next])
			next++
		}
	}

	for {
		admit()
		if queue.Empty() {
			if next >= len(arena) {
				break
			}
			if tracing {
				trace = append(trace, SlotTrace{Running: Idle})
			}
			tl.emit(Idle, 1)
			now++
			continue
		}

		v, _ := queue.Dequeue()
		cur := v.(*work)
		run := min(quantum, cur.remaining)
		for i := 0; i < run; i++ {
			if tracing {
				trace = append(trace, SlotTrace{Running: Slot(cur.Name), Ready: snapshot(queue)})
			}
			tl.emit(Slot(cur.Name), 1)
			now++
			admit()
		}

		cur.remaining -= run
		if cur.remaining > 0 {
			queue.Enqueue(cur)
		}
	}
	return tl, trace
}

func snapshot(queue *linkedlistqueue.Queue) []QueueEntry {
	values := queue.Values()
	out := make([]QueueEntry, 0, len(values))
	for _, v := range values {
		w := v.(*work)
		out = append(out, QueueEntry{Name: w.Name, Remaining: w.remaining})
	}
	return out
}
