package sched

import (
	"github.com/emirpasic/gods/trees/redblacktree"
)

// scheduleSJF is non-preemptive shortest-job-first. Whenever the CPU is free it admits every
// arrived process into a red-black tree and runs the leftmost one to completion.
func scheduleSJF(processes []Process) Timeline {
	arena := newArena(processes)
	tl := make(Timeline, 0, totalBurst(arena))
	ready := redblacktree.NewWith(cmpJob)

	now, next, done := 0, 0, 0
	for done < len(arena) {
		// 1) admit everything that has arrived by now
		for next < len(arena) && arena[next].Arrival <= now {
			w := arena[next]
			ready.Put(keyOf(w), w)
			next++
		}

		// 2) nothing ready: the CPU idles for one unit
		node := ready.Left()
		if node == nil {
			tl.emit(Idle, 1)
			now++
			continue
		}

		// 3) dispatch the shortest job and run it to completion
		ready.Remove(node.Key)
		w := node.Value.(*work)
		tl.emit(Slot(w.Name), w.remaining)
		now += w.remaining
		w.remaining = 0
		done++
	}
	return tl
}

// jobKey orders the SJF ready set.
type jobKey struct {
	burst   int
	arrival int
	name    string
}

func keyOf(w *work) jobKey {
	return jobKey{burst: w.Burst, arrival: w.Arrival, name: w.Name}
}

// cmpJob orders by burst, then arrival, then name.
func cmpJob(a, b any) int {
	ka, kb := a.(jobKey), b.(jobKey)
	switch {
	case ka.burst < kb.burst:
		return -1
	case ka.burst > kb.burst:
		return 1
	case ka.arrival < kb.arrival:
		return -1
	case ka.arrival > kb.arrival:
		return 1
	case ka.name < kb.name:
		return -1
	case ka.name > kb.name:
		return 1
	default:
		return 0
	}
}
