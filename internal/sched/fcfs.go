package sched

// scheduleFCFS runs processes in arrival order (ties by name), each to completion.
func scheduleFCFS(processes []Process) Timeline {
	arena := newArena(processes)
	tl := make(Timeline, 0, totalBurst(arena))

	now := 0
	for _, w := range arena {
		if now < w.Arrival {
			tl.emit(Idle, w.Arrival-now)
			now = w.Arrival
		}
		tl.emit(Slot(w.Name), w.remaining)
		now += w.remaining
		w.remaining = 0
	}
	return tl
}

func totalBurst(arena []*work) int {
	total := 0
	for _, w := range arena {
		total += w.Burst
	}
	return total
}
