package sched

import "strings"

// Slot is the occupant of one time unit: a process name, or Idle.
type Slot string

// Idle marks a time unit in which no process runs.
const Idle Slot = ""

// IsIdle reports whether no process occupies the slot.
func (s Slot) IsIdle() bool { return s == Idle }

func (s Slot) String() string {
	if s.IsIdle() {
		return "idle"
	}
	return string(s)
}

// Timeline holds one slot per elapsed time unit; index i covers [i, i+1).
type Timeline []Slot

// IdleSlots counts the idle units of the timeline.
func (tl Timeline) IdleSlots() int {
	n := 0
	for _, s := range tl {
		if s.IsIdle() {
			n++
		}
	}
	return n
}

// Names returns the slots as strings, with "idle" for idle units.
func (tl Timeline) Names() []string {
	out := make([]string, len(tl))
	for i, s := range tl {
		out[i] = s.String()
	}
	return out
}

func (tl Timeline) String() string {
	return "[" + strings.Join(tl.Names(), " ") + "]"
}

// emit appends n slots of the same occupant.
func (tl *Timeline) emit(s Slot, n int) {
	for i := 0; i < n; i++ {
		*tl = append(*tl, s)
	}
}
