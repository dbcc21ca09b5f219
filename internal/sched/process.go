package sched

import (
	"fmt"
	"sort"
)

// Process describes one schedulable unit.
type Process struct {
	Name    string `json:"name" yaml:"name"`
	Arrival int    `json:"arrival" yaml:"arrival"` // time unit at which the process becomes eligible
	Burst   int    `json:"burst" yaml:"burst"`     // total time units of work
}

// work is the algorithm-local working record of a process.
// NOTE: it never aliases the caller's Process, so scheduling leaves the input untouched.
type work struct {
	Process
	remaining int
}

// newArena copies the processes into fresh working records, ordered by arrival then name.
func newArena(processes []Process) []*work {
	arena := make([]*work, 0, len(processes))
	for _, p := range processes {
		arena = append(arena, &work{Process: p, remaining: p.Burst})
	}
	sort.SliceStable(arena, func(i, j int) bool {
		if arena[i].Arrival != arena[j].Arrival {
			return arena[i].Arrival < arena[j].Arrival
		}
		return arena[i].Name < arena[j].Name
	})
	return arena
}

// Validate checks a process set before any timeline is built.
func Validate(processes []Process) error {
	if len(processes) == 0 {
		return ErrEmptyProcessSet
	}

	seen := make(map[string]struct{}, len(processes))
	for _, p := range processes {
		switch {
		case p.Name == "":
			return fmt.Errorf("%w: empty name", ErrInvalidProcess)
		case p.Arrival < 0:
			return fmt.Errorf("%w: %s has negative arrival %d", ErrInvalidProcess, p.Name, p.Arrival)
		case p.Burst <= 0:
			return fmt.Errorf("%w: %s has non-positive burst %d", ErrInvalidProcess, p.Name, p.Burst)
		}
		if _, dup := seen[p.Name]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateProcessName, p.Name)
		}
		seen[p.Name] = struct{}{}
	}
	return nil
}
