package sched

import (
	"fmt"
	"strings"
)

// Algorithm selects the scheduling policy used to build a timeline.
type Algorithm int

const (
	FCFS Algorithm = iota
	SJF
	RoundRobin
)

// Algorithms lists every supported policy.
var Algorithms = []Algorithm{FCFS, SJF, RoundRobin}

func (a Algorithm) String() string {
	switch a {
	case FCFS:
		return "fcfs"
	case SJF:
		return "sjf"
	case RoundRobin:
		return "rr"
	default:
		return "unknown"
	}
}

// Title is the human readable policy name.
func (a Algorithm) Title() string {
	switch a {
	case FCFS:
		return "First-come, first-served"
	case SJF:
		return "Shortest-job-first"
	case RoundRobin:
		return "Round-robin"
	default:
		return "Unknown"
	}
}

// ParseAlgorithm accepts the short names (fcfs, sjf, rr) and a few long aliases.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fcfs", "fifo", "first-come-first-served":
		return FCFS, nil
	case "sjf", "shortest-job-first":
		return SJF, nil
	case "rr", "round-robin", "roundrobin":
		return RoundRobin, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// ComputeTimeline validates the process set and builds its timeline with the given policy.
// The quantum is only consulted for Round-Robin.
func ComputeTimeline(processes []Process, algo Algorithm, quantum int) (Timeline, error) {
	if err := Validate(processes); err != nil {
		return nil, err
	}

	switch algo {
	case FCFS:
		return scheduleFCFS(processes), nil
	case SJF:
		return scheduleSJF(processes), nil
	case RoundRobin:
		if quantum <= 0 {
			return nil, fmt.Errorf("%w: %d", ErrInvalidQuantum, quantum)
		}
		tl, _ := scheduleRR(processes, quantum, false)
		return tl, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(algo))
	}
}
