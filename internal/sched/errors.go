package sched

import "errors"

var (
	// ErrEmptyProcessSet is returned when no processes were supplied.
	ErrEmptyProcessSet = errors.New("empty process set")

	// ErrInvalidQuantum is returned for Round-Robin with a quantum <= 0.
	ErrInvalidQuantum = errors.New("invalid quantum")

	// ErrDuplicateProcessName is returned when two processes share a name.
	ErrDuplicateProcessName = errors.New("duplicate process name")

	// ErrInvalidProcess is returned for an empty name, negative arrival or non-positive burst.
	ErrInvalidProcess = errors.New("invalid process")

	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)
