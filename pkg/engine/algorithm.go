package engine

import (
	"fmt"
	"strings"
)

// Algorithm identifies one of the four supported scheduling algorithms.
// The set is closed: every switch over it handles all four cases.
type Algorithm int

const (
	FCFS Algorithm = iota
	SJF
	Priority
	RoundRobin
)

// Algorithms returns all algorithms in their canonical order.
func Algorithms() []Algorithm {
	return []Algorithm{FCFS, SJF, Priority, RoundRobin}
}

// String returns the canonical configuration token for the algorithm.
func (a Algorithm) String() string {
	switch a {
	case FCFS:
		return "FCFS"
	case SJF:
		return "SJF"
	case Priority:
		return "PRIORITY"
	case RoundRobin:
		return "ROUND_ROBIN"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// FullName returns the spelled-out algorithm name for reports.
func (a Algorithm) FullName() string {
	switch a {
	case FCFS:
		return "First-Come, First-Served"
	case SJF:
		return "Shortest Job First (Non-Preemptive)"
	case Priority:
		return "Priority (Non-Preemptive)"
	case RoundRobin:
		return "Round Robin"
	default:
		return a.String()
	}
}

// ParseAlgorithm resolves a configuration token to an Algorithm. Matching is
// case-insensitive and tolerates the common spellings used in scenario files
// and on the command line.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", "_")) {
	case "FCFS":
		return FCFS, nil
	case "SJF":
		return SJF, nil
	case "PRIORITY", "PRIO":
		return Priority, nil
	case "ROUND_ROBIN", "ROUNDROBIN", "RR":
		return RoundRobin, nil
	default:
		return 0, fmt.Errorf("%w: unknown algorithm %q", ErrInvalidInput, s)
	}
}
