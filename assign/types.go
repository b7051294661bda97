package assign

import (
	"errors"
	"time"
)

// Sentinel errors for the assign package.
var (
	// ErrNoAgents indicates an empty agent-start set was passed.
	ErrNoAgents = errors.New("assign: no agents")

	// ErrNoNodes indicates an empty node set was passed.
	ErrNoNodes = errors.New("assign: no nodes")

	// ErrInfeasible indicates the search exhausted its deadline without
	// finding any feasible partition.
	ErrInfeasible = errors.New("assign: unable to divide nodes among agents")
)

// Options configures the branch-and-bound search.
type Options struct {
	// TimeLimit bounds the search; zero means no deadline (run to exact
	// optimality).
	TimeLimit time.Duration

	// Eps is the tolerance used when comparing candidate objectives —
	// an improvement must exceed Eps to replace the incumbent.
	Eps float64
}

// DefaultOptions returns a zero-deadline, 1e-9-tolerance configuration.
func DefaultOptions() Options {
	return Options{Eps: 1e-9}
}

// Result is the outcome of a successful partition search.
type Result struct {
	// Assignment[a] is agent a's assigned node indices, in ascending
	// original node-index order.
	Assignment [][]int

	// Z is the achieved max-load objective.
	Z float64
}
