package route

import (
	"errors"
	"time"
)

// Sentinel errors for the route package.
var (
	// ErrTooFewNodes indicates Solve was called with an empty node subset
	// (ten.N < 1). In practice costmatrix.Build already refuses to build
	// a Tensors for fewer than 2 nodes, so this guards a direct,
	// Build-bypassing caller rather than a reachable pipeline state.
	ErrTooFewNodes = errors.New("route: fewer than 1 node assigned")

	// ErrInfeasible indicates no tour was found before the deadline, or
	// every complete tour found required a forbidden (kappa-sentinel)
	// edge.
	ErrInfeasible = errors.New("route: no admissible Hamiltonian cycle found")
)

// Options configures the per-agent branch-and-bound search.
type Options struct {
	// Lambda (λ) weights the distance term.
	Lambda float64

	// Gamma (γ) weights the turn-angle term.
	Gamma float64

	// TimeLimit bounds the search; zero means run to exact optimality.
	TimeLimit time.Duration

	// Eps is the incumbent-improvement tolerance.
	Eps float64
}

// DefaultOptions returns the baseline weighting: lambda=1, gamma=1.
func DefaultOptions() Options {
	return Options{Lambda: 1, Gamma: 1, Eps: 1e-9}
}

// Result is a solved agent tour.
type Result struct {
	// Depot is the local index (into the agent's node subset) of the
	// tour's start/end node.
	Depot int

	// Tour maps each local node index to its successor, forming a single
	// cycle through every node in the agent's assigned subset.
	Tour map[int]int

	// Cost is the achieved scaled objective, lambda*sum(d) + gamma*sum(q).
	Cost float64
}
