package costmatrix

import "errors"

// ErrEmptySubset indicates Build was called with fewer than 2 nodes —
// there is no edge to cost.
var ErrEmptySubset = errors.New("costmatrix: fewer than 2 nodes")

// Options holds the numerical-policy tunables for building a cost matrix.
type Options struct {
	// Dim is the grid cell side, meters — used to compute the admissible
	// adjacency bound (1+sqrt(2)/2)*Dim.
	Dim float64

	// PCS (P) scales meters/radians into integer cost units. Default 100.
	PCS int64

	// Kappa is the forbidden-edge sentinel. Must satisfy
	// Kappa > PCS * max_admissible_edge_cost * n; callers passing the
	// package default (1e9) get this for any realistic survey footprint.
	Kappa int64
}

// DefaultOptions returns the baseline defaults: pcs=100, kappa=1e9.
func DefaultOptions() Options {
	return Options{Dim: 10, PCS: 100, Kappa: 1_000_000_000}
}

// Tensors holds the per-agent cost matrices, indexed by LOCAL position in
// the agent's assigned-node subset (0..N-1), not the global decomposer
// node index.
type Tensors struct {
	N     int
	D     [][]int64 // D[i][j], i != j; D[i][i] is unused (zero)
	pcs   int64
	kappa int64
	dist  [][]float64 // raw geodesic distances, kept to compute Turn on demand
}
