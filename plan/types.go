package plan

import (
	"time"

	"github.com/palebrook/covgrid/audit"
	"github.com/palebrook/covgrid/geo"
)

// Options holds every tunable the solver pipeline exposes, plus the
// additive Concurrency knob for bounded per-agent parallel routing.
type Options struct {
	Dim    float64 // cell side, meters
	Lambda float64 // distance weight
	Gamma  float64 // turn weight
	Kappa  int64   // forbidden-edge sentinel
	PCS    int64   // integer cost scale
	Gap    float64 // solver MIP gap (unused by the exact branch-and-bound; kept for CLI parity)
	Limit  time.Duration

	// Concurrency bounds how many agents route concurrently. 1 (the
	// default) preserves the spec's strictly sequential baseline
	// exactly; values above 1 fan per-agent route.Solve calls out over
	// an errgroup-bounded worker pool.
	Concurrency int
}

// DefaultOptions returns the baseline tunables used when no override
// is supplied.
func DefaultOptions() Options {
	return Options{
		Dim: 10, Lambda: 1, Gamma: 1,
		Kappa: 1_000_000_000, PCS: 100,
		Gap: 0.01, Limit: 1_000_000_000 * time.Second,
		Concurrency: 1,
	}
}

// AgentPlan is one agent's complete solved output.
type AgentPlan struct {
	Start   geo.Point
	Depot   geo.Point
	Ordered []geo.Point // tour order starting at depot, n entries
	Stats   audit.Stats
}

// Result is the driver's complete output, one AgentPlan per input start.
type Result struct {
	Agents []AgentPlan
}
