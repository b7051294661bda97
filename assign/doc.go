// Package assign solves the load-balanced min-max partition problem:
// assign every decomposed node to exactly one agent, minimizing the
// largest per-agent total distance from the agent's start to its
// assigned nodes.
//
// The exact search is a branch-and-bound engine (dense cost buffer,
// precomputed bound contributions, incumbent pruning, soft deadline)
// generalized from tour permutations to a partition search. Feasibility
// of a candidate max-load threshold is checked the way an augmenting
// search checks feasibility of a candidate flow value before tightening
// toward the optimum — here realized as a lower bound (the larger of the
// current maximum load and the average load if every unassigned node
// went to its cheapest agent) rather than a literal max-flow call,
// since the bipartite assignment structure has no capacity edges to
// saturate, only per-agent additive load.
package assign
