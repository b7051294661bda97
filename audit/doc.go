// Package audit walks a solved agent tour and re-checks the adjacency
// bound post-solve, accumulating total distance and turn angle — a
// safety net against a router acceptance bug reaching a mission file.
// The walk is a single fixed-order pass over the tour's already-known
// successor links, not a general graph search.
package audit
