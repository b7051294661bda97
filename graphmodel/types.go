package graphmodel

import "errors"

// ErrNoVertices indicates a graph was requested over an empty node set.
var ErrNoVertices = errors.New("graphmodel: no vertices")

// AdjacencyFactor is (1 + sqrt(2)/2): the grid-diagonal multiple of dim
// that bounds an admissible adjacency edge, allowing both the 4- and
// 8-connected grid steps a survey node may take to a neighbor.
const AdjacencyFactor = 1.7071067811865475

// edge is one adjacency-list entry; NewNodeGraph records each unordered
// pair once in each endpoint's list, so the graph is undirected (dist is
// symmetric) and both directions are queryable via Neighbors/EdgeWeight.
type edge struct {
	to     int
	weight float64
}
