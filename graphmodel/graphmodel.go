package graphmodel

import (
	"github.com/palebrook/covgrid/decompose"
	"github.com/palebrook/covgrid/geo"
)

// NodeGraph is the read-only adjacency graph over a decomposer's
// admissible cell centers. Vertex i corresponds to cells[i] in the slice
// passed to NewNodeGraph — row-major decomposer order, preserved as the
// node index.
type NodeGraph struct {
	centers   []geo.Point
	rows      []int
	cols      []int
	adjacency [][]edge
	dim       float64
}

// NewNodeGraph builds the adjacency graph over cells, deriving an edge
// between i and j iff 0 < dist(i,j) <= AdjacencyFactor*dim — the grid's
// 4-/8-connected step predicate. This mirrors gridgraph.NewGridGraph's
// Conn8 neighbor derivation, generalized from integer grid offsets to
// geodesic distance since cells carry real-world corners, not just (x,y).
//
// Complexity: O(n^2) in the number of cells, which is acceptable at the
// node counts a single survey decomposition produces.
func NewNodeGraph(cells []decompose.Cell, dim float64) (*NodeGraph, error) {
	if len(cells) == 0 {
		return nil, ErrNoVertices
	}

	g := &NodeGraph{
		centers:   make([]geo.Point, len(cells)),
		rows:      make([]int, len(cells)),
		cols:      make([]int, len(cells)),
		adjacency: make([][]edge, len(cells)),
		dim:       dim,
	}

	for i, c := range cells {
		g.centers[i] = c.Center
		g.rows[i] = c.Row
		g.cols[i] = c.Col
	}

	bound := AdjacencyFactor*dim + geo.Epsilon
	for i := 0; i < len(cells); i++ {
		for j := i + 1; j < len(cells); j++ {
			d := geo.Distance(g.centers[i], g.centers[j])
			if d > 0 && d <= bound {
				g.adjacency[i] = append(g.adjacency[i], edge{to: j, weight: d})
				g.adjacency[j] = append(g.adjacency[j], edge{to: i, weight: d})
			}
		}
	}

	return g, nil
}

// VertexCount returns the number of nodes in the graph.
func (g *NodeGraph) VertexCount() int { return len(g.centers) }

// Center returns the (lat,lon) of node i.
func (g *NodeGraph) Center(i int) geo.Point { return g.centers[i] }

// RowCol returns the decomposer row/column of node i — its position in
// the original grid.
func (g *NodeGraph) RowCol(i int) (row, col int) { return g.rows[i], g.cols[i] }

// Neighbors returns the node indices adjacent to i.
func (g *NodeGraph) Neighbors(i int) []int {
	out := make([]int, len(g.adjacency[i]))
	for k, e := range g.adjacency[i] {
		out[k] = e.to
	}

	return out
}

// EdgeWeight returns the geodesic distance between i and j and whether an
// admissible edge exists between them.
func (g *NodeGraph) EdgeWeight(i, j int) (float64, bool) {
	for _, e := range g.adjacency[i] {
		if e.to == j {
			return e.weight, true
		}
	}

	return 0, false
}
