package costmatrix

import (
	"math"

	"github.com/palebrook/covgrid/geo"
	"github.com/palebrook/covgrid/graphmodel"
)

// Build computes d[i][j] for the subset of global node indices `nodes`,
// local index i corresponding to nodes[i]:
//
//	d[i][j] = kappa                  if dist(i,j) == 0 or dist(i,j) > bound
//	        = round(pcs * dist(i,j))  otherwise
//
// where bound = (1+sqrt(2)/2)*opts.Dim + geo.Epsilon.
func Build(g *graphmodel.NodeGraph, nodes []int, opts Options) (*Tensors, error) {
	n := len(nodes)
	if n < 2 {
		return nil, ErrEmptySubset
	}

	bound := graphmodel.AdjacencyFactor*opts.Dim + geo.Epsilon

	dist := make([][]float64, n)
	d := make([][]int64, n)
	for i := 0; i < n; i++ {
		dist[i] = make([]float64, n)
		d[i] = make([]int64, n)
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			dd := geo.Distance(g.Center(nodes[i]), g.Center(nodes[j]))
			dist[i][j] = dd

			if dd == 0 || dd > bound {
				d[i][j] = opts.Kappa
				continue
			}
			d[i][j] = int64(math.Round(float64(opts.PCS) * dd))
		}
	}

	return &Tensors{N: n, D: d, pcs: opts.PCS, kappa: opts.Kappa, dist: dist}, nil
}

// IsForbidden reports whether d[i][j] is the kappa sentinel.
func (t *Tensors) IsForbidden(i, j int) bool {
	return t.D[i][j] >= t.kappa
}

// Turn returns q[i][j][k], the turn-penalty cost at node j arriving from
// i and leaving to k:
//
//	q[i][j][k] = 0                         if d[i][j] or d[j][k] is forbidden
//	           = round(pcs * (pi - acos((r+s-t)/sqrt(4*r*s))))  otherwise
//
// where r=dist(i,j)^2, s=dist(j,k)^2, t=dist(k,i)^2 — squared side
// lengths, so the acos argument is the law-of-cosines cosine of the
// interior angle at j and the result is 0 for a straight run and pi for
// a U-turn. Computed on demand from
// the dense distance matrix rather than materialized as an n^3 tensor —
// each (i,j,k) query is a constant-time law-of-cosines evaluation, and
// the route solver only ever needs the value at the specific triple it
// is currently extending during its branch-and-bound DFS, never the
// whole tensor at once.
func (t *Tensors) Turn(i, j, k int) int64 {
	if t.IsForbidden(i, j) || t.IsForbidden(j, k) {
		return 0
	}

	r := t.dist[i][j] * t.dist[i][j]
	s := t.dist[j][k] * t.dist[j][k]
	tt := t.dist[k][i] * t.dist[k][i]

	denom := math.Sqrt(4 * r * s)
	if denom == 0 {
		return 0
	}

	cosInterior := (r + s - tt) / denom
	if cosInterior > 1 {
		cosInterior = 1
	} else if cosInterior < -1 {
		cosInterior = -1
	}

	theta := math.Pi - math.Acos(cosInterior)

	return int64(math.Round(float64(t.pcs) * theta))
}
