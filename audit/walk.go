package audit

import (
	"math"

	"github.com/palebrook/covgrid/geo"
	"github.com/palebrook/covgrid/graphmodel"
)

// Walk traverses tour starting from depot, n steps (n = len(centers)),
// accumulating total distance and turn angle, and rejecting any edge
// whose length exceeds the admissible adjacency bound — a post-solve
// re-check of the router's forbidden-edge constraint.
//
// Complexity: O(n).
func Walk(depot int, tour map[int]int, centers []geo.Point, dim float64) (Stats, error) {
	var stats Stats
	bound := graphmodel.AdjacencyFactor*dim + geo.Epsilon

	n := len(centers)
	path := make([]int, 0, n+1)
	cur := depot
	for i := 0; i < n; i++ {
		path = append(path, cur)
		cur = tour[cur]
	}
	path = append(path, depot) // close the cycle for edge/turn iteration

	for i := 0; i < n; i++ {
		from, to := path[i], path[i+1]
		d := geo.Distance(centers[from], centers[to])
		if d > bound {
			return Stats{}, ErrEdgeTooLong
		}
		stats.TotalDistance += d
	}

	for i := 1; i <= n; i++ {
		prev, mid, next := path[i-1], path[i], path[(i+1)%(n+1)]
		if mid == depot {
			continue
		}
		theta := turnAngle(centers[prev], centers[mid], centers[next])
		stats.TotalTurn += theta
		stats.Histogram.add(theta)
	}

	return stats, nil
}

// turnAngle computes the exterior angle at mid using the law of cosines:
// theta = pi - acos((r+s-t)/sqrt(4*r*s)), where r=dist(prev,mid)^2,
// s=dist(mid,next)^2, t=dist(next,prev)^2 — 0 for a straight run, pi for
// a U-turn.
func turnAngle(prev, mid, next geo.Point) float64 {
	r := geo.Distance(prev, mid) * geo.Distance(prev, mid)
	s := geo.Distance(mid, next) * geo.Distance(mid, next)
	t := geo.Distance(next, prev) * geo.Distance(next, prev)

	denom := math.Sqrt(4 * r * s)
	if denom == 0 {
		return 0
	}

	cosInterior := (r + s - t) / denom
	if cosInterior > 1 {
		cosInterior = 1
	} else if cosInterior < -1 {
		cosInterior = -1
	}

	return math.Pi - math.Acos(cosInterior)
}
