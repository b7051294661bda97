package route

import (
	"sort"
	"time"

	"github.com/palebrook/covgrid/costmatrix"
	"github.com/palebrook/covgrid/geo"
)

// bbEngine is the per-agent Hamiltonian-cycle search: a dense cost
// buffer (the costmatrix.Tensors the caller already built), a degree-1
// relaxation lower bound via precomputed per-node minimum outgoing
// cost, a deterministic nearest-neighbor branch order, incumbent
// pruning, and a soft deadline sampled every few hundred steps.
type bbEngine struct {
	n      int
	depot  int
	ten    *costmatrix.Tensors
	lambda float64
	gamma  float64

	minOut []float64 // cheapest admissible outgoing edge cost from i
	order  [][]int   // order[i] = neighbors of i sorted by ascending d[i][*]

	visited []bool
	path    []int

	bestTour      []int
	bestCost      float64
	bestForbidden bool
	foundAny      bool

	eps         float64
	useDeadline bool
	deadline    time.Time
	steps       int
}

func newBBEngine(depot int, ten *costmatrix.Tensors, opts Options) *bbEngine {
	n := ten.N
	e := &bbEngine{
		n:       n,
		depot:   depot,
		ten:     ten,
		lambda:  opts.Lambda,
		gamma:   opts.Gamma,
		visited: make([]bool, n),
		path:    make([]int, 0, n),
		eps:     opts.Eps,
	}
	if opts.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(opts.TimeLimit)
	}

	e.precomputeMinOut()
	e.buildNeighborOrder()

	return e
}

func (e *bbEngine) precomputeMinOut() {
	e.minOut = make([]float64, e.n)
	for i := 0; i < e.n; i++ {
		min := -1.0
		for j := 0; j < e.n; j++ {
			if i == j {
				continue
			}
			cost := e.lambda * float64(e.ten.D[i][j])
			if min < 0 || cost < min {
				min = cost
			}
		}
		e.minOut[i] = min
	}
}

// buildNeighborOrder precomputes, per node, the other nodes sorted by
// ascending edge cost — branching in this order reaches a strong
// incumbent early.
func (e *bbEngine) buildNeighborOrder() {
	e.order = make([][]int, e.n)
	for i := 0; i < e.n; i++ {
		neighbors := make([]int, 0, e.n-1)
		for j := 0; j < e.n; j++ {
			if j != i {
				neighbors = append(neighbors, j)
			}
		}
		sort.SliceStable(neighbors, func(a, b int) bool {
			return e.ten.D[i][neighbors[a]] < e.ten.D[i][neighbors[b]]
		})
		e.order[i] = neighbors
	}
}

func (e *bbEngine) deadlineExceeded() bool {
	e.steps++
	if !e.useDeadline || e.steps%512 != 0 {
		return false
	}

	return time.Now().After(e.deadline)
}

// extensionCost returns the marginal cost of moving from last to next,
// including the turn penalty scored at last using (prev2, last, next) —
// unless last is the depot, whose turn is excluded from the sum since
// the tour has no well-defined incoming direction there.
func (e *bbEngine) extensionCost(prev2, last, next int) (cost float64, forbidden bool) {
	d := e.ten.D[last][next]
	forbidden = e.ten.IsForbidden(last, next)
	cost = e.lambda * float64(d)

	if prev2 >= 0 && last != e.depot {
		cost += e.gamma * float64(e.ten.Turn(prev2, last, next))
	}

	return cost, forbidden
}

func (e *bbEngine) lowerBound(costSoFar float64, last int, depth int) float64 {
	lb := costSoFar
	for i := 0; i < e.n; i++ {
		if !e.visited[i] {
			lb += e.minOut[i]
		}
	}

	return lb
}

// recordIncumbent replaces the incumbent iff the new candidate is
// strictly better: an admissible (non-forbidden) tour always beats a
// forbidden one regardless of cost, and among two tours with the same
// forbidden status the lower cost wins.
func (e *bbEngine) recordIncumbent(cost float64, forbidden bool) {
	if e.foundAny {
		betterClass := !forbidden && e.bestForbidden
		sameClass := forbidden == e.bestForbidden
		if !betterClass && (!sameClass || cost >= e.bestCost-e.eps) {
			return
		}
	}

	e.foundAny = true
	e.bestCost = cost
	e.bestForbidden = forbidden
	e.bestTour = append([]int(nil), e.path...)
}

func (e *bbEngine) dfs(last int, costSoFar float64, forbiddenSoFar bool, depth int) {
	if e.deadlineExceeded() {
		return
	}

	if depth == e.n {
		var prev2 int
		if depth >= 2 {
			prev2 = e.path[depth-2]
		} else {
			prev2 = -1
		}
		closeCost, closeForbidden := e.extensionCost(prev2, last, e.depot)
		total := costSoFar + closeCost
		totalForbidden := forbiddenSoFar || closeForbidden

		e.recordIncumbent(total, totalForbidden)

		return
	}

	if e.foundAny && !e.bestForbidden {
		lb := e.lowerBound(costSoFar, last, depth)
		if lb >= e.bestCost-e.eps {
			return
		}
	}

	var prev2 int
	if depth >= 2 {
		prev2 = e.path[depth-2]
	} else {
		prev2 = -1
	}

	for _, next := range e.order[last] {
		if e.visited[next] {
			continue
		}

		stepCost, stepForbidden := e.extensionCost(prev2, last, next)
		newCost := costSoFar + stepCost
		newForbidden := forbiddenSoFar || stepForbidden

		if e.foundAny && !e.bestForbidden && !newForbidden && newCost >= e.bestCost-e.eps {
			continue
		}

		e.visited[next] = true
		e.path = append(e.path, next)

		e.dfs(next, newCost, newForbidden, depth+1)

		e.path = e.path[:len(e.path)-1]
		e.visited[next] = false
	}
}

// SelectDepot returns the index, into centers, of the node closest to
// the agent's start position.
func SelectDepot(start geo.Point, centers []geo.Point) int {
	best := 0
	bestDist := geo.Distance(start, centers[0])
	for i := 1; i < len(centers); i++ {
		d := geo.Distance(start, centers[i])
		if d < bestDist {
			bestDist = d
			best = i
		}
	}

	return best
}

// Solve runs the depot-anchored Hamiltonian-cycle branch-and-bound search
// over the subset described by ten, starting and ending at depot local
// index.
//
// Complexity: worst case exponential in ten.N; the degree-1 lower bound
// and incumbent pruning make it practical at the node counts a single
// agent's subset of a survey decomposition produces.
func Solve(depot int, ten *costmatrix.Tensors, opts Options) (Result, error) {
	if ten.N < 1 {
		return Result{}, ErrTooFewNodes
	}

	e := newBBEngine(depot, ten, opts)
	e.visited[depot] = true
	e.path = append(e.path, depot)

	e.dfs(depot, 0, false, 1)

	if !e.foundAny || e.bestForbidden {
		return Result{}, ErrInfeasible
	}

	tour := make(map[int]int, ten.N)
	for i := 0; i < len(e.bestTour); i++ {
		from := e.bestTour[i]
		to := e.bestTour[(i+1)%len(e.bestTour)]
		tour[from] = to
	}

	return Result{Depot: depot, Tour: tour, Cost: e.bestCost}, nil
}
