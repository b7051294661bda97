package assign

import (
	"sort"
	"time"

	"github.com/palebrook/covgrid/geo"
)

// bbEngine is the branch-and-bound search state: dense cost buffer,
// precomputed per-node minimum contributions, deterministic branch
// order, incumbent pruning, and a soft deadline check sampled every few
// hundred steps rather than on every call (time.Now() is not free).
type bbEngine struct {
	nAgents int
	nNodes  int

	// costs[a][i] = dist(agent a's start, node i).
	costs [][]float64

	// order is the node processing order — fixed to ascending node
	// index, so the output lists each agent's nodes in original
	// node-index order and the search is deterministic for identical
	// input.
	order []int

	// suffixMinSum[k] = sum over order[k:] of the node's cheapest
	// available agent cost — the degree-1-style relaxation lower bound.
	suffixMinSum []float64

	loads      []float64
	assignment []int // assignment[nodeIdx] = agent index, -1 until assigned

	bestAssignment []int
	bestZ          float64
	foundAny       bool

	eps         float64
	deadline    time.Time
	useDeadline bool
	steps       int
}

func newBBEngine(costs [][]float64, opts Options) *bbEngine {
	nAgents := len(costs)
	nNodes := len(costs[0])

	e := &bbEngine{
		nAgents:    nAgents,
		nNodes:     nNodes,
		costs:      costs,
		order:      make([]int, nNodes),
		loads:      make([]float64, nAgents),
		assignment: make([]int, nNodes),
		eps:        opts.Eps,
	}
	for i := range e.order {
		e.order[i] = i
	}
	for i := range e.assignment {
		e.assignment[i] = -1
	}
	if opts.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(opts.TimeLimit)
	}

	e.precomputeSuffixMinima()

	return e
}

func (e *bbEngine) precomputeSuffixMinima() {
	e.suffixMinSum = make([]float64, e.nNodes+1)
	for k := e.nNodes - 1; k >= 0; k-- {
		node := e.order[k]
		min := e.costs[0][node]
		for a := 1; a < e.nAgents; a++ {
			if e.costs[a][node] < min {
				min = e.costs[a][node]
			}
		}
		e.suffixMinSum[k] = e.suffixMinSum[k+1] + min
	}
}

func (e *bbEngine) deadlineExceeded() bool {
	e.steps++
	if !e.useDeadline || e.steps%512 != 0 {
		return false
	}

	return time.Now().After(e.deadline)
}

// seedGreedy assigns each node, in order, to whichever agent would have
// the lowest load after taking it — a cheap feasible incumbent that gives the DFS
// something to prune against immediately.
func (e *bbEngine) seedGreedy() {
	loads := make([]float64, e.nAgents)
	assignment := make([]int, e.nNodes)

	for _, node := range e.order {
		best := 0
		for a := 1; a < e.nAgents; a++ {
			if loads[a]+e.costs[a][node] < loads[best]+e.costs[best][node] {
				best = a
			}
		}
		loads[best] += e.costs[best][node]
		assignment[node] = best
	}

	z := maxOf(loads)
	e.recordIncumbent(z, assignment)
}

func (e *bbEngine) recordIncumbent(z float64, assignment []int) {
	if e.foundAny && z >= e.bestZ-e.eps {
		return
	}
	e.foundAny = true
	e.bestZ = z
	e.bestAssignment = append([]int(nil), assignment...)
}

func maxOf(xs []float64) float64 {
	m := xs[0]
	for _, x := range xs[1:] {
		if x > m {
			m = x
		}
	}

	return m
}

func sumOf(xs []float64) float64 {
	s := 0.0
	for _, x := range xs {
		s += x
	}

	return s
}

func (e *bbEngine) dfs(depth int) {
	if e.deadlineExceeded() {
		return
	}

	if depth == e.nNodes {
		z := maxOf(e.loads)
		e.recordIncumbent(z, e.assignment)

		return
	}

	lb := maxOf(e.loads)
	avg := (sumOf(e.loads) + e.suffixMinSum[depth]) / float64(e.nAgents)
	if avg > lb {
		lb = avg
	}
	if e.foundAny && lb >= e.bestZ-e.eps {
		return
	}

	node := e.order[depth]

	// Branch over agents in ascending current-load order so the first
	// descent reaches a good incumbent quickly (matches tsp/bb.go's
	// deterministic-neighbor-order-for-a-strong-first-incumbent idea).
	agentOrder := make([]int, e.nAgents)
	for a := range agentOrder {
		agentOrder[a] = a
	}
	sort.SliceStable(agentOrder, func(i, j int) bool {
		return e.loads[agentOrder[i]] < e.loads[agentOrder[j]]
	})

	for _, a := range agentOrder {
		newLoad := e.loads[a] + e.costs[a][node]
		if e.foundAny && newLoad >= e.bestZ-e.eps {
			continue
		}

		e.loads[a] = newLoad
		e.assignment[node] = a

		e.dfs(depth + 1)

		e.loads[a] -= e.costs[a][node]
		e.assignment[node] = -1
	}
}

// Assign partitions the nodes over the agents, minimizing the maximum
// per-agent total start-to-node distance.
//
// Complexity: worst case exponential in the number of nodes (exact
// branch-and-bound); the lower bound and incumbent pruning make it
// practical for the node counts a single survey decomposition produces.
func Assign(starts []geo.Point, centers []geo.Point, opts Options) (Result, error) {
	if len(starts) == 0 {
		return Result{}, ErrNoAgents
	}
	if len(centers) == 0 {
		return Result{}, ErrNoNodes
	}

	costs := make([][]float64, len(starts))
	for a, s := range starts {
		costs[a] = make([]float64, len(centers))
		for i, c := range centers {
			costs[a][i] = geo.Distance(s, c)
		}
	}

	e := newBBEngine(costs, opts)
	e.seedGreedy()
	e.dfs(0)

	if !e.foundAny {
		return Result{}, ErrInfeasible
	}

	out := make([][]int, len(starts))
	for i := range out {
		out[i] = []int{}
	}
	for node, a := range e.bestAssignment {
		out[a] = append(out[a], node)
	}
	for a := range out {
		sort.Ints(out[a])
	}

	return Result{Assignment: out, Z: e.bestZ}, nil
}
