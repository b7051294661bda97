package route_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/palebrook/covgrid/costmatrix"
	"github.com/palebrook/covgrid/decompose"
	"github.com/palebrook/covgrid/geo"
	"github.com/palebrook/covgrid/graphmodel"
	"github.com/palebrook/covgrid/route"
)

func buildSquareTensors(t *testing.T, side, dim float64) (*costmatrix.Tensors, []geo.Point, geo.Point) {
	t.Helper()
	origin := geo.Point{Lat: 10, Lon: 20}
	square := geo.NewPolygon([]geo.Point{
		origin,
		geo.Destination(origin, side, 90),
		geo.Destination(geo.Destination(origin, side, 90), side, 0),
		geo.Destination(origin, side, 0),
	})
	cells, err := decompose.Decompose(geo.AreaSet{Areas: []geo.Polygon{square}}, decompose.Options{Dim: dim})
	require.NoError(t, err)

	g, err := graphmodel.NewNodeGraph(cells, dim)
	require.NoError(t, err)

	nodes := make([]int, g.VertexCount())
	centers := make([]geo.Point, g.VertexCount())
	for i := range nodes {
		nodes[i] = i
		centers[i] = g.Center(i)
	}

	opts := costmatrix.DefaultOptions()
	opts.Dim = dim
	ten, err := costmatrix.Build(g, nodes, opts)
	require.NoError(t, err)

	return ten, centers, origin
}

func TestSolveClosedTourVisitsEveryNode(t *testing.T) {
	ten, centers, origin := buildSquareTensors(t, 3, 1)
	depot := route.SelectDepot(origin, centers)

	result, err := route.Solve(depot, ten, route.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, depot, result.Depot)

	visited := map[int]bool{}
	cur := depot
	for i := 0; i < ten.N; i++ {
		require.False(t, visited[cur], "node %d visited twice", cur)
		visited[cur] = true
		cur = result.Tour[cur]
	}
	require.Equal(t, depot, cur, "cycle must return to depot after n steps")
	require.Len(t, visited, ten.N)
}

func TestSolveEveryEdgeAdmissible(t *testing.T) {
	ten, centers, origin := buildSquareTensors(t, 3, 1)
	depot := route.SelectDepot(origin, centers)

	result, err := route.Solve(depot, ten, route.DefaultOptions())
	require.NoError(t, err)

	cur := depot
	for i := 0; i < ten.N; i++ {
		next := result.Tour[cur]
		require.False(t, ten.IsForbidden(cur, next), "edge %d->%d must be admissible", cur, next)
		cur = next
	}
}

func TestSelectDepotPicksClosest(t *testing.T) {
	_, centers, origin := buildSquareTensors(t, 3, 1)
	depot := route.SelectDepot(origin, centers)

	bestDist := geo.Distance(origin, centers[depot])
	for i, c := range centers {
		require.GreaterOrEqual(t, geo.Distance(origin, c), bestDist-1e-9, "node %d closer than selected depot", i)
	}
}
