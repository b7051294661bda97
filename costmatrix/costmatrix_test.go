package costmatrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/palebrook/covgrid/costmatrix"
	"github.com/palebrook/covgrid/decompose"
	"github.com/palebrook/covgrid/geo"
	"github.com/palebrook/covgrid/graphmodel"
)

func buildGraph(t *testing.T) (*graphmodel.NodeGraph, []int) {
	t.Helper()
	origin := geo.Point{Lat: 10, Lon: 20}
	square := geo.NewPolygon([]geo.Point{
		origin,
		geo.Destination(origin, 3, 90),
		geo.Destination(geo.Destination(origin, 3, 90), 3, 0),
		geo.Destination(origin, 3, 0),
	})
	cells, err := decompose.Decompose(geo.AreaSet{Areas: []geo.Polygon{square}}, decompose.Options{Dim: 1})
	require.NoError(t, err)

	g, err := graphmodel.NewNodeGraph(cells, 1)
	require.NoError(t, err)

	all := make([]int, g.VertexCount())
	for i := range all {
		all[i] = i
	}

	return g, all
}

func TestBuildRejectsTooFewNodes(t *testing.T) {
	g, nodes := buildGraph(t)
	_, err := costmatrix.Build(g, nodes[:1], costmatrix.DefaultOptions())
	require.ErrorIs(t, err, costmatrix.ErrEmptySubset)
}

func TestBuildForbidsNonAdjacentPairs(t *testing.T) {
	g, nodes := buildGraph(t)
	opts := costmatrix.DefaultOptions()
	opts.Dim = 1

	ten, err := costmatrix.Build(g, nodes, opts)
	require.NoError(t, err)

	foundForbidden := false
	for i := 0; i < ten.N; i++ {
		for j := 0; j < ten.N; j++ {
			if i == j {
				continue
			}
			if ten.IsForbidden(i, j) {
				foundForbidden = true
			}
		}
	}
	require.True(t, foundForbidden, "a 3x3 grid has non-adjacent (diagonal-skip) pairs")
}

func TestTurnZeroForCollinear(t *testing.T) {
	g, nodes := buildGraph(t)
	opts := costmatrix.DefaultOptions()
	opts.Dim = 1
	ten, err := costmatrix.Build(g, nodes, opts)
	require.NoError(t, err)

	// find three row-major-adjacent nodes 0,1,2 in the same row — a
	// straight run should have turn cost ~0.
	require.InDelta(t, 0.0, float64(ten.Turn(0, 1, 2)), 2)
}

func TestTurnIsSymmetricUnderReversal(t *testing.T) {
	g, nodes := buildGraph(t)
	opts := costmatrix.DefaultOptions()
	opts.Dim = 1
	ten, err := costmatrix.Build(g, nodes, opts)
	require.NoError(t, err)

	require.Equal(t, ten.Turn(0, 1, 2), ten.Turn(2, 1, 0))
}
