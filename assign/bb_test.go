package assign_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/palebrook/covgrid/assign"
	"github.com/palebrook/covgrid/decompose"
	"github.com/palebrook/covgrid/geo"
)

func TestAssignRejectsEmptyInputs(t *testing.T) {
	_, err := assign.Assign(nil, []geo.Point{{}}, assign.DefaultOptions())
	require.ErrorIs(t, err, assign.ErrNoAgents)

	_, err = assign.Assign([]geo.Point{{}}, nil, assign.DefaultOptions())
	require.ErrorIs(t, err, assign.ErrNoNodes)
}

func TestAssignCoversEveryNodeExactlyOnce(t *testing.T) {
	origin := geo.Point{Lat: 10, Lon: 20}
	square := geo.NewPolygon([]geo.Point{
		origin,
		geo.Destination(origin, 4, 90),
		geo.Destination(geo.Destination(origin, 4, 90), 4, 0),
		geo.Destination(origin, 4, 0),
	})
	cells, err := decompose.Decompose(geo.AreaSet{Areas: []geo.Polygon{square}}, decompose.Options{Dim: 1})
	require.NoError(t, err)

	centers := make([]geo.Point, len(cells))
	for i, c := range cells {
		centers[i] = c.Center
	}

	starts := []geo.Point{origin, geo.Destination(geo.Destination(origin, 4, 90), 4, 0)}

	result, err := assign.Assign(starts, centers, assign.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, result.Assignment, 2)

	seen := make(map[int]bool)
	for _, subset := range result.Assignment {
		for _, node := range subset {
			require.False(t, seen[node], "node %d assigned twice", node)
			seen[node] = true
		}
	}
	require.Len(t, seen, len(centers))

	// symmetric starts at opposite corners should produce a roughly
	// balanced split.
	diff := len(result.Assignment[0]) - len(result.Assignment[1])
	if diff < 0 {
		diff = -diff
	}
	require.LessOrEqual(t, diff, 2)
}

func TestAssignWithinSubsetOrderIsAscending(t *testing.T) {
	origin := geo.Point{Lat: 10, Lon: 20}
	square := geo.NewPolygon([]geo.Point{
		origin,
		geo.Destination(origin, 2, 90),
		geo.Destination(geo.Destination(origin, 2, 90), 2, 0),
		geo.Destination(origin, 2, 0),
	})
	cells, err := decompose.Decompose(geo.AreaSet{Areas: []geo.Polygon{square}}, decompose.Options{Dim: 1})
	require.NoError(t, err)

	centers := make([]geo.Point, len(cells))
	for i, c := range cells {
		centers[i] = c.Center
	}

	result, err := assign.Assign([]geo.Point{origin}, centers, assign.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, result.Assignment, 1)

	subset := result.Assignment[0]
	for i := 1; i < len(subset); i++ {
		require.Less(t, subset[i-1], subset[i])
	}
}
