package plan_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/palebrook/covgrid/geo"
	"github.com/palebrook/covgrid/plan"
)

func unitSquare(origin geo.Point, side float64) geo.Polygon {
	se := geo.Destination(origin, side, 90)
	nw := geo.Destination(origin, side, 0)
	ne := geo.Point{Lat: nw.Lat + (se.Lat - origin.Lat), Lon: se.Lon + (nw.Lon - origin.Lon)}

	return geo.NewPolygon([]geo.Point{origin, se, ne, nw})
}

func TestRunUnitSquareSingleAgent(t *testing.T) {
	origin := geo.Point{Lat: 10, Lon: 20}
	areas := geo.AreaSet{Areas: []geo.Polygon{unitSquare(origin, 3)}}

	opts := plan.DefaultOptions()
	opts.Dim = 1

	result, err := plan.Run(context.Background(), areas, []geo.Point{origin}, opts, nil)
	require.NoError(t, err)
	require.Len(t, result.Agents, 1)

	agent := result.Agents[0]
	require.Len(t, agent.Ordered, 9)
	require.GreaterOrEqual(t, agent.Stats.TotalDistance, 8.0)
	require.LessOrEqual(t, agent.Stats.TotalDistance, 12.0)
}

func TestRunTwoAgentsBalanced(t *testing.T) {
	origin := geo.Point{Lat: 10, Lon: 20}
	areas := geo.AreaSet{Areas: []geo.Polygon{unitSquare(origin, 4)}}
	opposite := geo.Destination(geo.Destination(origin, 4, 90), 4, 0)

	opts := plan.DefaultOptions()
	opts.Dim = 1

	result, err := plan.Run(context.Background(), areas, []geo.Point{origin, opposite}, opts, nil)
	require.NoError(t, err)
	require.Len(t, result.Agents, 2)

	total := 0
	for _, a := range result.Agents {
		total += len(a.Ordered)
	}
	require.Equal(t, 16, total)

	// symmetric starts at opposite corners should produce a roughly
	// balanced split.
	diff := len(result.Agents[0].Ordered) - len(result.Agents[1].Ordered)
	if diff < 0 {
		diff = -diff
	}
	require.LessOrEqual(t, diff, 2)
}

func TestRunConcurrentMatchesSequential(t *testing.T) {
	origin := geo.Point{Lat: 10, Lon: 20}
	areas := geo.AreaSet{Areas: []geo.Polygon{unitSquare(origin, 4)}}
	opposite := geo.Destination(geo.Destination(origin, 4, 90), 4, 0)
	starts := []geo.Point{origin, opposite}

	optsSeq := plan.DefaultOptions()
	optsSeq.Dim = 1
	seq, err := plan.Run(context.Background(), areas, starts, optsSeq, nil)
	require.NoError(t, err)

	optsConc := optsSeq
	optsConc.Concurrency = 4
	conc, err := plan.Run(context.Background(), areas, starts, optsConc, nil)
	require.NoError(t, err)

	require.Equal(t, len(seq.Agents[0].Ordered), len(conc.Agents[0].Ordered))
	require.Equal(t, len(seq.Agents[1].Ordered), len(conc.Agents[1].Ordered))
}
