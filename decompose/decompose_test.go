package decompose_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/palebrook/covgrid/decompose"
	"github.com/palebrook/covgrid/geo"
)

// square builds an axis-aligned (in the local frame) square ring of side
// meters, south-west corner at origin, in a small enough footprint that
// one degree of latitude/longitude offsets are linear.
func square(origin geo.Point, sideMeters float64) geo.Polygon {
	se := geo.Destination(origin, sideMeters, 90)
	nw := geo.Destination(origin, sideMeters, 0)
	ne := geo.Point{Lat: nw.Lat + (se.Lat - origin.Lat), Lon: se.Lon + (nw.Lon - origin.Lon)}

	return geo.NewPolygon([]geo.Point{origin, se, ne, nw})
}

func TestDecomposeUnitSquareNineCells(t *testing.T) {
	origin := geo.Point{Lat: 10, Lon: 20}
	areas := geo.AreaSet{Areas: []geo.Polygon{square(origin, 3)}}

	cells, err := decompose.Decompose(areas, decompose.Options{Dim: 1})
	require.NoError(t, err)
	require.Len(t, cells, 9)

	// row-major order: Row increases slower than Col, both start at 0.
	require.Equal(t, 0, cells[0].Row)
	require.Equal(t, 0, cells[0].Col)
	require.Equal(t, 0, cells[2].Row)
	require.Equal(t, 2, cells[2].Col)
	require.Equal(t, 1, cells[3].Row)
	require.Equal(t, 0, cells[3].Col)
}

func TestDecomposeRejectsCentralHole(t *testing.T) {
	origin := geo.Point{Lat: 10, Lon: 20}
	incl := square(origin, 5)
	holeOrigin := geo.Destination(geo.Destination(origin, 2, 90), 2, 0)
	hole := square(holeOrigin, 1)

	areas := geo.AreaSet{Areas: []geo.Polygon{incl, hole}}
	cells, err := decompose.Decompose(areas, decompose.Options{Dim: 1})
	require.NoError(t, err)
	require.Less(t, len(cells), 25)
}

func TestDecomposeInvalidDim(t *testing.T) {
	origin := geo.Point{Lat: 10, Lon: 20}
	areas := geo.AreaSet{Areas: []geo.Polygon{square(origin, 3)}}

	_, err := decompose.Decompose(areas, decompose.Options{Dim: 0})
	require.ErrorIs(t, err, decompose.ErrInvalidDim)
}

func TestDecomposeDeterministic(t *testing.T) {
	origin := geo.Point{Lat: 10, Lon: 20}
	areas := geo.AreaSet{Areas: []geo.Polygon{square(origin, 4)}}

	c1, err := decompose.Decompose(areas, decompose.Options{Dim: 1})
	require.NoError(t, err)
	c2, err := decompose.Decompose(areas, decompose.Options{Dim: 1})
	require.NoError(t, err)
	require.Equal(t, c1, c2)
}
