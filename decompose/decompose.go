package decompose

import (
	"math"

	"github.com/palebrook/covgrid/geo"
)

// Decompose tiles areas.Inclusion() into an (ny x nx) grid of side
// opts.Dim meters in the local tangent frame anchored at the inclusion
// polygon's south-west bounding corner, and returns the admissible cells
// in row-major order (Row outer, Col inner) — this fixes node indices and
// makes the result deterministic for identical inputs.
//
// Complexity: O(ny*nx*(V_incl + Σ V_excl)) for the admissibility scan.
func Decompose(areas geo.AreaSet, opts Options) ([]Cell, error) {
	if opts.Dim <= 0 {
		return nil, ErrInvalidDim
	}
	if err := areas.Validate(); err != nil {
		return nil, err
	}

	incl := areas.Inclusion()
	excl := areas.Exclusions()

	sw, se, nw := incl.BoundingBox()
	xHat := geo.InitialBearing(sw, se)
	yHat := geo.InitialBearing(sw, nw)

	distX := geo.Distance(sw, se)
	distY := geo.Distance(sw, nw)

	nx := int(math.Ceil(distX / opts.Dim))
	ny := int(math.Ceil(distY / opts.Dim))

	cells := make([]Cell, 0, ny*nx)
	for i := 0; i < ny; i++ {
		for j := 0; j < nx; j++ {
			cell := buildCell(sw, xHat, yHat, opts.Dim, i, j)
			if admissible(cell, incl, excl) {
				cells = append(cells, cell)
			}
		}
	}

	if len(cells) == 0 {
		return nil, ErrNoAdmissibleCells
	}

	return cells, nil
}

// buildCell composes the four corners and center of grid cell (row i,
// col j) by the planar offset-sum convention: corner = offset_x +
// offset_y - origin, treating (lat,lon) as planar within the
// local-frame footprint.
func buildCell(origin geo.Point, xHat, yHat, dim float64, i, j int) Cell {
	corner := func(dx, dy float64) geo.Point {
		ox := geo.Destination(origin, dx, xHat)
		oy := geo.Destination(origin, dy, yHat)

		return geo.Point{
			Lat: ox.Lat + oy.Lat - origin.Lat,
			Lon: ox.Lon + oy.Lon - origin.Lon,
		}
	}

	sw := corner(float64(j)*dim, float64(i)*dim)
	se := corner(float64(j+1)*dim, float64(i)*dim)
	nw := corner(float64(j)*dim, float64(i+1)*dim)
	ne := corner(float64(j+1)*dim, float64(i+1)*dim)
	center := corner((float64(j)+0.5)*dim, (float64(i)+0.5)*dim)

	return Cell{
		Row: i, Col: j,
		SW: sw, SE: se, NE: ne, NW: nw,
		Center: center,
	}
}

// admissible requires every corner inside incl, no corner inside any
// exclusion, and no cell edge bounded-intersects any polygon edge
// (inclusion or exclusion) — this is what rejects cells that merely
// straddle a boundary even when all four corners test "inside".
func admissible(cell Cell, incl geo.Polygon, excl []geo.Polygon) bool {
	corners := [4]geo.Point{cell.SW, cell.SE, cell.NE, cell.NW}

	for _, c := range corners {
		if !incl.Contains(c) {
			return false
		}
		for _, ex := range excl {
			if ex.Contains(c) {
				return false
			}
		}
	}

	cellEdges := [4][2]geo.Point{
		{cell.SW, cell.SE},
		{cell.SE, cell.NE},
		{cell.NE, cell.NW},
		{cell.NW, cell.SW},
	}

	polygons := make([]geo.Polygon, 0, len(excl)+1)
	polygons = append(polygons, incl)
	polygons = append(polygons, excl...)

	for _, poly := range polygons {
		for pe := 0; pe < poly.Len(); pe++ {
			a, b := poly.Edge(pe)
			for _, ce := range cellEdges {
				if geo.SegmentsIntersect(ce[0], ce[1], a, b) {
					return false
				}
			}
		}
	}

	return true
}
