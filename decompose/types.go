package decompose

import (
	"errors"

	"github.com/palebrook/covgrid/geo"
)

// Sentinel errors for the decompose package.
var (
	// ErrNoAdmissibleCells indicates the scan produced zero nodes — the
	// inclusion polygon is too small for dim, or exclusions cover it
	// entirely.
	ErrNoAdmissibleCells = errors.New("decompose: no admissible cells")

	// ErrInvalidDim indicates a non-positive cell side was requested.
	ErrInvalidDim = errors.New("decompose: dim must be positive")
)

// Options configures the grid decomposition.
type Options struct {
	// Dim is the cell side length, in meters.
	Dim float64
}

// DefaultOptions returns the spec's default tuning: a 10 meter cell side.
func DefaultOptions() Options {
	return Options{Dim: 10}
}

// Cell is one square footprint of the decomposition grid, carrying its
// four corners and center in (lat,lon), plus its row-major grid position.
type Cell struct {
	Row, Col int

	SW, SE, NE, NW geo.Point
	Center         geo.Point
}
