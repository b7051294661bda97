package geo

import "errors"

// Sentinel errors for geo operations.
var (
	// ErrDegenerateRing indicates a polygon with fewer than 3 distinct points.
	ErrDegenerateRing = errors.New("geo: ring has fewer than 3 points")

	// ErrEmptyAreaSet indicates an AreaSet with no inclusion polygon.
	ErrEmptyAreaSet = errors.New("geo: area set has no inclusion polygon")

	// ErrFootprintTooLarge indicates a bounding box diagonal beyond the
	// planar-composition validity assumption documented in doc.go.
	ErrFootprintTooLarge = errors.New("geo: survey footprint exceeds local-frame assumption")
)

// Epsilon is the tolerance, in meters, used consistently wherever the
// adjacency bound (1+√2/2)*dim is compared against a measured distance —
// in node-graph adjacency, router forbidden-edge detection, and audit —
// so no stage disagrees with another at exactly the diagonal length.
const Epsilon = 1e-6

// MaxFootprintMeters bounds the bounding-box diagonal of the inclusion
// polygon for which the local tangent-frame planar coordinate sum
// (decompose's corner = offsetX + offsetY - origin composition) remains
// valid to sub-meter accuracy.
const MaxFootprintMeters = 5000.0

// earthRadiusMeters is the mean earth radius used by the great-circle
// distance/bearing/destination formulas below.
const earthRadiusMeters = 6371008.8

// Point is a location on the WGS-84 ellipsoid, approximated as a sphere
// of radius earthRadiusMeters for distance/bearing/offset purposes.
type Point struct {
	Lat float64 // degrees
	Lon float64 // degrees
}
