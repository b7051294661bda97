package geo

// Polygon is an ordered ring of points, stored canonically — the first
// point is NOT duplicated as the last. Wrap-around is handled implicitly
// by At and by the edge iteration helpers below.
type Polygon struct {
	Points []Point
}

// NewPolygon builds a Polygon from a ring of points. If the caller passed
// a closed ring (first point repeated as last, as QGC waypoint files
// naturally produce via the NAV_TAKEOFF/NAV_LAND DSL), the trailing
// duplicate is dropped.
func NewPolygon(points []Point) Polygon {
	n := len(points)
	if n >= 2 && points[0] == points[n-1] {
		points = points[:n-1]
	}

	return Polygon{Points: append([]Point(nil), points...)}
}

// Len returns the number of distinct vertices in the ring.
func (p Polygon) Len() int { return len(p.Points) }

// At returns vertex i, wrapping modulo Len.
func (p Polygon) At(i int) Point {
	n := len(p.Points)

	return p.Points[((i%n)+n)%n]
}

// Edge returns the i-th edge of the ring, (At(i), At(i+1)).
func (p Polygon) Edge(i int) (Point, Point) {
	return p.At(i), p.At(i + 1)
}

// BoundingBox returns the axis-aligned (lat,lon) bounding rectangle's
// south-west, south-east, and north-west corners.
func (p Polygon) BoundingBox() (sw, se, nw Point) {
	minLat, maxLat := p.Points[0].Lat, p.Points[0].Lat
	minLon, maxLon := p.Points[0].Lon, p.Points[0].Lon
	for _, pt := range p.Points[1:] {
		if pt.Lat < minLat {
			minLat = pt.Lat
		}
		if pt.Lat > maxLat {
			maxLat = pt.Lat
		}
		if pt.Lon < minLon {
			minLon = pt.Lon
		}
		if pt.Lon > maxLon {
			maxLon = pt.Lon
		}
	}

	sw = Point{Lat: minLat, Lon: minLon}
	se = Point{Lat: minLat, Lon: maxLon}
	nw = Point{Lat: maxLat, Lon: minLon}

	return sw, se, nw
}

// Contains reports whether pt lies inside the ring under the odd-even
// (even-odd) fill rule. Points exactly on an edge are not guaranteed
// either way by this test alone — admissibility callers must also run
// SegmentsIntersect against the ring's edges to reject boundary-touching
// cells.
//
// Complexity: O(Len()).
func (p Polygon) Contains(pt Point) bool {
	n := p.Len()
	inside := false
	for i := 0; i < n; i++ {
		a, b := p.Edge(i)
		if (a.Lat > pt.Lat) != (b.Lat > pt.Lat) {
			// x-intersection of the edge with the horizontal line at pt.Lat
			lonAtLat := a.Lon + (pt.Lat-a.Lat)/(b.Lat-a.Lat)*(b.Lon-a.Lon)
			if pt.Lon < lonAtLat {
				inside = !inside
			}
		}
	}

	return inside
}

// SegmentsIntersect reports whether segment (a1,a2) bounded-intersects
// segment (b1,b2), matching Qt's QLineF::BoundedIntersection: the two
// segments' underlying infinite lines intersect at a single point, and
// that point lies within both segments' parameter ranges including
// their endpoints — so one segment's endpoint touching the interior of
// the other still counts as an intersection, rejecting a cell edge that
// merely touches a polygon edge.
//
// Parallel segments — including the collinear-overlapping case that
// occurs when a cell's outer edge runs flush along the inclusion
// boundary — have no single intersection point and are reported as
// non-intersecting, exactly as BoundedIntersection does for parallel
// lines.
func SegmentsIntersect(a1, a2, b1, b2 Point) bool {
	rLat, rLon := a2.Lat-a1.Lat, a2.Lon-a1.Lon
	sLat, sLon := b2.Lat-b1.Lat, b2.Lon-b1.Lon

	denom := rLat*sLon - rLon*sLat
	if denom == 0 {
		return false
	}

	dLat, dLon := b1.Lat-a1.Lat, b1.Lon-a1.Lon
	t := (dLat*sLon - dLon*sLat) / denom
	u := (dLat*rLon - dLon*rLat) / denom

	return t >= 0 && t <= 1 && u >= 0 && u <= 1
}
