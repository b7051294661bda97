package geo

// AreaSet is an ordered list of polygons. Index 0 is the survey boundary
// (inclusion); indices 1..k are exclusions.
type AreaSet struct {
	Areas []Polygon
}

// Inclusion returns the survey boundary polygon (index 0).
func (s AreaSet) Inclusion() Polygon { return s.Areas[0] }

// Exclusions returns the forbidden sub-region polygons (indices 1..k).
func (s AreaSet) Exclusions() []Polygon {
	if len(s.Areas) <= 1 {
		return nil
	}

	return s.Areas[1:]
}

// Validate checks the set's basic invariants: at least one polygon,
// non-degenerate rings, and a bounding-box diagonal within the
// local-frame planar-composition assumption.
func (s AreaSet) Validate() error {
	if len(s.Areas) == 0 {
		return ErrEmptyAreaSet
	}
	for _, a := range s.Areas {
		if a.Len() < 3 {
			return ErrDegenerateRing
		}
	}

	sw, se, nw := s.Inclusion().BoundingBox()
	diag := Distance(sw, Point{Lat: nw.Lat, Lon: se.Lon})
	if diag > MaxFootprintMeters {
		return ErrFootprintTooLarge
	}

	return nil
}
