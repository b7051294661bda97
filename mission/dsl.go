package mission

import "github.com/palebrook/covgrid/geo"

// ParseAreasAndStarts walks f's waypoints: a NAV_TAKEOFF opens an area
// ring whose first vertex is the takeoff point itself; every subsequent
// waypoint (including the NAV_LAND waypoint's own point) is appended as
// a ring vertex; the ring closes when a NAV_LAND is reached. A
// NAV_RETURN_TO_LAUNCH waypoint declares one agent start at its (lat,lon).
//
// The first ring encountered is the inclusion polygon; subsequent rings
// are exclusions.
func ParseAreasAndStarts(f File) (geo.AreaSet, []geo.Point, error) {
	var areas geo.AreaSet
	var starts []geo.Point

	wps := f.Waypoints
	i := 0
	for i < len(wps) {
		switch wps[i].Command {
		case CmdNavTakeoff:
			ring := []geo.Point{{Lat: wps[i].Lat, Lon: wps[i].Lon}}
			j := i + 1
			closed := false
			for ; j < len(wps); j++ {
				ring = append(ring, geo.Point{Lat: wps[j].Lat, Lon: wps[j].Lon})
				if wps[j].Command == CmdNavLand {
					closed = true
					break
				}
			}
			if !closed {
				return geo.AreaSet{}, nil, ErrUnclosedArea
			}
			areas.Areas = append(areas.Areas, geo.NewPolygon(ring))
			i = j + 1

		case CmdNavReturnToLaunch:
			starts = append(starts, geo.Point{Lat: wps[i].Lat, Lon: wps[i].Lon})
			i++

		default:
			i++
		}
	}

	if len(areas.Areas) == 0 {
		return geo.AreaSet{}, nil, ErrNoInclusionArea
	}

	return areas, starts, nil
}
