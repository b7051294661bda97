package mission

import "github.com/palebrook/covgrid/geo"

// EmitAgentMission converts a routed agent's tour into an ordered
// waypoint list:
//
//  1. a placeholder first waypoint at the depot (no command set),
//  2. a TAKEOFF at the depot,
//  3. one WAYPOINT per node in tour order, including the closing
//     return to the depot,
//  4. a LAND at the final node (the depot).
//
// orderedPoints must start at the depot and list the remaining n-1
// assigned nodes in tour order; it must not repeat the depot at the end.
func EmitAgentMission(orderedPoints []geo.Point) []Waypoint {
	depot := orderedPoints[0]

	wps := make([]Waypoint, 0, len(orderedPoints)+3)

	wps = append(wps, Waypoint{Param2: PointZone, Lat: depot.Lat, Lon: depot.Lon, AutoContinue: 1})

	wps = append(wps, Waypoint{
		Command: CmdNavTakeoff, Param2: PointZone,
		Lat: depot.Lat, Lon: depot.Lon, Alt: TakeoffAltitude,
		AutoContinue: 1,
	})

	for _, p := range orderedPoints[1:] {
		wps = append(wps, Waypoint{
			Command: CmdNavWaypoint, Param2: PointZone,
			Lat: p.Lat, Lon: p.Lon, Alt: TakeoffAltitude,
			AutoContinue: 1,
		})
	}

	wps = append(wps, Waypoint{
		Command: CmdNavWaypoint, Param2: PointZone,
		Lat: depot.Lat, Lon: depot.Lon, Alt: TakeoffAltitude,
		AutoContinue: 1,
	})

	wps = append(wps, Waypoint{
		Command: CmdNavLand, Param2: PointZone,
		Lat: depot.Lat, Lon: depot.Lon,
		AutoContinue: 1,
	})

	return wps
}
