// Package mission reads and writes QGC WPL waypoint files and
// implements a file-level DSL for encoding a survey's areas and agent
// starts as waypoint sequences: a NAV_TAKEOFF opens an area ring,
// subsequent waypoints are ring vertices, a NAV_LAND closes it; a
// NAV_RETURN_TO_LAUNCH declares an agent start. This package also emits
// one mission file per agent from a solved tour.
package mission
