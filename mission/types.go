package mission

import "errors"

// MAV command codes used by the waypoint DSL, for both reading the
// input mission's area/start declarations and writing a routed output
// mission.
const (
	CmdNavWaypoint       = 16
	CmdNavLand           = 21
	CmdNavReturnToLaunch = 20
	CmdNavTakeoff        = 22
)

// MinSupportedVersion is the lowest "QGC WPL <version>" this reader
// accepts. Below it, LoadMission returns ErrUnsupportedVersion, which
// the driver logs as a warning for a stale file instead of treating it
// as fatal.
const MinSupportedVersion = 110

// PointZone is the fixed waypoint acceptance radius, in meters, written
// to every emitted waypoint. TakeoffAltitude is the fixed takeoff/transit
// altitude. These match common QGroundControl defaults.
const (
	PointZone       = 2.0
	TakeoffAltitude = 30.0
)

// Sentinel errors for the mission package.
var (
	// ErrUnsupportedVersion indicates a mission file declares a version
	// below MinSupportedVersion. This is not a fatal error — the driver
	// logs a warning and performs no planning.
	ErrUnsupportedVersion = errors.New("mission: unsupported waypoint file version")

	// ErrMalformedHeader indicates the first line isn't "QGC WPL <n>".
	ErrMalformedHeader = errors.New("mission: malformed waypoint file header")

	// ErrMalformedLine indicates a waypoint line doesn't have the
	// expected tab-separated field count.
	ErrMalformedLine = errors.New("mission: malformed waypoint line")

	// ErrNoInclusionArea indicates the DSL walk found no
	// NAV_TAKEOFF/NAV_LAND ring at all.
	ErrNoInclusionArea = errors.New("mission: no inclusion area in input")

	// ErrUnclosedArea indicates a NAV_TAKEOFF with no matching NAV_LAND.
	ErrUnclosedArea = errors.New("mission: area opened but never closed")
)

// Waypoint is one line of a QGC WPL mission file.
type Waypoint struct {
	Seq          int
	Current      int
	Frame        int
	Command      int
	Param1       float64
	Param2       float64
	Param3       float64
	Param4       float64
	Lat          float64
	Lon          float64
	Alt          float64
	AutoContinue int
}

// File is a parsed QGC WPL mission file.
type File struct {
	Version   int
	Waypoints []Waypoint
}
