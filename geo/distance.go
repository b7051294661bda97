package geo

import "math"

// toRad converts degrees to radians.
func toRad(deg float64) float64 { return deg * math.Pi / 180.0 }

// toDeg converts radians to degrees.
func toDeg(rad float64) float64 { return rad * 180.0 / math.Pi }

// Distance returns the great-circle distance between a and b, in meters.
//
// Uses the haversine formula. Complexity: O(1).
func Distance(a, b Point) float64 {
	lat1, lat2 := toRad(a.Lat), toRad(b.Lat)
	dLat := toRad(b.Lat - a.Lat)
	dLon := toRad(b.Lon - a.Lon)

	sinDLat := math.Sin(dLat / 2)
	sinDLon := math.Sin(dLon / 2)
	h := sinDLat*sinDLat + math.Cos(lat1)*math.Cos(lat2)*sinDLon*sinDLon
	// Clamp for numerical safety near antipodal points (not expected at
	// survey-footprint scale, but cheap to guard).
	if h > 1 {
		h = 1
	} else if h < 0 {
		h = 0
	}

	return 2 * earthRadiusMeters * math.Asin(math.Sqrt(h))
}

// InitialBearing returns the initial bearing from a to b, in degrees
// clockwise from true north, in [0, 360).
//
// Complexity: O(1).
func InitialBearing(a, b Point) float64 {
	lat1, lat2 := toRad(a.Lat), toRad(b.Lat)
	dLon := toRad(b.Lon - a.Lon)

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)
	theta := math.Atan2(y, x)

	deg := math.Mod(toDeg(theta)+360.0, 360.0)

	return deg
}

// Destination returns the point that lies distMeters from origin along
// bearingDeg (degrees clockwise from true north).
//
// Complexity: O(1).
func Destination(origin Point, distMeters, bearingDeg float64) Point {
	lat1 := toRad(origin.Lat)
	lon1 := toRad(origin.Lon)
	brng := toRad(bearingDeg)
	delta := distMeters / earthRadiusMeters

	lat2 := math.Asin(math.Sin(lat1)*math.Cos(delta) + math.Cos(lat1)*math.Sin(delta)*math.Cos(brng))
	lon2 := lon1 + math.Atan2(
		math.Sin(brng)*math.Sin(delta)*math.Cos(lat1),
		math.Cos(delta)-math.Sin(lat1)*math.Sin(lat2),
	)

	return Point{Lat: toDeg(lat2), Lon: toDeg(lon2)}
}
