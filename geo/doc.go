// Package geo provides WGS-84 geodesic primitives — points, polygons, and
// the bounded-intersection test — used by the decomposer to tile a survey
// area and reject cells that touch its boundary or an exclusion.
//
// Distances and bearings use the mean-earth-radius great-circle
// approximation (the same model Qt's QGeoCoordinate uses for
// distanceTo/azimuthTo/atDistanceAndAzimuth), which is accurate to
// sub-meter error over the few-kilometer footprints this package assumes.
// Larger footprints should use a full ellipsoidal geodesic (Vincenty) —
// out of scope here; see Epsilon and the bounding-box sanity check in
// AreaSet.Validate.
package geo
