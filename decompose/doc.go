// Package decompose tiles a survey area into a grid of admissible square
// cells in a local tangent frame anchored at the inclusion polygon's
// south-west bounding corner.
//
// The grid model is a row-major (ny x nx) scan where each cell is
// tagged admissible or not, then only the admissible cells survive as
// graph nodes. Row-major iteration (i outer over rows, j inner over
// columns) fixes node order and makes Decompose deterministic for a
// given input.
package decompose
