// Package costmatrix builds the integer-scaled edge-cost and turn-cost
// tensors the router consumes: d[i][j] is a precomputed dense int64
// matrix; q[i][j][k] is computed on demand from the raw pairwise
// distances kept beside d rather than materialized as an n^3 tensor,
// since its value at any (i,j,k) is a pure function of the three
// pairwise distances.
package costmatrix
