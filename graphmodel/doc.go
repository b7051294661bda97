// Package graphmodel is the node-adjacency graph over accepted cell
// centers. Edges are never added by a caller — they are derived
// automatically from the geometric adjacency predicate
// (0 < dist(i,j) <= (1+sqrt(2)/2)*dim), so the public surface is
// narrowed to construction and read-only queries.
package graphmodel
