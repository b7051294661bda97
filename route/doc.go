// Package route finds, for one agent's assigned node subset, the
// Hamiltonian cycle through all nodes — starting and ending at the
// depot — that minimizes lambda*distance + gamma*turn-angle, subject to
// the hard constraint that every tour edge must be an admissible grid
// step.
//
// The solver is a visited-bitmask depth-first branch-and-bound: a
// degree-1 relaxation lower bound, deterministic neighbor branch order,
// incumbent pruning, and a soft deadline. Two points worth noting:
//
//   - the extension cost at each step folds in the turn-angle term
//     scored incrementally from the previous two path vertices, rather
//     than scoring distance alone — so no quadratic auxiliary variable
//     is ever needed: the search never represents x[i][j]*x[j][k] as a
//     materialized decision variable in the first place, it just
//     evaluates the turn cost between three fixed points as a plain
//     number while extending;
//   - subtour elimination is structural: a complete Hamiltonian cycle
//     built by DFS over a visited bitmask cannot contain a subtour by
//     construction, no auxiliary rank variables required.
package route
