// Package grid turns a rectangular map of weighted cells into a search problem.
//
// What:
//
//   - Grid wraps a [][]int of cell values. Values below the wall threshold
//     are walls; any other value is the cost of stepping onto that cell.
//   - Conn4 moves N, E, S, W; Conn8 adds the diagonals at √2 times the cost.
//   - Problem implements core.Problem[Cell, Direction] between a start and a
//     goal cell, with Manhattan and octile heuristics to drive A*.
//   - ConnectedComponents and Reachable label open regions, so an impossible
//     query can be rejected without a search.
//
// Maps can be written as text, one row per line or "/"-separated:
//
//	S..#
//	.#9.
//	...G
//
// where '#' is a wall, '.' costs 1, a digit costs its value, and S and G
// mark the start and goal (cost 1).
//
// Complexity:
//
//   - New, Parse:           O(W×H)
//   - ConnectedComponents:  O(W×H×d), d = 4 or 8
//   - Neighbors:            O(d)
package grid
