// Package puzzle models the sliding-tile puzzle (the 8-puzzle and its
// rectangular generalisations) as a core.Problem.
//
// A board of width×height cells holds the tiles 0..width*height-1, where 0 is
// the blank. A move slides the blank one cell North, South, East or West by
// swapping it with the neighbouring tile. The goal is the board whose tiles
// read 0, 1, 2, ... in row-major order:
//
//	  1 2
//	3 4 5
//	6 7 8
//
// State is an immutable value: every move returns a new State, and two States
// are == exactly when their layouts match, so a State can key maps directly.
//
// Half of all permutations cannot reach the goal. Solvable reports which half
// a board belongs to, and RandomSolvable only produces reachable boards.
// Random mirrors a plain shuffle and may produce an unsolvable board, for which
// every complete search reports "no path" after exhausting the reachable half.
package puzzle
