// Package search selects one of the four graph-search strategies by name.
//
// Breadth-first and depth-first search run through the uninformed package
// and ignore edge costs. Uniform-cost search and A* run through the informed
// package and return least-cost paths (A* needs an admissible heuristic).
//
//	st, _ := search.ParseStrategy("astar")
//	res, err := search.Solve(problem, st, heuristic.Manhattan)
//
// Solve accepts the same core.Option values as the underlying algorithms.
package search
