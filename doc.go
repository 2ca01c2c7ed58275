// Package tilesearch is a small generic graph-search engine and a
// sliding-tile puzzle to drive it.
//
// Four strategies are built on two algorithms:
//
//	uninformed/  breadth-first and depth-first search over a Stack or Queue
//	informed/    uniform-cost search and A* over an indexed priority queue
//	search/      pick a strategy by name and run it
//
// Any type implementing core.Problem can be searched; states only need to be
// comparable. The supporting packages are:
//
//	core/       Problem, Result, the search tree and shared options
//	frontier/   Stack, Queue and PriorityQueue
//	puzzle/     the N-puzzle board, moves, generation and solvability
//	heuristic/  Manhattan, Euclidean, misplaced-tiles and zero estimates
//	graph/      an explicit weighted digraph, handy for tests and demos
//	grid/       weighted 2D maps with 4- or 8-directional moves
//	visual/     terminal and websocket replay of a solution
//	logging/    slog-backed Logger used by the searches and the CLI
//
// The tilesearch command (cmd/tilesearch) exposes solve, serve, bench and maze.
//
//	$ tilesearch solve -board "1 4 2/3 0 5/6 7 8" -strategy astar
//	$ tilesearch bench -width 3 -height 3 -seed 42
package tilesearch
