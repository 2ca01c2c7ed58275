// Package uninformed implements graph search that ignores edge costs and
// orders expansion purely by the frontier's discipline.
//
// What
//
//   - Search(p, f, opts...): one graph-search loop over any frontier.Frontier.
//   - BFS(p, opts...):       Search with a FIFO queue (breadth-first).
//   - DFS(p, opts...):       Search with a LIFO stack (depth-first).
//
// States are marked explored when they are generated (pushed), not when they
// are popped. Each state therefore enters the frontier at most once, and its
// parent link is written exactly once: the first discovery wins.
//
// Optimality
//
//	BFS returns a path with the fewest edges. That is the cheapest path only
//	when every step costs the same, as in the sliding-tile puzzle. DFS gives no
//	optimality guarantee. Result.Cost still reports the sum of edge costs
//	along whatever path was found.
//
// Complexity (V = reachable states, E = transitions among them)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the frontier and the search tree.
//
// Errors
//
//   - core.ErrNilProblem, core.ErrNilFrontier for missing inputs.
//   - core.ErrOptionViolation for invalid options.
//   - core.ErrExpansionLimit or ctx.Err() when interrupted; the partial
//     Result still carries Explored and MaxDepth.
//
// "No path" is not an error: Result.Found is false and the path is empty.
package uninformed
