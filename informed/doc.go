// Package informed implements cost-aware graph search: uniform-cost search and
// A*, both driven by one loop over an indexed priority queue.
//
// What
//
//   - Search(p, h, opts...): best-first search by f(s) = g(s) + h(s).
//   - UCS(p, opts...):       Search with h ≡ 0.
//   - AStar(p, h, opts...):  Search with a caller-supplied heuristic.
//
// States are marked explored when they are popped, not when they are pushed,
// so a cheaper path found while a state is still queued can relax it:
// its parent and accumulated cost are rewritten and its priority is decreased
// in place (decrease-key). A strictly cheaper path to a state that already left
// the queue puts it back, which only happens with inconsistent heuristics.
//
// Tie-breaking
//
//	Equal priorities pop in push order (frontier.PriorityQueue), so identical
//	problems, heuristics and neighbor orders always expand the same states in
//	the same order.
//
// Optimality
//
//	UCS always returns a cheapest path. A* does so when h never overestimates
//	the remaining cost. Neither admissibility nor h >= 0 is checked: a bad
//	heuristic degrades the answer, it does not break termination on a finite
//	state space.
//
// Complexity (V = reachable states, E = transitions)
//
//   - Time:   O((V + E) log V) with a consistent heuristic.
//   - Memory: O(V).
//
// Errors
//
//   - core.ErrNilProblem, core.ErrNilHeuristic for missing inputs.
//   - core.ErrOptionViolation for invalid options.
//   - core.ErrExpansionLimit or ctx.Err() when interrupted.
package informed
