// Package core defines the contract between a search domain and the search
// algorithms, and the bookkeeping the algorithms share.
//
// What
//
//   - Problem[S, A]: initial state, goal test and neighbor generation.
//   - Neighbor[S, A]: one transition (next state, action label, non-negative cost).
//   - Heuristic[S]: estimate of the remaining cost from a state to a goal.
//   - Tree[S, A]: arena of discovered states with parent links, accumulated
//     cost and depth; reconstructs the root-to-goal path.
//   - Result[S, A]: path, cost and exploration statistics of one search.
//   - Option: functional options shared by the uninformed and informed packages.
//
// States are any comparable type. Two states are the same state iff they are ==.
// Actions are opaque labels carried for path reconstruction only.
//
// Preconditions (not validated)
//
//   - Neighbor.Cost >= 0.
//   - Heuristic values are non-negative; admissibility is required only for
//     optimality, never for termination.
//
// Lifecycle
//
//	A Tree and every map behind it are created by a single search call and
//	released when that call returns. Nothing is shared across searches.
package core
