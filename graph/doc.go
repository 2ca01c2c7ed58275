// Package graph provides an explicit, in-memory weighted graph that can be
// searched directly: it implements core.Problem[string, string].
//
// Vertices are identified by non-empty strings. Edges carry a non-negative
// float64 cost. By default edges are directed; WithDirected(false) adds the
// reverse edge too. Neighbors are returned in the order the edges were added,
// which makes every search over a Graph reproducible.
//
// A Graph is the natural domain for exercising cost-sensitive behaviour that
// the unit-cost sliding-tile puzzle cannot show: uniform-cost search picking a
// longer-but-cheaper route, A* with an inconsistent heuristic, dead ends and
// unreachable goals.
//
// Example:
//
//	g := graph.New()
//	_ = g.AddEdge("S", "A", 1)
//	_ = g.AddEdge("A", "G", 1)
//	_ = g.AddEdge("S", "G", 5)
//	g.SetStart("S")
//	g.AddGoal("G")
//	res, _ := informed.UCS[string, string](g)
//	// res.States == [S A G], res.Cost == 2
//
// A Graph is safe for concurrent reads and writes; searches only read it.
package graph
