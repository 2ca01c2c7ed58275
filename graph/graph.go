package graph

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/katalvlaran/tilesearch/core"
)

// Sentinel errors for graph construction.
var (
	// ErrEmptyVertexID indicates an empty vertex ID.
	ErrEmptyVertexID = errors.New("graph: vertex ID is empty")

	// ErrNegativeCost indicates an edge with a negative cost.
	ErrNegativeCost = errors.New("graph: edge cost is negative")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("graph: vertex not found")
)

// Edge is one outgoing transition.
type Edge struct {
	From string
	To   string
	Cost float64
}

// Action returns the label used for e in search results: "from->to".
func (e Edge) Action() string { return e.From + "->" + e.To }

// Option configures a Graph before creation.
type Option func(*Graph)

// WithDirected sets whether AddEdge creates one-way edges (true, default) or
// two-way edges (false).
func WithDirected(directed bool) Option {
	return func(g *Graph) { g.directed = directed }
}

// Graph is a weighted graph with a designated start vertex and goal set.
type Graph struct {
	mu       sync.RWMutex
	directed bool
	order    []string          // vertices in insertion order
	adj      map[string][]Edge // vertex → outgoing edges in insertion order
	start    string
	goals    map[string]struct{}
}

// New creates an empty directed Graph.
func New(opts ...Option) *Graph {
	g := &Graph{
		directed: true,
		adj:      make(map[string][]Edge),
		goals:    make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// AddVertex adds id if it does not exist yet.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id)

	return nil
}

func (g *Graph) addVertexLocked(id string) {
	if _, ok := g.adj[id]; ok {
		return
	}
	g.adj[id] = nil
	g.order = append(g.order, id)
}

// AddEdge adds an edge from→to with the given cost, creating missing vertices.
// On an undirected graph the reverse edge is added as well.
func (g *Graph) AddEdge(from, to string, cost float64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if cost < 0 {
		return fmt.Errorf("%w: %s->%s cost=%g", ErrNegativeCost, from, to, cost)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(from)
	g.addVertexLocked(to)
	g.adj[from] = append(g.adj[from], Edge{From: from, To: to, Cost: cost})
	if !g.directed && from != to {
		g.adj[to] = append(g.adj[to], Edge{From: to, To: from, Cost: cost})
	}

	return nil
}

// SetStart designates the initial vertex, creating it if needed.
func (g *Graph) SetStart(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id)
	g.start = id
}

// AddGoal marks id as a goal vertex, creating it if needed.
func (g *Graph) AddGoal(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id)
	g.goals[id] = struct{}{}
}

// HasVertex reports whether id exists.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adj[id]

	return ok
}

// Vertices returns the vertex IDs in insertion order.
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return append([]string(nil), g.order...)
}

// Goals returns the goal IDs sorted lexicographically.
func (g *Graph) Goals() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, 0, len(g.goals))
	for id := range g.goals {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Edges returns the outgoing edges of id in insertion order.
func (g *Graph) Edges(id string) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	edges, ok := g.adj[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return append([]Edge(nil), edges...), nil
}

// Initial implements core.Problem.
func (g *Graph) Initial() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.start
}

// IsGoal implements core.Problem.
func (g *Graph) IsGoal(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.goals[id]

	return ok
}

// Neighbors implements core.Problem. Unknown vertices have no neighbors.
func (g *Graph) Neighbors(id string) []core.Neighbor[string, string] {
	g.mu.RLock()
	defer g.mu.RUnlock()
	edges := g.adj[id]
	out := make([]core.Neighbor[string, string], 0, len(edges))
	for _, e := range edges {
		out = append(out, core.Neighbor[string, string]{State: e.To, Action: e.Action(), Cost: e.Cost})
	}

	return out
}

// Heuristic builds a core.Heuristic from a table of estimates.
// Vertices missing from the table get 0.
func Heuristic(table map[string]float64) core.Heuristic[string] {
	return func(id string) float64 { return table[id] }
}
