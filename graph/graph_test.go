package graph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilesearch/core"
	"github.com/katalvlaran/tilesearch/graph"
)

var _ core.Problem[string, string] = (*graph.Graph)(nil)

func TestAddEdge_Validation(t *testing.T) {
	g := graph.New()
	assert.True(t, errors.Is(g.AddEdge("", "B", 1), graph.ErrEmptyVertexID))
	assert.True(t, errors.Is(g.AddEdge("A", "B", -1), graph.ErrNegativeCost))
	assert.True(t, errors.Is(g.AddVertex(""), graph.ErrEmptyVertexID))
	assert.False(t, g.HasVertex("A"), "failed AddEdge must not create vertices")
}

func TestNeighbors_DirectedInsertionOrder(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddEdge("A", "C", 2))
	require.NoError(t, g.AddEdge("A", "B", 1))

	nbs := g.Neighbors("A")
	require.Len(t, nbs, 2)
	assert.Equal(t, "C", nbs[0].State)
	assert.Equal(t, "A->C", nbs[0].Action)
	assert.Equal(t, 2.0, nbs[0].Cost)
	assert.Equal(t, "B", nbs[1].State)
	assert.Empty(t, g.Neighbors("B"))
	assert.Empty(t, g.Neighbors("missing"))
	assert.Equal(t, []string{"A", "C", "B"}, g.Vertices())
}

func TestNeighbors_Undirected(t *testing.T) {
	g := graph.New(graph.WithDirected(false))
	require.NoError(t, g.AddEdge("A", "B", 4))
	require.NoError(t, g.AddEdge("A", "A", 1))

	back, err := g.Edges("B")
	require.NoError(t, err)
	require.Len(t, back, 1)
	assert.Equal(t, graph.Edge{From: "B", To: "A", Cost: 4}, back[0])

	loops, err := g.Edges("A")
	require.NoError(t, err)
	assert.Len(t, loops, 2, "self-loop is stored once")

	_, err = g.Edges("Z")
	assert.True(t, errors.Is(err, graph.ErrVertexNotFound))
}

func TestProblemContract(t *testing.T) {
	g := graph.New()
	g.SetStart("S")
	g.AddGoal("G2")
	g.AddGoal("G1")

	assert.Equal(t, "S", g.Initial())
	assert.True(t, g.IsGoal("G1"))
	assert.False(t, g.IsGoal("S"))
	assert.Equal(t, []string{"G1", "G2"}, g.Goals())

	h := graph.Heuristic(map[string]float64{"S": 3})
	assert.Equal(t, 3.0, h("S"))
	assert.Equal(t, 0.0, h("G1"))
}
