package informed_test

import (
	"fmt"

	"github.com/katalvlaran/tilesearch/graph"
	"github.com/katalvlaran/tilesearch/heuristic"
	"github.com/katalvlaran/tilesearch/informed"
	"github.com/katalvlaran/tilesearch/puzzle"
)

// ExampleUCS prefers three cheap edges over one expensive shortcut.
func ExampleUCS() {
	g := graph.New()
	_ = g.AddEdge("S", "G", 10)
	_ = g.AddEdge("S", "A", 1)
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "G", 1)
	g.SetStart("S")
	g.AddGoal("G")

	res, err := informed.UCS[string, string](g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.States, res.Cost)
	// Output: [S A B G] 3
}

// ExampleAStar solves an 8-puzzle guided by the Manhattan distance.
func ExampleAStar() {
	p := puzzle.NewProblem(puzzle.MustParse("1 4 2/3 0 5/6 7 8"))

	res, err := informed.AStar[puzzle.State, puzzle.Move](p, heuristic.Manhattan)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("moves=%s explored=%d\n", puzzle.FormatMoves(res.Actions), res.Explored)
	// Output: moves=NW explored=3
}
