package grid_test

import (
	"fmt"

	"github.com/katalvlaran/tilesearch/grid"
	"github.com/katalvlaran/tilesearch/informed"
)

// ExampleProblem routes around an expensive cell with A*.
func ExampleProblem() {
	g, start, goal, err := grid.Parse("S9G/...", grid.Conn4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	p, _ := grid.NewProblem(g, start, goal)

	res, _ := informed.AStar[grid.Cell, grid.Direction](p, p.Heuristic())
	fmt.Println(res.Actions, res.Cost)
	fmt.Println(g.Render(res.States))
	// Output:
	// [S E E N] 4
	// S9G
	// ***
}
