package grid

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tilesearch/core"
)

// Problem asks for a path from Start to Goal on a Grid.
type Problem struct {
	grid        *Grid
	start, goal Cell
}

// NewProblem checks that both ends are passable.
func NewProblem(g *Grid, start, goal Cell) (*Problem, error) {
	for _, c := range []Cell{start, goal} {
		if !g.Passable(c) {
			return nil, fmt.Errorf("%w: %s", ErrBlocked, c)
		}
	}

	return &Problem{grid: g, start: start, goal: goal}, nil
}

func (p *Problem) Grid() *Grid { return p.grid }

func (p *Problem) Goal() Cell { return p.goal }

func (p *Problem) Initial() Cell { return p.start }

func (p *Problem) IsGoal(c Cell) bool { return c == p.goal }

func (p *Problem) Neighbors(c Cell) []core.Neighbor[Cell, Direction] {
	return p.grid.Neighbors(c)
}

// Solvable reports whether the goal lies in the start's component.
func (p *Problem) Solvable() bool { return p.grid.Reachable(p.start, p.goal) }

// Manhattan estimates |dx|+|dy| to the goal. Every passable cell costs at
// least 1, so it never overestimates on a Conn4 grid.
func (p *Problem) Manhattan() core.Heuristic[Cell] {
	goal := p.goal
	return func(c Cell) float64 {
		return float64(abs(c.X-goal.X) + abs(c.Y-goal.Y))
	}
}

// Octile estimates the cost of the straight-then-diagonal route to the goal;
// it is the admissible counterpart of Manhattan on a Conn8 grid.
func (p *Problem) Octile() core.Heuristic[Cell] {
	goal := p.goal
	return func(c Cell) float64 {
		dx, dy := abs(c.X-goal.X), abs(c.Y-goal.Y)
		return float64(dx+dy) + (math.Sqrt2-2)*float64(min(dx, dy))
	}
}

// Heuristic returns Manhattan or Octile to match the grid's connectivity.
func (p *Problem) Heuristic() core.Heuristic[Cell] {
	if p.grid.conn == Conn8 {
		return p.Octile()
	}

	return p.Manhattan()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
