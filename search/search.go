package search

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/tilesearch/core"
	"github.com/katalvlaran/tilesearch/informed"
	"github.com/katalvlaran/tilesearch/uninformed"
)

// ErrUnknownStrategy is returned for a strategy name or value Solve cannot run.
var ErrUnknownStrategy = errors.New("search: unknown strategy")

// Strategy names a search algorithm.
type Strategy int

const (
	BreadthFirst Strategy = iota
	DepthFirst
	UniformCost
	AStar
)

var names = [...]string{
	BreadthFirst: "bfs",
	DepthFirst:   "dfs",
	UniformCost:  "ucs",
	AStar:        "astar",
}

// Strategies lists every strategy in declaration order.
func Strategies() []Strategy {
	return []Strategy{BreadthFirst, DepthFirst, UniformCost, AStar}
}

func (s Strategy) String() string {
	if s < 0 || int(s) >= len(names) {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}

	return names[s]
}

// Informed reports whether s orders its frontier by path cost.
func (s Strategy) Informed() bool { return s == UniformCost || s == AStar }

// ParseStrategy maps a case-insensitive name to a Strategy.
// "a*" and "uniform-cost" style aliases are accepted.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bfs", "breadth-first":
		return BreadthFirst, nil
	case "dfs", "depth-first":
		return DepthFirst, nil
	case "ucs", "uniform-cost", "dijkstra":
		return UniformCost, nil
	case "astar", "a*", "a-star":
		return AStar, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Solve runs strategy s on p. h is used by AStar only; a nil h makes AStar
// fail with core.ErrNilHeuristic.
func Solve[S comparable, A any](p core.Problem[S, A], s Strategy, h core.Heuristic[S], opts ...core.Option) (core.Result[S, A], error) {
	switch s {
	case BreadthFirst:
		return uninformed.BFS[S, A](p, opts...)
	case DepthFirst:
		return uninformed.DFS[S, A](p, opts...)
	case UniformCost:
		return informed.UCS[S, A](p, opts...)
	case AStar:
		return informed.AStar[S, A](p, h, opts...)
	default:
		return core.Result[S, A]{}, fmt.Errorf("%w: %s", ErrUnknownStrategy, s)
	}
}
