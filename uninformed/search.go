package uninformed

import (
	"github.com/katalvlaran/tilesearch/core"
	"github.com/katalvlaran/tilesearch/frontier"
)

// Option is an alias of core.Option so callers need not import core for options.
type Option = core.Option

// BFS runs breadth-first search on p.
func BFS[S comparable, A any](p core.Problem[S, A], opts ...Option) (core.Result[S, A], error) {
	return Search[S, A](p, frontier.NewQueue[int](), prepend(core.WithLabel("bfs"), opts)...)
}

// DFS runs depth-first search on p.
func DFS[S comparable, A any](p core.Problem[S, A], opts ...Option) (core.Result[S, A], error) {
	return Search[S, A](p, frontier.NewStack[int](), prepend(core.WithLabel("dfs"), opts)...)
}

// prepend puts the default label first so a caller-supplied WithLabel wins.
func prepend(first Option, rest []Option) []Option {
	return append([]Option{first}, rest...)
}
