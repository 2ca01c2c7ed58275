package uninformed

import (
	"github.com/katalvlaran/tilesearch/core"
	"github.com/katalvlaran/tilesearch/frontier"
)

// walker holds the mutable state of one uninformed search.
type walker[S comparable, A any] struct {
	problem  core.Problem[S, A]
	frontier frontier.Frontier[int] // node indices into tree
	tree     *core.Tree[S, A]
	opts     core.Options
	explored int
}

// Search runs graph search on p, ordering expansion by f.
//
// f must be empty; it receives tree indices, which are stable fingerprints of
// the states recorded so far. A Queue yields breadth-first order, a Stack
// depth-first order.
func Search[S comparable, A any](p core.Problem[S, A], f frontier.Frontier[int], opts ...Option) (core.Result[S, A], error) {
	if p == nil {
		return core.Result[S, A]{}, core.ErrNilProblem
	}
	if f == nil {
		return core.Result[S, A]{}, core.ErrNilFrontier
	}
	o, err := core.Apply(opts...)
	if err != nil {
		return core.Result[S, A]{}, err
	}

	w := &walker[S, A]{
		problem:  p,
		frontier: f,
		tree:     core.NewTree[S, A](p.Initial()),
		opts:     o,
	}
	o.Logger.Debug("search started", "strategy", o.Label, "algorithm", "uninformed")

	res, err := w.loop()
	if err != nil {
		o.Logger.Debug("search interrupted", "strategy", o.Label, "explored", res.Explored, "error", err)
		return res, err
	}
	o.Logger.Debug("search finished",
		"strategy", o.Label,
		"found", res.Found,
		"path_len", res.Len(),
		"explored", res.Explored,
		"max_depth", res.MaxDepth,
		"generated", w.tree.Len(),
	)

	return res, nil
}

// loop pops until a goal is found or the frontier is exhausted.
func (w *walker[S, A]) loop() (core.Result[S, A], error) {
	// The root is in the tree already, i.e. marked explored on generation.
	w.frontier.Push(w.tree.Root())

	for !w.frontier.IsEmpty() {
		if err := w.opts.Interrupted(w.explored); err != nil {
			return w.tree.NotFound(w.explored), err
		}

		i, _ := w.frontier.Pop()
		w.explored++
		s := w.tree.State(i)
		w.opts.OnExpand(s, w.tree.Depth(i), w.frontier.Len())

		if w.problem.IsGoal(s) {
			return w.tree.Result(i, w.explored)
		}
		w.expand(i, s)
	}

	return w.tree.NotFound(w.explored), nil
}

// expand records and pushes every neighbor of s not seen before.
func (w *walker[S, A]) expand(i int, s S) {
	cost := w.tree.Cost(i)
	for _, nb := range w.problem.Neighbors(s) {
		if w.tree.Has(nb.State) {
			continue
		}
		j := w.tree.Add(nb.State, i, nb.Action, cost+nb.Cost)
		w.frontier.Push(j)
	}
}
