package informed

import (
	"github.com/katalvlaran/tilesearch/core"
	"github.com/katalvlaran/tilesearch/frontier"
)

// Option is an alias of core.Option so callers need not import core for options.
type Option = core.Option

// runner holds the mutable state of one cost-aware search.
type runner[S comparable, A any] struct {
	problem   core.Problem[S, A]
	heuristic core.Heuristic[S]
	opts      core.Options
	tree      *core.Tree[S, A]             // parents, accumulated costs, depths
	open      *frontier.PriorityQueue[int] // tree indices keyed by g + h
	explored  int
}

// Search runs best-first search on p ordered by accumulated cost plus h.
func Search[S comparable, A any](p core.Problem[S, A], h core.Heuristic[S], opts ...Option) (core.Result[S, A], error) {
	if p == nil {
		return core.Result[S, A]{}, core.ErrNilProblem
	}
	if h == nil {
		return core.Result[S, A]{}, core.ErrNilHeuristic
	}
	o, err := core.Apply(opts...)
	if err != nil {
		return core.Result[S, A]{}, err
	}

	r := &runner[S, A]{
		problem:   p,
		heuristic: h,
		opts:      o,
		tree:      core.NewTree[S, A](p.Initial()),
		open:      frontier.NewPriorityQueue[int](),
	}
	o.Logger.Debug("search started", "strategy", o.Label, "algorithm", "informed")

	res, err := r.process()
	if err != nil {
		o.Logger.Debug("search interrupted", "strategy", o.Label, "explored", res.Explored, "error", err)
		return res, err
	}
	o.Logger.Debug("search finished",
		"strategy", o.Label,
		"found", res.Found,
		"path_len", res.Len(),
		"cost", res.Cost,
		"explored", res.Explored,
		"max_depth", res.MaxDepth,
		"generated", r.tree.Len(),
	)

	return res, nil
}

// UCS runs uniform-cost search on p.
func UCS[S comparable, A any](p core.Problem[S, A], opts ...Option) (core.Result[S, A], error) {
	return Search[S, A](p, core.ZeroHeuristic[S], append([]Option{core.WithLabel("ucs")}, opts...)...)
}

// AStar runs A* search on p with heuristic h.
func AStar[S comparable, A any](p core.Problem[S, A], h core.Heuristic[S], opts ...Option) (core.Result[S, A], error) {
	return Search[S, A](p, h, append([]Option{core.WithLabel("astar")}, opts...)...)
}

// process pops the cheapest state until a goal is popped or the queue empties.
func (r *runner[S, A]) process() (core.Result[S, A], error) {
	root := r.tree.Root()
	r.open.Push(root, r.heuristic(r.tree.State(root)))

	for !r.open.IsEmpty() {
		if err := r.opts.Interrupted(r.explored); err != nil {
			return r.tree.NotFound(r.explored), err
		}

		i, _, _ := r.open.Pop()
		r.explored++
		s := r.tree.State(i)
		r.opts.OnExpand(s, r.tree.Depth(i), r.open.Len())

		if r.problem.IsGoal(s) {
			return r.tree.Result(i, r.explored)
		}
		r.relax(i, s)
	}

	return r.tree.NotFound(r.explored), nil
}

// relax records first discoveries and lowers the cost of rediscovered
// states when the path through i is strictly cheaper.
func (r *runner[S, A]) relax(i int, s S) {
	g := r.tree.Cost(i)
	for _, nb := range r.problem.Neighbors(s) {
		cost := g + nb.Cost
		j, seen := r.tree.Lookup(nb.State)
		switch {
		case !seen:
			j = r.tree.Add(nb.State, i, nb.Action, cost)
			r.open.Push(j, cost+r.heuristic(nb.State))
		case cost < r.tree.Cost(j):
			r.tree.Reparent(j, i, nb.Action, cost)
			r.open.Update(j, cost+r.heuristic(nb.State))
		}
	}
}
