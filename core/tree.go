package core

import "fmt"

// NoParent is the parent index of the root node.
const NoParent = -1

// node is one arena slot.
type node[S comparable, A any] struct {
	state  S
	parent int // index into Tree.nodes, NoParent for the root
	action A   // zero value for the root
	cost   float64
	depth  int
}

// Link describes how a recorded state was reached.
type Link[A any] struct {
	Parent int     // index of the predecessor, NoParent for the root
	Action A       // transition taken from the predecessor
	Cost   float64 // accumulated cost from the root
	Depth  int     // edge count from the root
}

// IsRoot reports whether the link marks the search root.
func (l Link[A]) IsRoot() bool { return l.Parent == NoParent }

// Tree is an arena of discovered states. Nodes refer to their parents by
// index, and a map from state to index gives O(1) lookup.
//
// The zero value is not usable; call NewTree.
type Tree[S comparable, A any] struct {
	nodes    []node[S, A]
	index    map[S]int
	maxDepth int
}

// NewTree returns a tree whose only node is root, at cost 0 and depth 0.
func NewTree[S comparable, A any](root S) *Tree[S, A] {
	t := &Tree[S, A]{
		nodes: make([]node[S, A], 0, 64),
		index: make(map[S]int, 64),
	}
	t.nodes = append(t.nodes, node[S, A]{state: root, parent: NoParent})
	t.index[root] = 0

	return t
}

// Root returns the index of the root node.
func (t *Tree[S, A]) Root() int { return 0 }

// Len returns the number of recorded states.
func (t *Tree[S, A]) Len() int { return len(t.nodes) }

// MaxDepth returns the largest depth ever recorded.
func (t *Tree[S, A]) MaxDepth() int { return t.maxDepth }

// Lookup returns the index of s.
func (t *Tree[S, A]) Lookup(s S) (int, bool) {
	i, ok := t.index[s]
	return i, ok
}

// Has reports whether s has been recorded.
func (t *Tree[S, A]) Has(s S) bool {
	_, ok := t.index[s]
	return ok
}

// State returns the state stored at index i.
func (t *Tree[S, A]) State(i int) S { return t.nodes[i].state }

// Cost returns the accumulated cost of the node at index i.
func (t *Tree[S, A]) Cost(i int) float64 { return t.nodes[i].cost }

// Depth returns the edge count from the root of the node at index i.
func (t *Tree[S, A]) Depth(i int) int { return t.nodes[i].depth }

// Link returns how the node at index i was reached.
func (t *Tree[S, A]) Link(i int) Link[A] {
	n := t.nodes[i]
	return Link[A]{Parent: n.parent, Action: n.action, Cost: n.cost, Depth: n.depth}
}

// Add records s as reached from parent via action, with accumulated cost,
// and returns its index. s must not already be recorded.
func (t *Tree[S, A]) Add(s S, parent int, action A, cost float64) int {
	depth := t.nodes[parent].depth + 1
	t.nodes = append(t.nodes, node[S, A]{
		state:  s,
		parent: parent,
		action: action,
		cost:   cost,
		depth:  depth,
	})
	i := len(t.nodes) - 1
	t.index[s] = i
	if depth > t.maxDepth {
		t.maxDepth = depth
	}

	return i
}

// Reparent moves node i under parent with a new action and accumulated cost.
// Callers only do this for a strictly lower cost, which keeps recorded costs
// non-increasing and the parent links acyclic.
func (t *Tree[S, A]) Reparent(i, parent int, action A, cost float64) {
	n := &t.nodes[i]
	n.parent = parent
	n.action = action
	n.cost = cost
	n.depth = t.nodes[parent].depth + 1
	if n.depth > t.maxDepth {
		t.maxDepth = n.depth
	}
}

// Path walks the parent links from node i back to the root and returns the
// states and actions in root-to-i order.
func (t *Tree[S, A]) Path(i int) ([]S, []A, error) {
	if i < 0 || i >= len(t.nodes) {
		return nil, nil, fmt.Errorf("%w: index %d out of range", ErrBrokenChain, i)
	}

	states := make([]S, 0, t.nodes[i].depth+1)
	actions := make([]A, 0, t.nodes[i].depth)
	for cur := i; ; {
		n := t.nodes[cur]
		states = append(states, n.state)
		if n.parent == NoParent {
			break
		}
		actions = append(actions, n.action)
		if len(states) > len(t.nodes) {
			return nil, nil, fmt.Errorf("%w: cycle through node %d", ErrBrokenChain, cur)
		}
		cur = n.parent
	}

	// reverse to root → i
	for l, r := 0, len(states)-1; l < r; l, r = l+1, r-1 {
		states[l], states[r] = states[r], states[l]
	}
	for l, r := 0, len(actions)-1; l < r; l, r = l+1, r-1 {
		actions[l], actions[r] = actions[r], actions[l]
	}

	return states, actions, nil
}

// PathTo is Path keyed by state. It returns ErrUnknownState for an unrecorded state.
func (t *Tree[S, A]) PathTo(s S) ([]S, []A, error) {
	i, ok := t.index[s]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %v", ErrUnknownState, s)
	}

	return t.Path(i)
}

// Result assembles a found Result for goal node i.
func (t *Tree[S, A]) Result(i int, explored int) (Result[S, A], error) {
	states, actions, err := t.Path(i)
	if err != nil {
		return Result[S, A]{Explored: explored, MaxDepth: t.maxDepth}, err
	}

	return Result[S, A]{
		States:   states,
		Actions:  actions,
		Cost:     t.nodes[i].cost,
		Explored: explored,
		MaxDepth: t.maxDepth,
		Found:    true,
	}, nil
}

// NotFound assembles the empty Result returned when the frontier is exhausted.
func (t *Tree[S, A]) NotFound(explored int) Result[S, A] {
	return Result[S, A]{Explored: explored, MaxDepth: t.maxDepth}
}
