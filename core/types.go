package core

import "errors"

// Sentinel errors shared by the search packages.
var (
	// ErrNilProblem is returned when a nil Problem is passed to a search.
	ErrNilProblem = errors.New("core: problem is nil")

	// ErrNilFrontier is returned when the uninformed search receives a nil frontier.
	ErrNilFrontier = errors.New("core: frontier is nil")

	// ErrNilHeuristic is returned when the informed search receives a nil heuristic.
	ErrNilHeuristic = errors.New("core: heuristic is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("core: invalid option supplied")

	// ErrExpansionLimit is returned together with partial statistics when a
	// search hits the cap set by WithMaxExpansions.
	ErrExpansionLimit = errors.New("core: expansion limit reached")

	// ErrBrokenChain is returned when a parent chain does not lead back to the root.
	ErrBrokenChain = errors.New("core: broken parent chain")

	// ErrUnknownState is returned when a Tree lookup names a state it never recorded.
	ErrUnknownState = errors.New("core: state not in search tree")
)

// Neighbor is a single transition produced by a Problem.
type Neighbor[S comparable, A any] struct {
	State  S       // resulting state
	Action A       // label of the transition, used only for path reconstruction
	Cost   float64 // step cost, must be >= 0
}

// Problem is the contract a search domain must satisfy.
type Problem[S comparable, A any] interface {
	// Initial returns the root of the search.
	Initial() S

	// IsGoal reports whether s needs no further expansion.
	IsGoal(s S) bool

	// Neighbors returns every valid single-step transition out of s.
	// The returned order fixes the expansion order, so it must be deterministic
	// for searches to be reproducible. An empty slice marks a dead end.
	Neighbors(s S) []Neighbor[S, A]
}

// Heuristic estimates the remaining cost from a state to the nearest goal.
type Heuristic[S comparable] func(s S) float64

// ZeroHeuristic returns 0 for every state; with it A* degenerates to uniform-cost search.
func ZeroHeuristic[S comparable](S) float64 { return 0 }

// Result is the outcome of one search.
//
// When Found is false, States and Actions are empty and Cost is 0; Explored and
// MaxDepth still describe how much of the reachable space was examined.
type Result[S comparable, A any] struct {
	// States lists the path from the initial state to the goal, both inclusive.
	States []S

	// Actions holds the len(States)-1 transition labels along the path.
	Actions []A

	// Cost is the sum of edge costs along the path.
	Cost float64

	// Explored counts states popped from the frontier, the goal included.
	Explored int

	// MaxDepth is the largest edge count from the root among discovered states.
	MaxDepth int

	// Found reports whether a goal was reached.
	Found bool
}

// Len returns the number of edges on the path, or -1 when no path was found.
func (r Result[S, A]) Len() int {
	if !r.Found {
		return -1
	}

	return len(r.States) - 1
}

// Goal returns the last state of the path.
func (r Result[S, A]) Goal() (S, bool) {
	var zero S
	if len(r.States) == 0 {
		return zero, false
	}

	return r.States[len(r.States)-1], true
}
