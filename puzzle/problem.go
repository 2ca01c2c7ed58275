package puzzle

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/tilesearch/core"
)

// Problem is a sliding-tile search problem rooted at a fixed board.
type Problem struct {
	start State
}

var _ core.Problem[State, Move] = Problem{}

// NewProblem returns the problem of solving start.
func NewProblem(start State) Problem { return Problem{start: start} }

// Initial implements core.Problem.
func (p Problem) Initial() State { return p.start }

// IsGoal implements core.Problem.
func (p Problem) IsGoal(s State) bool { return s.IsGoal() }

// Neighbors implements core.Problem.
func (p Problem) Neighbors(s State) []core.Neighbor[State, Move] { return s.Neighbors() }

// Solvable reports whether s can reach the goal.
//
// A move swaps the blank with a neighbour, flipping both the parity of the
// permutation and the parity of the blank's distance from its goal cell at
// (0, 0). Their combined parity is therefore invariant and is even at the
// goal. On boards at least 2×2 that invariant is also sufficient. On a single
// row or column the blank can only slide, so the other tiles must already be
// in order.
func (s State) Solvable() bool {
	n := len(s.tiles)
	if n == 0 {
		return false
	}
	if s.width == 1 || s.height == 1 {
		prev := -1
		for i := 0; i < n; i++ {
			v := int(s.tiles[i])
			if v == 0 {
				continue
			}
			if v < prev {
				return false
			}
			prev = v
		}
		return true
	}

	inversions := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if s.tiles[i] > s.tiles[j] {
				inversions++
			}
		}
	}
	r, c := s.Blank()

	return (inversions+r+c)%2 == 0
}

// Random returns a uniformly shuffled board, which may be unsolvable.
func Random(rng *rand.Rand, width, height int) (State, error) {
	if width <= 0 || height <= 0 || width*height > MaxTiles {
		return State{}, fmt.Errorf("%w: size %dx%d", ErrMalformedBoard, width, height)
	}
	tiles := rng.Perm(width * height)

	return FromTiles(width, height, tiles)
}

// RandomSolvable returns a shuffled board that can reach the goal. An
// unsolvable shuffle is repaired by swapping two non-blank tiles, which flips
// the permutation parity. Single-row and single-column boards are produced by
// random blank slides from the goal instead.
func RandomSolvable(rng *rand.Rand, width, height int) (State, error) {
	if width == 1 || height == 1 {
		return Scramble(rng, width, height, 4*width*height)
	}
	s, err := Random(rng, width, height)
	if err != nil {
		return State{}, err
	}
	if s.Solvable() {
		return s, nil
	}

	tiles := s.Tiles()
	a, b := -1, -1
	for i, v := range tiles {
		if v == 0 {
			continue
		}
		if a < 0 {
			a = i
		} else {
			b = i
			break
		}
	}
	tiles[a], tiles[b] = tiles[b], tiles[a]

	return FromTiles(width, height, tiles)
}

// Scramble returns the board reached from the goal by steps random legal
// moves. Every scrambled board is solvable in at most steps moves.
func Scramble(rng *rand.Rand, width, height, steps int) (State, error) {
	s, err := Goal(width, height)
	if err != nil {
		return State{}, err
	}
	for i := 0; i < steps; i++ {
		nbs := s.Neighbors()
		if len(nbs) == 0 {
			break
		}
		s = nbs[rng.Intn(len(nbs))].State
	}

	return s, nil
}
