// Package heuristic provides distance estimates for sliding-tile boards.
//
// Each function sums, over the non-blank tiles, a distance between the tile's
// current cell and its goal cell (v / width, v % width). Leaving the blank out
// keeps Manhattan, Euclidean and Misplaced admissible: every move shifts exactly
// one tile by one cell, so no estimate exceeds the true number of moves left.
package heuristic

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/katalvlaran/tilesearch/core"
	"github.com/katalvlaran/tilesearch/puzzle"
)

// ErrUnknownHeuristic is returned by ByName for an unregistered name.
var ErrUnknownHeuristic = errors.New("heuristic: unknown heuristic")

// Manhattan sums the row and column distances of every tile from its goal cell.
func Manhattan(s puzzle.State) float64 {
	return sum(s, func(dr, dc int) float64 { return float64(abs(dr) + abs(dc)) })
}

// Euclidean sums the straight-line distances of every tile from its goal cell.
func Euclidean(s puzzle.State) float64 {
	return sum(s, func(dr, dc int) float64 { return math.Hypot(float64(dr), float64(dc)) })
}

// Misplaced counts the tiles that are not on their goal cell.
func Misplaced(s puzzle.State) float64 {
	return sum(s, func(dr, dc int) float64 {
		if dr == 0 && dc == 0 {
			return 0
		}
		return 1
	})
}

// Zero ignores the board; A* with Zero is uniform-cost search.
func Zero(puzzle.State) float64 { return 0 }

func sum(s puzzle.State, dist func(dr, dc int) float64) float64 {
	w := s.Width()
	total := 0.0
	for i := 0; i < s.Len(); i++ {
		v := s.Tile(i)
		if v == 0 {
			continue
		}
		total += dist(i/w-v/w, i%w-v%w)
	}

	return total
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

var registry = map[string]core.Heuristic[puzzle.State]{
	"manhattan": Manhattan,
	"euclidean": Euclidean,
	"misplaced": Misplaced,
	"zero":      Zero,
}

// ByName returns the heuristic registered under name (case-insensitive).
func ByName(name string) (core.Heuristic[puzzle.State], error) {
	h, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownHeuristic, name, strings.Join(Names(), ", "))
	}

	return h, nil
}

// Names lists the registered heuristic names in sorted order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}
