package search_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/tilesearch/heuristic"
	"github.com/katalvlaran/tilesearch/puzzle"
	"github.com/katalvlaran/tilesearch/search"
)

// BenchmarkSolve_8Puzzle runs every strategy on one scrambled 3x3 board.
func BenchmarkSolve_8Puzzle(b *testing.B) {
	rng := rand.New(rand.NewSource(7))
	start, err := puzzle.Scramble(rng, 3, 3, 20)
	if err != nil {
		b.Fatal(err)
	}
	p := puzzle.NewProblem(start)

	for _, s := range search.Strategies() {
		b.Run(s.String(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = search.Solve[puzzle.State, puzzle.Move](p, s, heuristic.Manhattan)
			}
		})
	}
}
