package visual

import (
	"github.com/katalvlaran/tilesearch/core"
	"github.com/katalvlaran/tilesearch/puzzle"
)

// Frame is one board along a solution path.
type Frame struct {
	Step  int     `json:"step"`
	Total int     `json:"total"`
	Move  string  `json:"move,omitempty"`
	Rows  [][]int `json:"rows"`
	Text  string  `json:"text"`
}

// Frames returns one Frame per state of res, the initial board first.
// Frame i carries the move that produced it; frame 0 has none.
// A result without a path yields nil.
func Frames(res core.Result[puzzle.State, puzzle.Move]) []Frame {
	if !res.Found {
		return nil
	}

	total := len(res.States) - 1
	out := make([]Frame, len(res.States))
	for i, s := range res.States {
		out[i] = Frame{
			Step:  i,
			Total: total,
			Rows:  s.Rows(),
			Text:  s.String(),
		}
		if i > 0 {
			out[i].Move = res.Actions[i-1].String()
		}
	}

	return out
}
