package puzzle

import (
	"cmp"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/tilesearch/core"
)

// MaxTiles is the largest supported board area; tiles are stored one per byte.
const MaxTiles = 256

// ErrMalformedBoard is returned when a layout is not a rectangular permutation
// of 0..n-1.
var ErrMalformedBoard = errors.New("puzzle: malformed board")

// State is one immutable board layout.
type State struct {
	width  int
	height int
	tiles  string // row-major, one byte per cell
	blank  int    // index of tile 0
}

// New builds a State from rows of tiles.
func New(rows [][]int) (State, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return State{}, fmt.Errorf("%w: empty board", ErrMalformedBoard)
	}
	h, w := len(rows), len(rows[0])
	flat := make([]int, 0, w*h)
	for r, row := range rows {
		if len(row) != w {
			return State{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedBoard, r, len(row), w)
		}
		flat = append(flat, row...)
	}

	return FromTiles(w, h, flat)
}

// FromTiles builds a State from a row-major tile list.
func FromTiles(width, height int, tiles []int) (State, error) {
	n := width * height
	switch {
	case width <= 0 || height <= 0:
		return State{}, fmt.Errorf("%w: size %dx%d", ErrMalformedBoard, width, height)
	case n > MaxTiles:
		return State{}, fmt.Errorf("%w: %d cells exceeds %d", ErrMalformedBoard, n, MaxTiles)
	case len(tiles) != n:
		return State{}, fmt.Errorf("%w: %d tiles for a %dx%d board", ErrMalformedBoard, len(tiles), width, height)
	}

	seen := make([]bool, n)
	buf := make([]byte, n)
	blank := -1
	for i, v := range tiles {
		if v < 0 || v >= n || seen[v] {
			return State{}, fmt.Errorf("%w: tile %d is out of range or repeated", ErrMalformedBoard, v)
		}
		seen[v] = true
		buf[i] = byte(v)
		if v == 0 {
			blank = i
		}
	}

	return State{width: width, height: height, tiles: string(buf), blank: blank}, nil
}

// Parse reads a board written as rows separated by '/', ';' or newlines, with
// cells separated by spaces or commas: "1 0 2/3 4 5/6 7 8".
func Parse(s string) (State, error) {
	rowSplit := func(r rune) bool { return r == '/' || r == ';' || r == '\n' }
	cellSplit := func(r rune) bool { return r == ' ' || r == ',' || r == '\t' }

	var rows [][]int
	for _, line := range strings.FieldsFunc(s, rowSplit) {
		fields := strings.FieldsFunc(line, cellSplit)
		if len(fields) == 0 {
			continue
		}
		row := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return State{}, fmt.Errorf("%w: cell %q: %v", ErrMalformedBoard, f, err)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}

	return New(rows)
}

// Goal returns the solved board of the given size.
func Goal(width, height int) (State, error) {
	tiles := make([]int, width*height)
	for i := range tiles {
		tiles[i] = i
	}

	return FromTiles(width, height, tiles)
}

// MustParse is Parse that panics on error; intended for tests and examples.
func MustParse(s string) State {
	st, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return st
}

// Width returns the number of columns.
func (s State) Width() int { return s.width }

// Height returns the number of rows.
func (s State) Height() int { return s.height }

// Len returns the number of cells.
func (s State) Len() int { return len(s.tiles) }

// At returns the tile at row r, column c.
func (s State) At(r, c int) int { return int(s.tiles[r*s.width+c]) }

// Tile returns the tile at row-major index i.
func (s State) Tile(i int) int { return int(s.tiles[i]) }

// Blank returns the row and column of the blank.
func (s State) Blank() (r, c int) { return s.blank / s.width, s.blank % s.width }

// Tiles returns the tiles in row-major order.
func (s State) Tiles() []int {
	out := make([]int, len(s.tiles))
	for i := range out {
		out[i] = int(s.tiles[i])
	}

	return out
}

// Rows returns a fresh copy of the layout as rows.
func (s State) Rows() [][]int {
	rows := make([][]int, s.height)
	for r := range rows {
		rows[r] = make([]int, s.width)
		for c := range rows[r] {
			rows[r][c] = s.At(r, c)
		}
	}

	return rows
}

// IsGoal reports whether the tiles are in ascending row-major order.
func (s State) IsGoal() bool {
	return len(s.tiles) > 0 && IsSorted([]byte(s.tiles))
}

// Next returns the state reached by sliding the blank in direction m.
func (s State) Next(m Move) (State, error) {
	if !m.Valid() {
		return State{}, fmt.Errorf("%w: %q", ErrInvalidMove, byte(m))
	}
	r, c := s.Blank()
	dr, dc := m.Delta()
	nr, nc := r+dr, c+dc
	if nr < 0 || nr >= s.height || nc < 0 || nc >= s.width {
		return State{}, fmt.Errorf("%w: %s from (%d,%d)", ErrMoveOutOfBounds, m, r, c)
	}

	j := nr*s.width + nc
	buf := []byte(s.tiles)
	buf[s.blank], buf[j] = buf[j], buf[s.blank]

	return State{width: s.width, height: s.height, tiles: string(buf), blank: j}, nil
}

// Apply plays moves in order and returns the final state.
func (s State) Apply(moves ...Move) (State, error) {
	cur := s
	for i, m := range moves {
		next, err := cur.Next(m)
		if err != nil {
			return State{}, fmt.Errorf("move %d: %w", i, err)
		}
		cur = next
	}

	return cur, nil
}

// Neighbors returns every legal move out of s in South, North, East, West order,
// each at unit cost.
func (s State) Neighbors() []core.Neighbor[State, Move] {
	out := make([]core.Neighbor[State, Move], 0, 4)
	for _, m := range Moves {
		next, err := s.Next(m)
		if err != nil {
			continue
		}
		out = append(out, core.Neighbor[State, Move]{State: next, Action: m, Cost: 1})
	}

	return out
}

// String renders one row per line, cells separated by a space, the blank as a space.
func (s State) String() string {
	var b strings.Builder
	for r := 0; r < s.height; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < s.width; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			if v := s.At(r, c); v != 0 {
				b.WriteString(strconv.Itoa(v))
			} else {
				b.WriteByte(' ')
			}
		}
	}

	return b.String()
}

// Format renders the compact form accepted by Parse: "1 0 2/3 4 5/6 7 8".
func (s State) Format() string {
	rows := make([]string, s.height)
	for r := range rows {
		cells := make([]string, s.width)
		for c := range cells {
			cells[c] = strconv.Itoa(s.At(r, c))
		}
		rows[r] = strings.Join(cells, " ")
	}

	return strings.Join(rows, "/")
}

// IsSorted reports whether xs is in non-decreasing order.
func IsSorted[T cmp.Ordered](xs []T) bool {
	for i := 1; i < len(xs); i++ {
		if xs[i] < xs[i-1] {
			return false
		}
	}

	return true
}
