package grid

import (
	"math"
	"strings"

	"github.com/katalvlaran/tilesearch/core"
)

// Grid is an immutable rectangular map of cell values.
type Grid struct {
	Width, Height int
	values        [][]int
	wallBelow     int
	conn          Connectivity
	offsets       []offset
}

// New builds a Grid from a non-empty rectangular slice, copying the input.
func New(values [][]int, opts Options) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	if opts.WallBelow < 1 {
		return nil, ErrThreshold
	}
	h, w := len(values), len(values[0])
	cells := make([][]int, h)
	for y, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		cells[y] = append([]int(nil), row...)
	}

	offs := orthogonal
	if opts.Conn == Conn8 {
		offs = diagonal
	}

	return &Grid{
		Width:     w,
		Height:    h,
		values:    cells,
		wallBelow: opts.WallBelow,
		conn:      opts.Conn,
		offsets:   offs,
	}, nil
}

// Conn returns the grid's connectivity.
func (g *Grid) Conn() Connectivity { return g.conn }

// InBounds reports whether c lies on the map.
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Value returns the raw value of c; c must be in bounds.
func (g *Grid) Value(c Cell) int { return g.values[c.Y][c.X] }

// Passable reports whether c is on the map and not a wall.
func (g *Grid) Passable(c Cell) bool {
	return g.InBounds(c) && g.values[c.Y][c.X] >= g.wallBelow
}

// Neighbors returns the passable cells next to c in N, (NE,) E, (SE,) S, ... order.
// The cost of a step is the value of the entered cell, times √2 on a diagonal.
func (g *Grid) Neighbors(c Cell) []core.Neighbor[Cell, Direction] {
	out := make([]core.Neighbor[Cell, Direction], 0, len(g.offsets))
	for _, o := range g.offsets {
		next := Cell{X: c.X + o.dx, Y: c.Y + o.dy}
		if !g.Passable(next) {
			continue
		}
		cost := float64(g.Value(next))
		if o.dx != 0 && o.dy != 0 {
			cost *= math.Sqrt2
		}
		out = append(out, core.Neighbor[Cell, Direction]{State: next, Action: o.dir, Cost: cost})
	}

	return out
}

// index maps c to a row-major index.
func (g *Grid) index(c Cell) int { return c.Y*g.Width + c.X }

// Coordinate converts a row-major index back to a Cell.
func (g *Grid) Coordinate(idx int) Cell {
	return Cell{X: idx % g.Width, Y: idx / g.Width}
}

// Render draws the map with walls as '#', open cells as '.' (or their digit
// when the cost exceeds 1), path cells as '*', and the path ends as S and G.
func (g *Grid) Render(path []Cell) string {
	marks := make(map[Cell]byte, len(path))
	for _, c := range path {
		marks[c] = '*'
	}
	if n := len(path); n > 0 {
		marks[path[0]] = 'S'
		marks[path[n-1]] = 'G'
	}

	var b strings.Builder
	for y := 0; y < g.Height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < g.Width; x++ {
			c := Cell{X: x, Y: y}
			switch m, ok := marks[c]; {
			case ok:
				b.WriteByte(m)
			case !g.Passable(c):
				b.WriteByte('#')
			case g.Value(c) > 1 && g.Value(c) <= 9:
				b.WriteByte(byte('0' + g.Value(c)))
			default:
				b.WriteByte('.')
			}
		}
	}

	return b.String()
}
