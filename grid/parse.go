package grid

import (
	"fmt"
	"strings"
)

// Parse reads a text map (see the package documentation) and returns the
// grid with the S and G cells. Rows are separated by newlines or '/';
// surrounding blank lines are ignored.
func Parse(text string, conn Connectivity) (*Grid, Cell, Cell, error) {
	text = strings.ReplaceAll(strings.TrimSpace(text), "/", "\n")
	lines := strings.Split(text, "\n")

	var (
		values      [][]int
		start, goal Cell
		starts      int
		goals       int
	)
	for y, line := range lines {
		line = strings.TrimSpace(line)
		row := make([]int, 0, len(line))
		for x, r := range line {
			switch {
			case r == '#':
				row = append(row, 0)
			case r == '.':
				row = append(row, 1)
			case r >= '1' && r <= '9':
				row = append(row, int(r-'0'))
			case r == 'S' || r == 's':
				start = Cell{X: x, Y: y}
				starts++
				row = append(row, 1)
			case r == 'G' || r == 'g':
				goal = Cell{X: x, Y: y}
				goals++
				row = append(row, 1)
			default:
				return nil, Cell{}, Cell{}, fmt.Errorf("%w: %q at (%d,%d)", ErrBadSymbol, r, x, y)
			}
		}
		values = append(values, row)
	}
	if starts != 1 || goals != 1 {
		return nil, Cell{}, Cell{}, fmt.Errorf("%w: found %d S and %d G", ErrMarker, starts, goals)
	}

	opts := DefaultOptions()
	opts.Conn = conn
	g, err := New(values, opts)
	if err != nil {
		return nil, Cell{}, Cell{}, err
	}

	return g, start, goal, nil
}
