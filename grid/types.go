package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and queries.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrThreshold indicates a wall threshold below 1, which would allow free moves.
	ErrThreshold = errors.New("grid: wall threshold must be at least 1")
	// ErrBadSymbol indicates an unknown character in a text map.
	ErrBadSymbol = errors.New("grid: unknown map symbol")
	// ErrMarker indicates a text map without exactly one S and one G.
	ErrMarker = errors.New("grid: map needs exactly one S and one G")
	// ErrBlocked indicates a start or goal cell that is a wall or off the map.
	ErrBlocked = errors.New("grid: cell is blocked")
)

// Connectivity selects which neighbors a cell has.
type Connectivity int

const (
	// Conn4 moves N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 moves N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Cell is a grid coordinate; Y grows downward.
type Cell struct {
	X, Y int
}

func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

// Direction labels a move between neighboring cells.
type Direction string

const (
	North     Direction = "N"
	NorthEast Direction = "NE"
	East      Direction = "E"
	SouthEast Direction = "SE"
	South     Direction = "S"
	SouthWest Direction = "SW"
	West      Direction = "W"
	NorthWest Direction = "NW"
)

type offset struct {
	dx, dy int
	dir    Direction
}

var (
	orthogonal = []offset{{0, -1, North}, {1, 0, East}, {0, 1, South}, {-1, 0, West}}
	diagonal   = []offset{
		{0, -1, North}, {1, -1, NorthEast}, {1, 0, East}, {1, 1, SouthEast},
		{0, 1, South}, {-1, 1, SouthWest}, {-1, 0, West}, {-1, -1, NorthWest},
	}
)

// Options tunes how a Grid reads its values.
type Options struct {
	// WallBelow is the smallest value that is walkable; it must be >= 1.
	WallBelow int
	// Conn chooses 4- or 8-directional movement.
	Conn Connectivity
}

// DefaultOptions returns WallBelow=1 (0 and negatives are walls) and Conn4.
func DefaultOptions() Options {
	return Options{WallBelow: 1, Conn: Conn4}
}
