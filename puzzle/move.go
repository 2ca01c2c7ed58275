package puzzle

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for moves.
var (
	// ErrInvalidMove is returned for a move label other than N, S, E or W.
	ErrInvalidMove = errors.New("puzzle: invalid move")

	// ErrMoveOutOfBounds is returned when a move would slide the blank off the board.
	ErrMoveOutOfBounds = errors.New("puzzle: move leaves the board")
)

// Move slides the blank one cell in a compass direction.
type Move byte

// The four moves, named after the direction the blank travels.
const (
	North Move = 'N'
	South Move = 'S'
	East  Move = 'E'
	West  Move = 'W'
)

// Moves lists the moves in neighbor-generation order.
var Moves = [...]Move{South, North, East, West}

// String returns the one-letter label.
func (m Move) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Move(%d)", byte(m))
	}

	return string(rune(m))
}

// Valid reports whether m is one of the four moves.
func (m Move) Valid() bool {
	switch m {
	case North, South, East, West:
		return true
	default:
		return false
	}
}

// Delta returns the row and column offset of the blank.
func (m Move) Delta() (dr, dc int) {
	switch m {
	case North:
		return -1, 0
	case South:
		return 1, 0
	case East:
		return 0, 1
	case West:
		return 0, -1
	default:
		return 0, 0
	}
}

// Opposite returns the move that undoes m.
func (m Move) Opposite() Move {
	switch m {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return m
	}
}

// ParseMove accepts "N", "S", "E", "W" in any case.
func ParseMove(s string) (Move, error) {
	if len(s) == 1 {
		if m := Move(strings.ToUpper(s)[0]); m.Valid() {
			return m, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidMove, s)
}

// FormatMoves joins move labels with no separator, e.g. "WNNE".
func FormatMoves(moves []Move) string {
	var b strings.Builder
	b.Grow(len(moves))
	for _, m := range moves {
		b.WriteString(m.String())
	}

	return b.String()
}
