package app

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/katalvlaran/tilesearch/heuristic"
	"github.com/katalvlaran/tilesearch/logging"
	"github.com/katalvlaran/tilesearch/puzzle"
	"github.com/katalvlaran/tilesearch/search"
)

// ErrInvalidConfig wraps every Validate failure.
var ErrInvalidConfig = errors.New("app: invalid configuration")

// Config collects the flags shared by all commands.
type Config struct {
	Board     string // explicit board, e.g. "1 0 2/3 4 5/6 7 8"; empty means random
	Width     int
	Height    int
	Seed      int64 // 0 picks a time-based seed
	Solvable  bool  // random boards are drawn from the solvable half only
	Scramble  int   // >0: random board made of that many moves from the goal
	Strategy  string
	Heuristic string
	MaxExpand int

	Play  bool
	Clear bool
	Delay time.Duration

	Addr string

	LogLevel  string
	LogFormat string
}

// DefaultConfig returns the settings used when no flag is given.
func DefaultConfig() Config {
	return Config{
		Width:     3,
		Height:    3,
		Solvable:  true,
		Strategy:  search.AStar.String(),
		Heuristic: "manhattan",
		Delay:     300 * time.Millisecond,
		Addr:      ":8080",
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Validate checks every field and reports the first problem.
func (c Config) Validate() error {
	if c.Board == "" {
		if c.Width < 1 || c.Height < 1 {
			return fmt.Errorf("%w: board is %dx%d", ErrInvalidConfig, c.Width, c.Height)
		}
		if n := c.Width * c.Height; n < 2 || n > puzzle.MaxTiles {
			return fmt.Errorf("%w: %d tiles, want 2..%d", ErrInvalidConfig, n, puzzle.MaxTiles)
		}
	} else if _, err := puzzle.Parse(c.Board); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Scramble < 0 {
		return fmt.Errorf("%w: scramble cannot be negative (%d)", ErrInvalidConfig, c.Scramble)
	}
	if _, err := search.ParseStrategy(c.Strategy); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := heuristic.ByName(c.Heuristic); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.MaxExpand < 0 {
		return fmt.Errorf("%w: max cannot be negative (%d)", ErrInvalidConfig, c.MaxExpand)
	}
	if c.Delay < 0 {
		return fmt.Errorf("%w: delay cannot be negative (%s)", ErrInvalidConfig, c.Delay)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalidConfig, c.LogFormat)
	}

	return nil
}

// Start returns the board to solve and the seed used to draw it
// (0 for an explicit board).
func (c Config) Start() (puzzle.State, int64, error) {
	if c.Board != "" {
		s, err := puzzle.Parse(c.Board)
		return s, 0, err
	}

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	var (
		s   puzzle.State
		err error
	)
	switch {
	case c.Scramble > 0:
		s, err = puzzle.Scramble(rng, c.Width, c.Height, c.Scramble)
	case c.Solvable:
		s, err = puzzle.RandomSolvable(rng, c.Width, c.Height)
	default:
		s, err = puzzle.Random(rng, c.Width, c.Height)
	}

	return s, seed, err
}

// Logger builds the slog-backed logger described by c.
func (c Config) Logger(cfg logging.Config) (*logging.SlogAdapter, error) {
	lvl, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	cfg.Level = lvl
	cfg.Format = c.LogFormat

	return logging.New(cfg)
}
