package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"github.com/google/uuid"

	"github.com/katalvlaran/tilesearch/core"
	"github.com/katalvlaran/tilesearch/grid"
	"github.com/katalvlaran/tilesearch/logging"
	"github.com/katalvlaran/tilesearch/search"
)

// MazeConfig holds the maze command flags.
type MazeConfig struct {
	Map      string // inline map, rows separated by "/"
	File     string // map file, read when Map is empty
	Diagonal bool
}

// Maze finds a path across a text map of weighted cells.
func (a *App) Maze(cmd *commander.Command, args []string) error {
	if err := a.cfg.Validate(); err != nil {
		return err
	}
	base, err := a.cfg.Logger(logging.Config{Output: a.errOut})
	if err != nil {
		return err
	}
	logger := base.With("run_id", uuid.NewString(), "command", "maze")

	text := a.maze.Map
	if text == "" {
		if a.maze.File == "" {
			return fmt.Errorf("%w: maze needs -map or -file", ErrInvalidConfig)
		}
		raw, err := os.ReadFile(a.maze.File)
		if err != nil {
			return err
		}
		text = string(raw)
	}
	conn := grid.Conn4
	if a.maze.Diagonal {
		conn = grid.Conn8
	}
	g, start, goal, err := grid.Parse(text, conn)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	p, err := grid.NewProblem(g, start, goal)
	if err != nil {
		return err
	}
	logger.Info("maze ready", "width", g.Width, "height", g.Height, "start", start.String(), "goal", goal.String())

	s, _ := search.ParseStrategy(a.cfg.Strategy)
	if !p.Solvable() {
		logger.Warn("goal is not reachable from start")
	}
	res, err := search.Solve[grid.Cell, grid.Direction](p, s, p.Heuristic(),
		core.WithContext(a.ctx),
		core.WithLogger(logger),
		core.WithMaxExpansions(a.cfg.MaxExpand),
	)
	if err != nil {
		return fmt.Errorf("maze %s: %w", s, err)
	}

	fmt.Fprintf(a.out, "strategy: %s\n", s)
	fmt.Fprintf(a.out, "found:    %t\n", res.Found)
	if res.Found {
		dirs := make([]string, len(res.Actions))
		for i, d := range res.Actions {
			dirs[i] = string(d)
		}
		fmt.Fprintf(a.out, "moves:    %s\n", strings.Join(dirs, " "))
		fmt.Fprintf(a.out, "cost:     %g\n", res.Cost)
	}
	fmt.Fprintf(a.out, "explored: %d\n\n", res.Explored)
	fmt.Fprintln(a.out, g.Render(res.States))

	return nil
}

func (a *App) MazeCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       a.Maze,
		UsageLine: "maze [options]",
		Short:     "find a path across a weighted text map",
		Long: `
find a path from S to G on a map where '#' is a wall, '.' costs 1 and a digit costs its value

	$ tilesearch maze -map "S9G/..." -strategy ucs
	$ tilesearch maze -file level.txt -diag

`,
		Flag: *flag.NewFlagSet("maze", flag.ExitOnError),
	}
	d := DefaultConfig()
	cmd.Flag.StringVar(&a.maze.Map, "map", "", `inline map, rows separated by "/"`)
	cmd.Flag.StringVar(&a.maze.File, "file", "", "map file, one row per line")
	cmd.Flag.BoolVar(&a.maze.Diagonal, "diag", false, "allow diagonal moves")
	cmd.Flag.StringVar(&a.cfg.Strategy, "strategy", d.Strategy, "search strategy: bfs, dfs, ucs or astar")
	cmd.Flag.IntVar(&a.cfg.MaxExpand, "max", d.MaxExpand, "stop after that many expansions; 0 = no limit")
	cmd.Flag.StringVar(&a.cfg.LogLevel, "log", d.LogLevel, "log level: debug, info, warn or error")
	cmd.Flag.StringVar(&a.cfg.LogFormat, "format", d.LogFormat, "log format: text or json")

	return cmd
}
