// Package app wires the tilesearch command line: flag parsing, logging,
// board selection and the solve, serve, bench and maze commands.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"github.com/google/uuid"

	"github.com/katalvlaran/tilesearch/core"
	"github.com/katalvlaran/tilesearch/heuristic"
	"github.com/katalvlaran/tilesearch/logging"
	"github.com/katalvlaran/tilesearch/puzzle"
	"github.com/katalvlaran/tilesearch/search"
)

// App holds the configuration bound to the command flags and the streams the
// commands write to.
type App struct {
	ctx    context.Context
	out    io.Writer
	errOut io.Writer
	cfg    Config
	maze   MazeConfig
}

// New returns an App writing reports to out and logs to errOut.
// Nil writers default to os.Stdout and os.Stderr.
func New(ctx context.Context, out, errOut io.Writer) *App {
	if ctx == nil {
		ctx = context.Background()
	}
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}

	return &App{ctx: ctx, out: out, errOut: errOut, cfg: DefaultConfig()}
}

// Config returns the configuration as set by the last parsed flags.
func (a *App) Config() Config { return a.cfg }

// Command returns the root command with every subcommand attached.
func (a *App) Command() *commander.Command {
	return &commander.Command{
		UsageLine: "tilesearch <command> [options]",
		Short:     "solve sliding-tile puzzles with graph search",
		Subcommands: []*commander.Command{
			a.SolveCmd(),
			a.ServeCmd(),
			a.BenchCmd(),
			a.MazeCmd(),
		},
		Flag: *flag.NewFlagSet("tilesearch", flag.ExitOnError),
	}
}

// bindBoard registers the flags selecting the board and the search.
func (a *App) bindBoard(fs *flag.FlagSet) {
	d := DefaultConfig()
	fs.StringVar(&a.cfg.Board, "board", d.Board, `explicit board, rows separated by "/", 0 is the blank`)
	fs.IntVar(&a.cfg.Width, "width", d.Width, "random board width")
	fs.IntVar(&a.cfg.Height, "height", d.Height, "random board height")
	fs.Int64Var(&a.cfg.Seed, "seed", d.Seed, "random seed; 0 = time based")
	fs.BoolVar(&a.cfg.Solvable, "solvable", d.Solvable, "draw random boards from the solvable half only")
	fs.IntVar(&a.cfg.Scramble, "scramble", d.Scramble, "if > 0, build the board from that many random moves off the goal")
	fs.StringVar(&a.cfg.Heuristic, "heuristic", d.Heuristic, "A* heuristic: euclidean, manhattan, misplaced or zero")
	fs.IntVar(&a.cfg.MaxExpand, "max", d.MaxExpand, "stop after that many expansions; 0 = no limit")
	fs.StringVar(&a.cfg.LogLevel, "log", d.LogLevel, "log level: debug, info, warn or error")
	fs.StringVar(&a.cfg.LogFormat, "format", d.LogFormat, "log format: text or json")
}

// prepare validates the configuration and returns a logger tagged with a
// fresh run id, the start board and its seed.
func (a *App) prepare(command string) (logging.Logger, puzzle.State, int64, error) {
	if err := a.cfg.Validate(); err != nil {
		return nil, puzzle.State{}, 0, err
	}
	base, err := a.cfg.Logger(logging.Config{Output: a.errOut})
	if err != nil {
		return nil, puzzle.State{}, 0, err
	}
	logger := base.With("run_id", uuid.NewString(), "command", command)

	start, seed, err := a.cfg.Start()
	if err != nil {
		return nil, puzzle.State{}, 0, err
	}
	logger.Info("board ready",
		"board", start.Format(),
		"seed", seed,
		"solvable", start.Solvable(),
	)

	return logger, start, seed, nil
}

// solve runs strategy s on start with the configured options.
func (a *App) solve(logger logging.Logger, start puzzle.State, s search.Strategy) (core.Result[puzzle.State, puzzle.Move], error) {
	h, err := heuristic.ByName(a.cfg.Heuristic)
	if err != nil {
		return core.Result[puzzle.State, puzzle.Move]{}, err
	}

	return search.Solve[puzzle.State, puzzle.Move](
		puzzle.NewProblem(start), s, h,
		core.WithContext(a.ctx),
		core.WithLogger(logger),
		core.WithMaxExpansions(a.cfg.MaxExpand),
	)
}

func report(w io.Writer, start puzzle.State, s search.Strategy, res core.Result[puzzle.State, puzzle.Move]) {
	fmt.Fprintf(w, "board:    %s\n", start.Format())
	fmt.Fprintf(w, "strategy: %s\n", s)
	fmt.Fprintf(w, "found:    %t\n", res.Found)
	if res.Found {
		fmt.Fprintf(w, "moves:    %s\n", puzzle.FormatMoves(res.Actions))
		fmt.Fprintf(w, "length:   %d\n", res.Len())
		fmt.Fprintf(w, "cost:     %g\n", res.Cost)
	}
	fmt.Fprintf(w, "explored: %d\n", res.Explored)
	fmt.Fprintf(w, "depth:    %d\n", res.MaxDepth)
}
