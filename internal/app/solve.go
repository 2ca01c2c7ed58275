package app

import (
	"fmt"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/katalvlaran/tilesearch/search"
	"github.com/katalvlaran/tilesearch/visual"
)

// Solve runs one search and prints the outcome, optionally replaying the path.
func (a *App) Solve(cmd *commander.Command, args []string) error {
	logger, start, _, err := a.prepare("solve")
	if err != nil {
		return err
	}
	s, _ := search.ParseStrategy(a.cfg.Strategy)

	res, err := a.solve(logger, start, s)
	if err != nil {
		return fmt.Errorf("solve %s: %w", s, err)
	}
	report(a.out, start, s, res)
	logger.Info("search done", "strategy", s.String(), "found", res.Found, "explored", res.Explored)

	if !a.cfg.Play || !res.Found {
		return nil
	}
	fmt.Fprintln(a.out)
	p := visual.Player{
		Sink:  visual.TextSink{W: a.out, Clear: a.cfg.Clear},
		Delay: a.cfg.Delay,
	}

	return p.Play(a.ctx, visual.Frames(res))
}

func (a *App) SolveCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       a.Solve,
		UsageLine: "solve [options]",
		Short:     "solve one board and print the path",
		Long: `
solve one sliding-tile board with bfs, dfs, ucs or astar

	$ tilesearch solve -board "1 4 2/3 0 5/6 7 8" -strategy astar -heuristic manhattan
	$ tilesearch solve -width 4 -height 3 -seed 7 -strategy bfs -play

`,
		Flag: *flag.NewFlagSet("solve", flag.ExitOnError),
	}
	a.bindBoard(&cmd.Flag)
	d := DefaultConfig()
	cmd.Flag.StringVar(&a.cfg.Strategy, "strategy", d.Strategy, "search strategy: bfs, dfs, ucs or astar")
	cmd.Flag.BoolVar(&a.cfg.Play, "play", d.Play, "replay the solution after printing it")
	cmd.Flag.BoolVar(&a.cfg.Clear, "clear", d.Clear, "clear the terminal between replayed frames")
	cmd.Flag.DurationVar(&a.cfg.Delay, "delay", d.Delay, "pause between replayed frames")

	return cmd
}
