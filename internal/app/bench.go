package app

import (
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/katalvlaran/tilesearch/core"
	"github.com/katalvlaran/tilesearch/search"
)

// Bench runs every strategy on the same board and prints one row each.
// A strategy stopped by the expansion cap is reported, not treated as failure.
func (a *App) Bench(cmd *commander.Command, args []string) error {
	logger, start, seed, err := a.prepare("bench")
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "board: %s (seed %d, solvable %t)\n\n", start.Format(), seed, start.Solvable())

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "strategy\tfound\tlength\tcost\texplored\tdepth\telapsed")
	for _, s := range search.Strategies() {
		t0 := time.Now()
		res, err := a.solve(logger, start, s)
		elapsed := time.Since(t0)

		status := fmt.Sprintf("%t", res.Found)
		switch {
		case errors.Is(err, core.ErrExpansionLimit):
			status = "limit"
		case err != nil:
			return fmt.Errorf("bench %s: %w", s, err)
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%g\t%d\t%d\t%s\n",
			s, status, res.Len(), res.Cost, res.Explored, res.MaxDepth, elapsed.Round(time.Microsecond))
	}

	return tw.Flush()
}

func (a *App) BenchCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       a.Bench,
		UsageLine: "bench [options]",
		Short:     "compare every strategy on one board",
		Long: `
run bfs, dfs, ucs and astar on the same board and print a comparison table

	$ tilesearch bench -seed 42 -heuristic euclidean

`,
		Flag: *flag.NewFlagSet("bench", flag.ExitOnError),
	}
	a.bindBoard(&cmd.Flag)

	return cmd
}
