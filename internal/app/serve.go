package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/katalvlaran/tilesearch/search"
	"github.com/katalvlaran/tilesearch/visual"
)

// ErrNoSolution is returned by Serve when the board has nothing to stream.
var ErrNoSolution = errors.New("app: no solution to stream")

// Serve solves a board and streams its replay, in a loop, to browsers
// connected on the configured address until the context is cancelled.
func (a *App) Serve(cmd *commander.Command, args []string) error {
	logger, start, _, err := a.prepare("serve")
	if err != nil {
		return err
	}
	s, _ := search.ParseStrategy(a.cfg.Strategy)

	res, err := a.solve(logger, start, s)
	if err != nil {
		return fmt.Errorf("solve %s: %w", s, err)
	}
	report(a.out, start, s, res)
	if !res.Found {
		return ErrNoSolution
	}

	ctx, cancel := context.WithCancel(a.ctx)
	defer cancel()

	hub := visual.NewHub(logger)
	go hub.Run(ctx)

	srv := &http.Server{
		Addr:              a.cfg.Addr,
		Handler:           visual.Handler(hub),
		ReadHeaderTimeout: 5 * time.Second,
	}
	serveErr := make(chan error, 1)
	go func() {
		logger.Info("viewer listening", "addr", a.cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	playErr := make(chan error, 1)
	go func() {
		p := visual.Player{Sink: hub, Delay: a.cfg.Delay, Loop: true}
		playErr <- p.Play(ctx, visual.Frames(res))
	}()

	var runErr error
	select {
	case err := <-serveErr:
		runErr = err
	case err := <-playErr:
		if !errors.Is(err, context.Canceled) {
			runErr = err
		}
	case <-ctx.Done():
	}
	cancel()

	shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil && runErr == nil {
		runErr = err
	}
	logger.Info("viewer stopped")

	return runErr
}

func (a *App) ServeCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       a.Serve,
		UsageLine: "serve [options]",
		Short:     "stream the solution of one board to a browser",
		Long: `
solve one board and replay it in a loop over a websocket; open the address in a browser

	$ tilesearch serve -addr :8080 -strategy astar -delay 500ms

`,
		Flag: *flag.NewFlagSet("serve", flag.ExitOnError),
	}
	a.bindBoard(&cmd.Flag)
	d := DefaultConfig()
	cmd.Flag.StringVar(&a.cfg.Strategy, "strategy", d.Strategy, "search strategy: bfs, dfs, ucs or astar")
	cmd.Flag.StringVar(&a.cfg.Addr, "addr", d.Addr, "listen address")
	cmd.Flag.DurationVar(&a.cfg.Delay, "delay", d.Delay, "pause between frames")

	return cmd
}
