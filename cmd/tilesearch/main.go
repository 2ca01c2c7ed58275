package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/tilesearch/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := app.New(ctx, os.Stdout, os.Stderr).Command()
	if len(os.Args) < 2 {
		cmd.Usage()
		os.Exit(2)
	}
	if err := cmd.Dispatch(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "**err**: %v\n", err)
		stop()
		os.Exit(1)
	}
}
