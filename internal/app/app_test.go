package app_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilesearch/internal/app"
	"github.com/katalvlaran/tilesearch/search"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	err := app.New(context.Background(), &out, &logs).Command().Dispatch(args)

	return out.String(), logs.String(), err
}

func TestSolveCommand(t *testing.T) {
	out, logs, err := run(t, "solve", "-board", "1 4 2/3 0 5/6 7 8", "-strategy", "bfs")
	require.NoError(t, err)
	assert.Contains(t, out, "board:    1 4 2/3 0 5/6 7 8\n")
	assert.Contains(t, out, "strategy: bfs\n")
	assert.Contains(t, out, "moves:    NW\n")
	assert.Contains(t, out, "length:   2\n")
	assert.Contains(t, logs, "run_id=")
	assert.Contains(t, logs, "command=solve")
}

func TestSolveCommandPlay(t *testing.T) {
	out, _, err := run(t, "solve", "-board", "1 0 2/3 4 5/6 7 8", "-play", "-delay", "0s")
	require.NoError(t, err)
	assert.Contains(t, out, "strategy: astar\n")
	assert.Contains(t, out, "step 0/1\n1   2\n3 4 5\n6 7 8")
	assert.Contains(t, out, "step 1/1 move W\n")
}

func TestSolveCommandUnsolvable(t *testing.T) {
	out, _, err := run(t, "solve", "-board", "1 2/0 3", "-strategy", "ucs", "-log", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "found:    false\n")
	assert.Contains(t, out, "explored: 12\n")
	assert.NotContains(t, out, "moves:")
}

func TestSolveCommandLimit(t *testing.T) {
	_, _, err := run(t, "solve", "-board", "8 7 6/5 4 3/2 1 0", "-strategy", "bfs", "-max", "5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "solve bfs")
}

func TestSolveCommandInvalid(t *testing.T) {
	_, _, err := run(t, "solve", "-strategy", "greedy")
	assert.True(t, errors.Is(err, app.ErrInvalidConfig))
	assert.True(t, errors.Is(err, search.ErrUnknownStrategy))

	_, _, err = run(t, "solve", "-board", "1 1/0 3")
	assert.True(t, errors.Is(err, app.ErrInvalidConfig))
}

func TestBenchCommand(t *testing.T) {
	out, logs, err := run(t, "bench", "-width", "3", "-height", "2", "-seed", "5", "-format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, "(seed 5, solvable true)")
	for _, s := range search.Strategies() {
		assert.Contains(t, out, "\n"+s.String()+" ", s.String())
	}
	assert.Contains(t, logs, `"run_id":`)
	assert.Equal(t, 7, strings.Count(out, "\n"), "board line, blank line, column row and four strategies")
}

func TestServeCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var out bytes.Buffer
	done := make(chan error, 1)
	go func() {
		done <- app.New(ctx, &out, &bytes.Buffer{}).Command().Dispatch(
			[]string{"serve", "-board", "1 0 2/3 4 5/6 7 8", "-addr", "127.0.0.1:0", "-delay", "1ms"})
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not stop after cancellation")
	}
}

func TestMazeCommand(t *testing.T) {
	out, logs, err := run(t, "maze", "-map", "S9G/...", "-strategy", "ucs")
	require.NoError(t, err)
	assert.Contains(t, out, "moves:    S E E N\n")
	assert.Contains(t, out, "cost:     4\n")
	assert.Contains(t, out, "S9G\n***\n")
	assert.Contains(t, logs, "command=maze")

	out, _, err = run(t, "maze", "-map", "S#/#G", "-diag")
	require.NoError(t, err)
	assert.Contains(t, out, "moves:    SE\n")

	out, logs, err = run(t, "maze", "-map", "S#/#G")
	require.NoError(t, err)
	assert.Contains(t, out, "found:    false\n")
	assert.Contains(t, logs, "not reachable")

	_, _, err = run(t, "maze")
	assert.True(t, errors.Is(err, app.ErrInvalidConfig))

	path := filepath.Join(t.TempDir(), "level.txt")
	require.NoError(t, os.WriteFile(path, []byte("S..\n##.\nG..\n"), 0o600))
	out, _, err = run(t, "maze", "-file", path, "-strategy", "bfs")
	require.NoError(t, err)
	assert.Contains(t, out, "found:    true\n")
}
