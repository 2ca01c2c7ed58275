package visual_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilesearch/core"
	"github.com/katalvlaran/tilesearch/heuristic"
	"github.com/katalvlaran/tilesearch/informed"
	"github.com/katalvlaran/tilesearch/puzzle"
	"github.com/katalvlaran/tilesearch/visual"
)

func solved(t *testing.T) core.Result[puzzle.State, puzzle.Move] {
	t.Helper()
	p := puzzle.NewProblem(puzzle.MustParse("1 4 2/3 0 5/6 7 8"))
	res, err := informed.AStar[puzzle.State, puzzle.Move](p, heuristic.Manhattan)
	require.NoError(t, err)
	require.True(t, res.Found)

	return res
}

func TestFrames(t *testing.T) {
	frames := visual.Frames(solved(t))
	require.Len(t, frames, 3)

	assert.Equal(t, 0, frames[0].Step)
	assert.Equal(t, "", frames[0].Move)
	assert.Equal(t, [][]int{{1, 4, 2}, {3, 0, 5}, {6, 7, 8}}, frames[0].Rows)
	assert.Equal(t, "N", frames[1].Move)
	assert.Equal(t, "W", frames[2].Move)
	assert.Equal(t, 2, frames[2].Total)
	assert.Equal(t, "  1 2\n3 4 5\n6 7 8", frames[2].Text)

	assert.Nil(t, visual.Frames(core.Result[puzzle.State, puzzle.Move]{}))
}

func TestPlayerText(t *testing.T) {
	var buf bytes.Buffer
	p := visual.Player{Sink: visual.TextSink{W: &buf}}
	require.NoError(t, p.Play(context.Background(), visual.Frames(solved(t))))

	out := buf.String()
	assert.Contains(t, out, "step 0/2\n1 4 2\n3   5\n6 7 8")
	assert.Contains(t, out, "step 2/2 move W\n")
	assert.NotContains(t, out, "\033[2J")

	buf.Reset()
	p.Sink = visual.TextSink{W: &buf, Clear: true}
	require.NoError(t, p.Play(context.Background(), visual.Frames(solved(t))))
	assert.Equal(t, 3, strings.Count(buf.String(), "\033[2J"))
}

type failingSink struct{ after int }

func (f *failingSink) Show(visual.Frame) error {
	if f.after == 0 {
		return errors.New("boom")
	}
	f.after--
	return nil
}

func TestPlayerStops(t *testing.T) {
	frames := visual.Frames(solved(t))

	err := visual.Player{Sink: visual.TextSink{W: &bytes.Buffer{}}}.Play(context.Background(), nil)
	assert.True(t, errors.Is(err, visual.ErrNoFrames))

	err = visual.Player{Sink: &failingSink{after: 1}}.Play(context.Background(), frames)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "frame 1")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	var buf bytes.Buffer
	err = visual.Player{Sink: visual.TextSink{W: &buf}, Delay: 5 * time.Millisecond, Loop: true}.Play(ctx, frames)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Greater(t, strings.Count(buf.String(), "step 0/2"), 1, "loop replays from the first frame")
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	_ = resp.Body.Close()
	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

func TestHubBroadcastAndReplay(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	hub := visual.NewHub(nil)
	go hub.Run(ctx)

	srv := httptest.NewServer(visual.Handler(hub))
	defer srv.Close()

	first := dial(t, srv)
	require.Eventually(t, func() bool { return hub.Clients() == 1 }, time.Second, 5*time.Millisecond)

	frames := visual.Frames(solved(t))
	require.NoError(t, hub.Show(frames[1]))

	var got visual.Frame
	require.NoError(t, first.SetReadDeadline(time.Now().Add(time.Second)))
	require.NoError(t, first.ReadJSON(&got))
	assert.Equal(t, frames[1], got)

	// a late client is greeted with the latest frame
	late := dial(t, srv)
	require.NoError(t, late.SetReadDeadline(time.Now().Add(time.Second)))
	got = visual.Frame{}
	require.NoError(t, late.ReadJSON(&got))
	assert.Equal(t, frames[1], got)
	require.Eventually(t, func() bool { return hub.Clients() == 2 }, time.Second, 5*time.Millisecond)

	_ = late.Close()
	require.Eventually(t, func() bool { return hub.Clients() == 1 }, time.Second, 5*time.Millisecond)

	cancel()
	require.Eventually(t, func() bool { return errors.Is(hub.Show(frames[0]), visual.ErrHubClosed) }, time.Second, 5*time.Millisecond)
	assert.Equal(t, 0, hub.Clients())
}

func TestHandlerPage(t *testing.T) {
	srv := httptest.NewServer(visual.Handler(visual.NewHub(nil)))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	missing, err := http.Get(srv.URL + "/nope")
	require.NoError(t, err)
	_ = missing.Body.Close()
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)
}
