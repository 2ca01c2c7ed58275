package visual

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// ErrNoFrames is returned by Play when there is nothing to show.
var ErrNoFrames = errors.New("visual: no frames to play")

// Sink displays frames.
type Sink interface {
	Show(f Frame) error
}

// TextSink prints frames to W. With Clear set, each frame first emits the
// ANSI sequence that clears the terminal.
type TextSink struct {
	W     io.Writer
	Clear bool
}

// Show writes a header line and the rendered board.
func (t TextSink) Show(f Frame) error {
	if t.Clear {
		if _, err := io.WriteString(t.W, "\033[H\033[2J"); err != nil {
			return err
		}
	}
	header := fmt.Sprintf("step %d/%d", f.Step, f.Total)
	if f.Move != "" {
		header += " move " + f.Move
	}
	_, err := fmt.Fprintf(t.W, "%s\n%s\n\n", header, f.Text)

	return err
}

// Player paces frames onto a Sink.
type Player struct {
	Sink  Sink
	Delay time.Duration // pause after every frame but the last
	Loop  bool          // restart from the first frame until ctx is done
}

// Play shows frames in order. It returns ctx.Err() when cancelled while
// waiting, the first Sink error, or nil once the last frame is shown.
// With Loop set it only returns on cancellation or error.
func (p Player) Play(ctx context.Context, frames []Frame) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}

	for {
		for i, f := range frames {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := p.Sink.Show(f); err != nil {
				return fmt.Errorf("visual: frame %d: %w", f.Step, err)
			}
			if i == len(frames)-1 && !p.Loop {
				return nil
			}
			if err := sleep(ctx, p.Delay); err != nil {
				return err
			}
		}
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
