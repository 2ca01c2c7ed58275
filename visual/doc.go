// Package visual replays a solved sliding-tile puzzle.
//
// Frames turns a search result into one Frame per board on the path. A
// Player shows those frames on a Sink at a fixed pace: TextSink prints them
// to a terminal, Hub broadcasts them as JSON to websocket clients.
//
//	frames := visual.Frames(res)
//	p := visual.Player{Sink: visual.TextSink{W: os.Stdout}, Delay: 300 * time.Millisecond}
//	err := p.Play(ctx, frames)
//
// Handler serves a minimal page at "/" that draws the frames streamed by a
// Hub at "/ws".
package visual
