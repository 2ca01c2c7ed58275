// Package logging provides the small logging surface used across tilesearch.
//
// The Logger interface is the only thing the search packages depend on, so
// callers can plug in any structured logger. This package ships:
//
//   - Logger:      Debug, Info, Warn, Error with slog-style key/value args
//   - SlogAdapter: wraps a *slog.Logger
//   - NoOpLogger:  discards everything (the library default)
//   - New:         builds a text or JSON slog logger from a Config
//
// Usage:
//
//	logger := logging.New(logging.Config{Level: logging.LevelDebug, Format: "text", Output: os.Stderr})
//	res, err := informed.AStar(p, heuristic.Manhattan, core.WithLogger(logger))
package logging
