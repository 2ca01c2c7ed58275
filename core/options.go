package core

import (
	"context"
	"fmt"

	"github.com/katalvlaran/tilesearch/logging"
)

// Option configures a search via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when the
// search starts.
type Option func(*Options)

// Options holds parameters and callbacks shared by every search.
type Options struct {
	// Ctx allows cancellation; it is checked once per expansion.
	Ctx context.Context

	// Logger receives a debug entry when a search starts and when it ends.
	Logger logging.Logger

	// Label names the strategy in log entries, e.g. "bfs" or "astar".
	Label string

	// OnExpand is called for every state popped from the frontier, before the
	// goal test, with its depth and the frontier size after the pop.
	OnExpand func(state any, depth int, frontierLen int)

	// MaxExpansions, if > 0, aborts the search with ErrExpansionLimit once that
	// many states have been popped without reaching a goal. 0 means no limit.
	MaxExpansions int

	err error
}

// DefaultOptions returns Options that reproduce the plain algorithm:
//   - context.Background(), never cancelled
//   - NoOpLogger
//   - no-op OnExpand
//   - no expansion limit
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		Logger:        logging.NoOpLogger{},
		OnExpand:      func(any, int, int) {},
		MaxExpansions: 0,
	}
}

// Apply builds Options from opts and returns the first recorded violation.
func Apply(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o, o.err
}

// WithContext sets a context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger routes search diagnostics to l. A nil l is ignored.
func WithLogger(l logging.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithLabel sets the strategy name used in log entries.
func WithLabel(label string) Option {
	return func(o *Options) { o.Label = label }
}

// WithOnExpand registers a callback run for every popped state.
func WithOnExpand(fn func(state any, depth int, frontierLen int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithMaxExpansions caps the number of popped states.
//
//	n > 0:  stop with ErrExpansionLimit after n pops without a goal
//	n == 0: explicit no limit
//	n < 0:  ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// Interrupted reports why a running search must stop before popping its
// next state: context cancellation or the expansion cap. explored is the
// number of states popped so far.
func (o Options) Interrupted(explored int) error {
	select {
	case <-o.Ctx.Done():
		return o.Ctx.Err()
	default:
	}
	if o.MaxExpansions > 0 && explored >= o.MaxExpansions {
		return fmt.Errorf("%w: %d states popped", ErrExpansionLimit, explored)
	}

	return nil
}
