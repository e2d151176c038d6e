package flow

import "context"

// Option configures Dinic via functional arguments, mirroring the
// teacher's bfs.Option / dijkstra.Option / flow.FlowOptions idiom.
type Option func(*Options)

// Options holds Dinic's tunable parameters.
type Options struct {
	// Ctx allows cancellation; checked once per level-graph phase and once
	// per blocking-flow pass.
	Ctx context.Context
}

// DefaultOptions returns a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}
