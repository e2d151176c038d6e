package pathfind

import (
	"context"

	"github.com/katalvlaran/arcgraph/handle"
)

// Option configures AStar/Dijkstra via functional arguments, mirroring the
// teacher's bfs.Option / dijkstra.Option idiom.
type Option func(*Options)

// Options holds AStar's tunable parameters.
type Options struct {
	// Ctx allows cancellation; checked once per heap pop.
	Ctx context.Context
	// Heuristic estimates remaining cost to the goal. The default (set by
	// DefaultOptions) always returns zero, which is plain Dijkstra.
	Heuristic HeuristicFunc
}

// DefaultOptions returns a background context and a zero heuristic (plain
// Dijkstra behavior).
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Heuristic: func(handle.VertexHandle, handle.PackedEdge) handle.Weight { return 0 },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithHeuristic sets the heuristic function, turning Dijkstra into A*.
func WithHeuristic(h HeuristicFunc) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}
