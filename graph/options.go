package graph

// Option configures a new Graph via functional arguments, mirroring the
// teacher's bfs.Option / dijkstra.Option idiom.
type Option func(*Options)

// Options holds construction-time parameters for New.
type Options struct {
	// Reserve is the number of extra edge slots added to every vertex's
	// requested capacity at creation time.
	Reserve int
}

// DefaultOptions returns the zero-value Options: exact per-vertex edge
// sizing, no extra reserve.
func DefaultOptions() Options {
	return Options{}
}

// WithReserve sets the number of extra edge slots reserved per vertex
// beyond what each Create call requests.
func WithReserve(reserve int) Option {
	return func(o *Options) {
		o.Reserve = reserve
	}
}

// WithLargeReserve is WithReserve(50), for clients that expect to grow
// vertices' outgoing edges dynamically after creation.
func WithLargeReserve() Option {
	return WithReserve(50)
}
