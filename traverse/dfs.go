package traverse

import (
	"github.com/katalvlaran/arcgraph/handle"
	"github.com/katalvlaran/arcgraph/storage"
)

// DFSPreFunc is called once per discovered edge, including the synthetic
// start edge, before the walk decides whether to descend past it. It
// receives a pointer into the arena's own edge storage (or, for the start
// edge, a pointer to a caller-local copy), so a callback that mutates *e
// mutates the edge in place.
type DFSPreFunc func(e *handle.PackedEdge) ControlSignal

// DFSPostFunc is called once per frame as the walk backtracks out of it,
// whether that frame's children were exhausted normally or the walk is
// unwinding after End. It is never called for a non-start edge that itself
// caused End: that edge was never pushed as a frame. The start edge is the
// exception: its frame is already open, so End on it still drains it.
type DFSPostFunc func(e *handle.PackedEdge)

type dfsFrame struct {
	edges []handle.PackedEdge
	idx   int
	led   *handle.PackedEdge
}

// DFS walks s depth-first starting from start, tracking visited vertices
// in an internally-allocated bitmap sized n. See DFSCustomFlags for a
// variant that lets the caller own the visited set.
func DFS(s *storage.EdgeStorage, start handle.PackedEdge, n int, pre DFSPreFunc, post DFSPostFunc) {
	visited := make([]bool, n)
	isVisited := func(e handle.PackedEdge) bool {
		h := handle.Handle(e)
		wasVisited := visited[h]
		visited[h] = true

		return wasVisited
	}
	DFSCustomFlags(s, start, n, isVisited, pre, post)
}

// DFSCustomFlags walks s depth-first starting from start. isVisited is
// consulted (and expected to record) a vertex's visited state before
// pre is given a chance to run for it; this lets a caller reuse the same
// marking array across repeated walks, or use a representation other than
// a flat bitmap.
//
// pre's return value controls the walk:
//
//   - Resume pushes a new frame and descends into the discovered vertex.
//   - Continue treats the edge as a dead end: it is marked visited (via
//     isVisited) but never pushed, so its own outgoing edges are never
//     explored.
//   - End stops discovering new frames; the frames already open on the
//     stack are then drained via post, in stack order (innermost first),
//     but the edge that triggered End itself never receives a post call,
//     unless it is the start edge, whose frame is open and is drained.
//   - Exit stops the walk immediately: no further pre or post callback of
//     any kind is made, not even for frames already open on the stack.
func DFSCustomFlags(
	s *storage.EdgeStorage,
	start handle.PackedEdge,
	n int,
	isVisited func(e handle.PackedEdge) bool,
	pre DFSPreFunc,
	post DFSPostFunc,
) {
	startEdge := start
	stack := make([]dfsFrame, 0, n)
	stack = append(stack, dfsFrame{edges: s.EdgesSlice(handle.Handle(start)), idx: 0, led: &startEdge})

	switch pre(&startEdge) {
	case End:
		post(&startEdge)
		return
	case Exit:
		return
	}

walk:
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.idx >= len(top.edges) {
			post(top.led)
			stack = stack[:len(stack)-1]
			continue
		}

		next := &top.edges[top.idx]
		top.idx++

		if isVisited(*next) {
			continue
		}

		switch pre(next) {
		case End:
			break walk
		case Exit:
			return
		case Continue:
			continue
		}

		stack = append(stack, dfsFrame{edges: s.EdgesSlice(handle.Handle(*next)), idx: 0, led: next})
	}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		post(top.led)
		stack = stack[:len(stack)-1]
	}
}
