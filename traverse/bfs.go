package traverse

import (
	"github.com/katalvlaran/arcgraph/handle"
	"github.com/katalvlaran/arcgraph/storage"
)

// PreFunc is called once per discovered edge (and once for the synthetic
// start edge at layer 0) before the traversal decides whether to continue
// exploring past it.
type PreFunc func(edge handle.PackedEdge, layer int) ControlSignal

// BFS walks s breadth-first starting from start, a synthetic edge carrying
// the start handle (its weight is caller-defined and ignored by BFS
// itself; handle.Pack(startHandle, 0) is the usual choice). n bounds the
// vertex count and sizes the "queued" tracking bitmap and the FIFO
// queue's backing array up front, so no allocation happens once the walk
// is under way.
//
// pre is invoked once per neighbor discovered; a vertex is discovered at
// most once — the first edge that reaches it wins, later edges to the
// same handle are skipped entirely. Its return value controls the walk:
//
//   - Resume enqueues the neighbor for layer-by-layer expansion.
//   - Continue marks the neighbor visited but does not enqueue it: its own
//     outgoing edges are never explored.
//   - End or Exit stop the walk immediately; BFS has no post-order phase,
//     so the two behave identically.
//
// The layer counter advances exactly when the last item of the current
// layer has been dequeued, so pre always sees the true BFS distance from
// start.
func BFS(s *storage.EdgeStorage, start handle.PackedEdge, n int, pre PreFunc) {
	startHandle := handle.Handle(start)

	queued := make([]bool, n)
	queued[startHandle] = true

	switch pre(start, 0) {
	case End, Exit:
		return
	}

	queue := make([]handle.VertexHandle, 0, n)
	queue = append(queue, startHandle)

	for layer := 1; len(queue) > 0; layer++ {
		levelSize := len(queue)
		for i := 0; i < levelSize; i++ {
			v := queue[0]
			queue = queue[1:]

			for _, e := range s.EdgesSlice(v) {
				h := handle.Handle(e)
				if queued[h] {
					continue
				}
				queued[h] = true

				switch pre(e, layer) {
				case Resume:
					queue = append(queue, h)
				case Continue:
					// visited, but not expanded
				case End, Exit:
					return
				}
			}
		}
	}
}
