// Package pathfind implements A* and Dijkstra shortest-path search over a
// storage.EdgeStorage arena, using a binary min-heap keyed on f_score and
// a predecessor array for path reconstruction.
package pathfind

import (
	"container/heap"

	"github.com/katalvlaran/arcgraph/handle"
	"github.com/katalvlaran/arcgraph/storage"
)

// HeuristicFunc estimates the remaining cost from current to the goal,
// given the edge about to be relaxed. Dijkstra is A* with a heuristic
// that always returns zero.
type HeuristicFunc func(current handle.VertexHandle, edge handle.PackedEdge) handle.Weight

// pathVertex is the best-known predecessor and f_score for one vertex.
type pathVertex struct {
	from       handle.VertexHandle
	fScore     handle.Weight
	discovered bool
}

// AStar searches s from start to goal. n bounds the vertex count and
// sizes the predecessor array and heap up front. opts configures the
// heuristic (WithHeuristic; the zero heuristic is plain Dijkstra) and
// cancellation (WithContext). It returns the path from start to goal
// inclusive, in order, or ErrNoPath if goal is unreachable.
//
// A vertex may be pushed onto the heap more than once, whenever a
// strictly better f_score is found for it; stale entries are never
// removed. On pop, an entry is only processed if its f_score still
// matches the best known f_score for that vertex — a popped entry that
// has since been superseded by a better one is silently discarded. This
// guard is load-bearing: without it, a stale larger f_score can be used
// to relax a vertex's neighbors before its genuinely-best entry is ever
// popped, corrupting downstream distances.
func AStar(s *storage.EdgeStorage, start, goal handle.VertexHandle, n int, opts ...Option) ([]handle.VertexHandle, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	ctx, h := o.Ctx, o.Heuristic

	best := make([]pathVertex, n)

	exploreList := make(nodePQ, 0, n)
	heap.Init(&exploreList)
	heap.Push(&exploreList, heapItem{vertex: start, fScore: 0})
	best[start] = pathVertex{from: start, fScore: 0, discovered: true}

	for exploreList.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		current := heap.Pop(&exploreList).(heapItem)
		if current.fScore != best[current.vertex].fScore {
			continue // stale heap entry, already superseded
		}

		if current.vertex == goal {
			return reconstructPath(best, start, goal), nil
		}

		for _, edge := range s.EdgesSlice(current.vertex) {
			neighbor := handle.Handle(edge)
			candidate := handle.WeightOf(edge) + current.fScore + h(current.vertex, edge)

			if best[neighbor].discovered && best[neighbor].fScore <= candidate {
				continue
			}

			best[neighbor] = pathVertex{from: current.vertex, fScore: candidate, discovered: true}
			heap.Push(&exploreList, heapItem{vertex: neighbor, fScore: candidate})
		}
	}

	return nil, ErrNoPath
}

// Dijkstra is AStar with the default (zero) heuristic.
func Dijkstra(s *storage.EdgeStorage, start, goal handle.VertexHandle, n int, opts ...Option) ([]handle.VertexHandle, error) {
	return AStar(s, start, goal, n, opts...)
}

// reconstructPath walks best's predecessor chain backward from goal to
// start and returns it in forward order.
func reconstructPath(best []pathVertex, start, goal handle.VertexHandle) []handle.VertexHandle {
	var reversed []handle.VertexHandle
	for current := goal; ; {
		reversed = append(reversed, current)
		if current == start {
			break
		}
		current = best[current].from
	}

	path := make([]handle.VertexHandle, len(reversed))
	for i, v := range reversed {
		path[len(reversed)-1-i] = v
	}

	return path
}
