package flow

import (
	"github.com/katalvlaran/arcgraph/handle"
	"github.com/katalvlaran/arcgraph/storage"
)

// markLevels runs a BFS over residual from src, assigning each reachable
// vertex its distance from src in layer (handle.WeightMax means
// unreached). Only edges with positive residual weight are followed,
// so a saturated edge never participates in the level graph. It reports
// whether sink was reached at all; if not, residual admits no further
// augmenting path and the blocking-flow phase is done.
func markLevels(residual *storage.EdgeStorage, src, sink handle.VertexHandle, layer []handle.Weight) bool {
	for i := range layer {
		layer[i] = handle.WeightMax
	}
	layer[src] = 0
	foundSink := src == sink

	queue := make([]handle.VertexHandle, 0, len(layer))
	queue = append(queue, src)

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		if v == sink {
			foundSink = true
		}

		for _, e := range residual.EdgesSlice(v) {
			h := handle.Handle(e)
			if layer[h] != handle.WeightMax {
				continue
			}
			if handle.WeightOf(e) == 0 {
				continue
			}

			layer[h] = layer[v] + 1
			queue = append(queue, h)
		}
	}

	return foundSink
}
