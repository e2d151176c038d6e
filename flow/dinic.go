// Package flow implements Dinic's maximum-flow algorithm directly over a
// storage.EdgeStorage arena: a level-graph BFS phase alternates with a
// blocking-flow phase whose DFS mutates residual capacities in place via
// pointers into the arena's own backing slices.
package flow

import (
	"github.com/katalvlaran/arcgraph/handle"
	"github.com/katalvlaran/arcgraph/internal/numeric"
	"github.com/katalvlaran/arcgraph/storage"
)

// Result is the outcome of a max-flow computation. Flow is a residual
// arena whose every edge's weight has been overwritten with the amount
// of flow that edge carries (original capacity minus leftover residual),
// so the caller reads per-edge flow directly off Flow rather than
// diffing two arenas itself.
type Result struct {
	TotalFlow handle.Weight
	Flow      *storage.EdgeStorage
}

// Dinic computes the maximum flow from src to sink over original. n
// bounds the vertex count. original is never mutated; Dinic works on an
// internal clone and hands the caller that clone (with weights rewritten
// to flow amounts) via Result.Flow. opts configures cancellation
// (WithContext).
func Dinic(original *storage.EdgeStorage, src, sink handle.VertexHandle, n int, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	ctx := o.Ctx

	residual := original.Clone()
	layer := make([]handle.Weight, n)

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if !markLevels(residual, src, sink, layer) {
			break
		}

		for {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			if !runBlockingFlowPass(residual, src, sink, layer, n) {
				break
			}
		}
	}

	finalizeFlow(original, residual)

	var total handle.Weight
	for _, e := range residual.EdgesSlice(src) {
		total += handle.WeightOf(e)
	}

	return &Result{TotalFlow: total, Flow: residual}, nil
}

// finalizeFlow overwrites every edge in residual with original_weight -
// residual_weight: after Dinic saturates what it can, what's left in
// residual is leftover capacity, and the difference is the flow pushed.
func finalizeFlow(original, residual *storage.EdgeStorage) {
	originalWeights := make([]handle.Weight, 0, original.VertexCount())
	original.Iter(func(_ handle.VertexHandle, e handle.PackedEdge) {
		originalWeights = append(originalWeights, handle.WeightOf(e))
	})

	i := 0
	residual.IterMut(func(_ handle.VertexHandle, e *handle.PackedEdge) {
		*e = handle.SetWeight(*e, originalWeights[i]-handle.WeightOf(*e))
		i++
	})
}

// dinicFrame is one stack frame of the blocking-flow DFS: the slab of
// outgoing edges belonging to the frame's own vertex, a cursor into it,
// and a pointer to the edge that led into this frame (into the parent
// frame's slab, or a caller-local dummy for the root).
type dinicFrame struct {
	edges []handle.PackedEdge
	idx   int
	led   *handle.PackedEdge
}

// runBlockingFlowPass runs one DFS search for an augmenting src->sink
// path within the current level graph (residual edges whose destination
// layer is strictly greater than the current vertex's). If it finds one,
// it computes the bottleneck residual along the path during descent and
// subtracts it from every edge on the path during the unwind, then
// reports true so the caller can try another pass. It reports false once
// a full DFS pass backtracks to the root without ever reaching sink,
// meaning the current level graph is exhausted (blocking flow reached).
func runBlockingFlowPass(residual *storage.EdgeStorage, src, sink handle.VertexHandle, layer []handle.Weight, n int) bool {
	dummy := handle.Pack(src, handle.WeightMax)
	stack := make([]dinicFrame, 0, n)
	stack = append(stack, dinicFrame{edges: residual.EdgesSlice(src), idx: 0, led: &dummy})

	augmented := false
	bottleneck := handle.WeightMax

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		leading := *top.led
		currentLayer := layer[handle.Handle(leading)]

		bottleneck = numeric.Min(bottleneck, handle.WeightOf(leading))

		if handle.Handle(leading) == sink {
			augmented = true
		}

		if augmented {
			*top.led = handle.SetWeight(leading, handle.WeightOf(leading)-bottleneck)
			stack = stack[:len(stack)-1]
			continue
		}

		if top.idx >= len(top.edges) {
			stack = stack[:len(stack)-1]
			continue
		}

		nextPtr := &top.edges[top.idx]
		top.idx++
		next := *nextPtr
		nextLayer := layer[handle.Handle(next)]

		if handle.WeightOf(next) != 0 && nextLayer > currentLayer {
			stack = append(stack, dinicFrame{edges: residual.EdgesSlice(handle.Handle(next)), idx: 0, led: nextPtr})
		}
	}

	return augmented
}
