package flow_test

import (
	"testing"

	"github.com/katalvlaran/arcgraph/flow"
	"github.com/katalvlaran/arcgraph/handle"
	"github.com/katalvlaran/arcgraph/storage"
)

// buildLayeredNetwork builds depth layers of width fan-out vertices each,
// every vertex connected to every vertex in the next layer with capacity 1,
// a standard stress shape for level-graph max-flow algorithms.
func buildLayeredNetwork(depth, fanout int) (*storage.EdgeStorage, handle.VertexHandle, handle.VertexHandle) {
	s := storage.New()
	src := s.CreateVertexEntry(fanout)
	layer := make([]handle.VertexHandle, fanout)
	for i := range layer {
		layer[i] = s.CreateVertexEntry(fanout)
		_ = s.ConnectWeighted(src, layer[i], 1)
	}

	for d := 1; d < depth; d++ {
		next := make([]handle.VertexHandle, fanout)
		for i := range next {
			next[i] = s.CreateVertexEntry(fanout)
		}
		for _, u := range layer {
			for _, v := range next {
				_ = s.ConnectWeighted(u, v, 1)
			}
		}
		layer = next
	}

	sink := s.CreateVertexEntry(0)
	for _, u := range layer {
		_ = s.ConnectWeighted(u, sink, 1)
	}

	return s, src, sink
}

// BenchmarkDinic_LayeredNetwork measures Dinic over a small layered network.
func BenchmarkDinic_LayeredNetwork(b *testing.B) {
	s, src, sink := buildLayeredNetwork(5, 8)
	n := s.VertexCount()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = flow.Dinic(s, src, sink, n)
	}
}
