package traverse_test

import (
	"testing"

	"github.com/katalvlaran/arcgraph/handle"
	"github.com/katalvlaran/arcgraph/storage"
	"github.com/katalvlaran/arcgraph/traverse"
)

// buildChain builds a linear chain of n+1 vertices, n edges.
func buildChain(n int) (*storage.EdgeStorage, handle.VertexHandle) {
	s := storage.New()
	prev := s.CreateVertexEntry(1)
	for i := 0; i < n; i++ {
		next := s.CreateVertexEntry(1)
		_ = s.Connect(prev, next)
		prev = next
	}

	return s, handle.VertexHandle(0)
}

// BenchmarkBFS_Chain measures BFS over a linear chain of 10001 vertices.
func BenchmarkBFS_Chain(b *testing.B) {
	const n = 10000
	s, root := buildChain(n)
	start := handle.Pack(root, 0)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		traverse.BFS(s, start, n+1, func(handle.PackedEdge, int) traverse.ControlSignal {
			return traverse.Resume
		})
	}
}

// BenchmarkDFS_Chain measures DFS over the same chain shape.
func BenchmarkDFS_Chain(b *testing.B) {
	const n = 10000
	s, root := buildChain(n)
	start := handle.Pack(root, 0)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		traverse.DFS(s, start, n+1,
			func(*handle.PackedEdge) traverse.ControlSignal { return traverse.Resume },
			func(*handle.PackedEdge) {},
		)
	}
}
