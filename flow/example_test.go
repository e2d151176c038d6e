package flow_test

import (
	"fmt"

	"github.com/katalvlaran/arcgraph/flow"
	"github.com/katalvlaran/arcgraph/storage"
)

// ExampleDinic computes max flow across two disjoint source-to-sink paths.
func ExampleDinic() {
	s := storage.New()
	src := s.CreateVertexEntry(2)
	mid1 := s.CreateVertexEntry(1)
	mid2 := s.CreateVertexEntry(1)
	sink := s.CreateVertexEntry(0)

	_ = s.ConnectWeighted(src, mid1, 5)
	_ = s.ConnectWeighted(mid1, sink, 5)
	_ = s.ConnectWeighted(src, mid2, 3)
	_ = s.ConnectWeighted(mid2, sink, 3)

	result, err := flow.Dinic(s, src, sink, s.VertexCount())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(result.TotalFlow)
	// Output: 8
}
