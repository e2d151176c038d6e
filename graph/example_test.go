package graph_test

import (
	"fmt"

	"github.com/katalvlaran/arcgraph/graph"
)

// ExampleGraph_Create demonstrates building a small tree of string labels.
func ExampleGraph_Create() {
	g := graph.New[string]()
	root := g.Create("root", 2)
	left, _ := g.CreateAndConnectLeaf(root, "left")
	right, _ := g.CreateAndConnectLeaf(root, "right")

	fmt.Println(g.Vertices.At(left), g.Vertices.At(right))
	// Output: left right
}
