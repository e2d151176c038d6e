package pathfind_test

import (
	"fmt"

	"github.com/katalvlaran/arcgraph/handle"
	"github.com/katalvlaran/arcgraph/pathfind"
	"github.com/katalvlaran/arcgraph/storage"
)

// ExampleDijkstra finds the shortest path across a small weighted triangle.
func ExampleDijkstra() {
	s := storage.New()
	a := s.CreateVertexEntry(2)
	b := s.CreateVertexEntry(1)
	c := s.CreateVertexEntry(0)

	_ = s.ConnectWeighted(a, b, 1)
	_ = s.ConnectWeighted(b, c, 2)
	_ = s.ConnectWeighted(a, c, 5)

	path, err := pathfind.Dijkstra(s, a, c, s.VertexCount())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(len(path))
	// Output: 3
}

// ExampleAStar supplies a heuristic that under-estimates remaining hops,
// guiding the search toward the goal faster than Dijkstra's zero heuristic.
func ExampleAStar() {
	s := storage.New()
	a := s.CreateVertexEntry(1)
	b := s.CreateVertexEntry(1)
	c := s.CreateVertexEntry(0)

	_ = s.ConnectWeighted(a, b, 1)
	_ = s.ConnectWeighted(b, c, 1)

	hopsToGoal := func(current handle.VertexHandle, _ handle.PackedEdge) handle.Weight {
		if current == c {
			return 0
		}

		return 1
	}

	path, err := pathfind.AStar(s, a, c, s.VertexCount(), pathfind.WithHeuristic(hopsToGoal))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(len(path))
	// Output: 3
}
