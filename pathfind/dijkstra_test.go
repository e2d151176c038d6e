package pathfind_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/arcgraph/handle"
	"github.com/katalvlaran/arcgraph/pathfind"
	"github.com/katalvlaran/arcgraph/storage"
)

// buildLabeledDAG builds the dijkstra_test_basic graph, whose shortest
// s->t path is s -> b -> e -> g -> t with total weight 5 + 4 + 1 + 8 = 18.
func buildLabeledDAG(t *testing.T) (*storage.EdgeStorage, map[handle.VertexHandle]string, map[string]handle.VertexHandle) {
	t.Helper()

	s := storage.New()
	byHandle := map[handle.VertexHandle]string{}
	byName := map[string]handle.VertexHandle{}
	mk := func(name string) handle.VertexHandle {
		h := s.CreateVertexEntry(3)
		byHandle[h] = name
		byName[name] = h

		return h
	}
	conn := func(from, to string, w handle.Weight) {
		require.NoError(t, s.ConnectWeighted(byName[from], byName[to], w))
	}

	for _, name := range []string{"s", "a", "b", "c", "d", "e", "f", "g", "t"} {
		mk(name)
	}

	conn("s", "a", 20)
	conn("s", "b", 5)
	conn("b", "c", 2)
	conn("a", "c", 1)
	conn("c", "d", 1)
	conn("d", "e", 2)
	conn("b", "e", 4)
	conn("e", "f", 5)
	conn("e", "g", 1)
	conn("f", "t", 7)
	conn("g", "t", 8)

	return s, byHandle, byName
}

func TestDijkstraLabeledDAG(t *testing.T) {
	t.Parallel()

	s, byHandle, byName := buildLabeledDAG(t)

	path, err := pathfind.Dijkstra(s, byName["s"], byName["t"], s.VertexCount())
	require.NoError(t, err)

	names := make([]string, len(path))
	for i, h := range path {
		names[i] = byHandle[h]
	}
	assert.Equal(t, []string{"s", "b", "e", "g", "t"}, names)

	var total handle.Weight
	for i := 0; i < len(path)-1; i++ {
		for _, e := range s.EdgesSlice(path[i]) {
			if handle.Handle(e) == path[i+1] {
				total += handle.WeightOf(e)
			}
		}
	}
	assert.Equal(t, handle.Weight(18), total)
}

func TestDijkstraUnreachableGoal(t *testing.T) {
	t.Parallel()

	s := storage.New()
	a := s.CreateVertexEntry(0)
	isolated := s.CreateVertexEntry(0)

	_, err := pathfind.Dijkstra(s, a, isolated, s.VertexCount())
	assert.ErrorIs(t, err, pathfind.ErrNoPath)
}

func TestDijkstraStartEqualsGoal(t *testing.T) {
	t.Parallel()

	s := storage.New()
	a := s.CreateVertexEntry(0)

	path, err := pathfind.Dijkstra(s, a, a, s.VertexCount())
	require.NoError(t, err)
	assert.Equal(t, []handle.VertexHandle{a}, path)
}

func TestAStarWithAdmissibleHeuristicMatchesDijkstra(t *testing.T) {
	t.Parallel()

	s, _, byName := buildLabeledDAG(t)

	// A zero heuristic degrades to Dijkstra; confirm AStar agrees with it
	// on this graph when given one.
	zero := func(handle.VertexHandle, handle.PackedEdge) handle.Weight { return 0 }
	viaAStar, err := pathfind.AStar(s, byName["s"], byName["t"], s.VertexCount(), pathfind.WithHeuristic(zero))
	require.NoError(t, err)
	viaDijkstra, err := pathfind.Dijkstra(s, byName["s"], byName["t"], s.VertexCount())
	require.NoError(t, err)

	assert.Equal(t, viaDijkstra, viaAStar)
}

func TestDijkstraRespectsContextCancellation(t *testing.T) {
	t.Parallel()

	s, _, byName := buildLabeledDAG(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := pathfind.Dijkstra(s, byName["s"], byName["t"], s.VertexCount(), pathfind.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
