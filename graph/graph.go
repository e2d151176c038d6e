// Package graph provides the Graph façade: it pairs a vertex.Container[T]
// with a storage.EdgeStorage and keeps the two index-synchronized, so that
// creating a vertex always assigns the same handle in both.
//
// A single implementation suffices when weighted is the default (weight 0
// meaning "unweighted"); Graph[T] is therefore the only façade type in
// arcgraph — there is no separate WeightedGraph.
package graph

import (
	"github.com/katalvlaran/arcgraph/handle"
	"github.com/katalvlaran/arcgraph/storage"
	"github.com/katalvlaran/arcgraph/vertex"
)

// Graph pairs an ordered vertex container with an edge arena. The arena's
// reserve (Options.Reserve, set through New's options) is the number of
// extra edge slots added to every vertex's requested capacity at creation
// time (see storage.WithReserve).
type Graph[T any] struct {
	Vertices *vertex.Container[T]
	Edges    *storage.EdgeStorage
}

// New returns a Graph configured by opts. With no options, vertices get
// exact per-vertex edge sizing (reserve=0); WithReserve/WithLargeReserve
// add extra edge slots to every vertex's requested capacity.
func New[T any](opts ...Option) *Graph[T] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Graph[T]{
		Vertices: vertex.NewContainer[T](),
		Edges:    storage.WithReserve(o.Reserve),
	}
}

// Create pushes value into the vertex container and allocates a matching
// edge-arena entry with edgeCapacity slots, keeping both index-synchronized.
func (g *Graph[T]) Create(value T, edgeCapacity int) handle.VertexHandle {
	h := g.Vertices.Push(value)
	entryHandle := g.Edges.CreateVertexEntry(edgeCapacity)
	if h != entryHandle {
		panic("graph: vertex container and edge storage desynchronized")
	}

	return h
}

// CreateAndConnect creates a new vertex and connects src to it with an
// unweighted edge.
func (g *Graph[T]) CreateAndConnect(src handle.VertexHandle, value T, edgeCapacity int) (handle.VertexHandle, error) {
	h := g.Create(value, edgeCapacity)
	if err := g.Edges.Connect(src, h); err != nil {
		return h, err
	}

	return h, nil
}

// CreateAndConnectLeaf is CreateAndConnect with edgeCapacity=0: the new
// vertex reserves no outgoing-edge slots of its own.
func (g *Graph[T]) CreateAndConnectLeaf(src handle.VertexHandle, value T) (handle.VertexHandle, error) {
	return g.CreateAndConnect(src, value, 0)
}

// CreateAndConnectWeighted creates a new vertex and connects src to it
// with the given weight.
func (g *Graph[T]) CreateAndConnectWeighted(src handle.VertexHandle, value T, weight handle.Weight, edgeCapacity int) (handle.VertexHandle, error) {
	h := g.Create(value, edgeCapacity)
	if err := g.Edges.ConnectWeighted(src, h, weight); err != nil {
		return h, err
	}

	return h, nil
}

// CreateAndConnectLeafWeighted is CreateAndConnectWeighted with
// edgeCapacity=0.
func (g *Graph[T]) CreateAndConnectLeafWeighted(src handle.VertexHandle, value T, weight handle.Weight) (handle.VertexHandle, error) {
	return g.CreateAndConnectWeighted(src, value, weight, 0)
}

// Len returns the number of vertices created so far.
func (g *Graph[T]) Len() int {
	return g.Vertices.Len()
}
