// Package vertex provides the vertex-value container: an ordered,
// append-only sequence of user payloads indexable by vertex handle.
//
// The payload type is opaque to the algorithm packages — traverse,
// pathfind, and flow all operate purely on handle.PackedEdge and
// storage.EdgeStorage, never on Container[T] directly. Only graph holds a
// Container[T], paired with its edge storage.
package vertex

import "github.com/katalvlaran/arcgraph/handle"

// Container is an ordered sequence of user payloads, indexed by
// handle.VertexHandle. A vertex is never removed, so handles returned by
// Push remain valid for the container's lifetime.
type Container[T any] struct {
	data []T
}

// NewContainer returns an empty Container.
func NewContainer[T any]() *Container[T] {
	return &Container[T]{}
}

// NewContainerWithCapacity returns an empty Container pre-sized for n
// vertices, avoiding reallocation on the first n pushes.
func NewContainerWithCapacity[T any](n int) *Container[T] {
	return &Container[T]{data: make([]T, 0, n)}
}

// Push appends val and returns the handle it was assigned.
func (c *Container[T]) Push(val T) handle.VertexHandle {
	c.data = append(c.data, val)
	return handle.VertexHandle(len(c.data) - 1)
}

// Len returns the number of vertices pushed so far.
func (c *Container[T]) Len() int {
	return len(c.data)
}

// At returns the payload for h. Panics if h is out of range, treating
// out-of-range handle access as a programmer error rather than a
// recoverable condition.
func (c *Container[T]) At(h handle.VertexHandle) T {
	c.checkBounds(h)
	return c.data[h]
}

// Set overwrites the payload stored at h. Panics if h is out of range.
func (c *Container[T]) Set(h handle.VertexHandle, val T) {
	c.checkBounds(h)
	c.data[h] = val
}

// Slice returns a read-only view over every pushed payload in handle order.
func (c *Container[T]) Slice() []T {
	return c.data
}

func (c *Container[T]) checkBounds(h handle.VertexHandle) {
	if int(h) >= len(c.data) {
		panic("vertex: handle out of range")
	}
}
