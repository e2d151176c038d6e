// File: arena.go
// Role: The flat edge arena and VertexEntry table — the single owner of
//       every outgoing edge slot for every vertex in a Graph.
// Determinism:
//   - Entries are appended in vertex-handle order; the i-th VertexEntry
//     belongs to handle i.
//   - Disconnect swaps-with-last, so slab order is not preserved across
//     removals; iteration always yields the first Len slots in storage
//     order. Slab order past that point is unobservable and not a
//     guarantee clients may rely on.
// Concurrency:
//   - EdgeStorage is not safe for concurrent use; it is exclusively owned
//     by one Graph used from one goroutine at a time.
// AI-HINT (file):
//   - Out-of-range handle access and over-capacity ConnectEdges are the
//     only two failure modes; everything else is total.
//   - Dinic clones an EdgeStorage wholesale (Clone) and mutates the clone
//     in place; the original is never touched.

// Package storage implements the edge arena: a single flat slice holding
// every vertex's outgoing-edge slots, addressed by a per-vertex
// (offset, len, capacity) table, with in-place connect/disconnect and both
// per-vertex and whole-arena iteration.
package storage

import (
	"fmt"

	"github.com/katalvlaran/arcgraph/handle"
)

// EdgeStorage is the flat edge arena plus its VertexEntry table.
type EdgeStorage struct {
	reserve int
	edges   []handle.PackedEdge
	entries []VertexEntry
}

// New returns an empty EdgeStorage with exact per-vertex sizing (reserve=0).
func New() *EdgeStorage {
	return &EdgeStorage{}
}

// NewLarge returns an empty EdgeStorage with reserve=50 extra edge slots
// added to every vertex's requested capacity, for clients expecting
// amortized growth across repeated connects.
func NewLarge() *EdgeStorage {
	return &EdgeStorage{reserve: 50}
}

// WithReserve returns an empty EdgeStorage with the given per-vertex
// reserve.
func WithReserve(reserve int) *EdgeStorage {
	return &EdgeStorage{reserve: reserve}
}

// VertexCount returns the number of vertex entries allocated so far.
func (s *EdgeStorage) VertexCount() int {
	return len(s.entries)
}

// CreateVertexEntry appends a new VertexEntry whose Offset is the arena's
// current end and whose Capacity is reserve+requestedCapacity, extends the
// arena by that much, and returns the new handle. The contents of the new
// region are unspecified (zero-valued PackedEdge, i.e. handle 0 weight 0).
func (s *EdgeStorage) CreateVertexEntry(requestedCapacity int) handle.VertexHandle {
	offset := len(s.edges)
	capacity := s.reserve + requestedCapacity
	s.edges = append(s.edges, make([]handle.PackedEdge, capacity)...)
	s.entries = append(s.entries, VertexEntry{Offset: offset, Capacity: capacity})

	return handle.VertexHandle(len(s.entries) - 1)
}

// ConnectEdges appends edges to src's slab. It returns ErrCapacityExceeded
// if len(edges) would overflow the slab's reserved capacity.
func (s *EdgeStorage) ConnectEdges(src handle.VertexHandle, edges []handle.PackedEdge) error {
	e := s.entry(src)
	newLen := e.Len + len(edges)
	if newLen > e.Capacity {
		return fmt.Errorf("%w: vertex %d has capacity %d, tried to add %d edges to %d existing",
			ErrCapacityExceeded, src, e.Capacity, len(edges), e.Len)
	}

	copy(s.edges[e.Offset+e.Len:e.Offset+newLen], edges)
	s.entries[src].Len = newLen

	return nil
}

// MustConnectEdges is ConnectEdges but panics on ErrCapacityExceeded,
// treating capacity overflow as a programmer error at call sites that
// have already validated slab sizing.
func (s *EdgeStorage) MustConnectEdges(src handle.VertexHandle, edges []handle.PackedEdge) {
	if err := s.ConnectEdges(src, edges); err != nil {
		panic(err)
	}
}

// Connect appends pack(dst, 0) to src's slab.
func (s *EdgeStorage) Connect(src, dst handle.VertexHandle) error {
	return s.ConnectEdges(src, []handle.PackedEdge{handle.Pack(dst, 0)})
}

// ConnectWeighted appends pack(dst, w) to src's slab.
func (s *EdgeStorage) ConnectWeighted(src, dst handle.VertexHandle, w handle.Weight) error {
	return s.ConnectEdges(src, []handle.PackedEdge{handle.Pack(dst, w)})
}

// Disconnect locates the first slot in src's slab whose handle equals
// dstHandle, overwrites it with the slab's last live slot (even if that is
// the same slot), and decrements Len. It is a no-op if dstHandle is not
// present, and removes at most one slot per call.
func (s *EdgeStorage) Disconnect(src, dstHandle handle.VertexHandle) {
	e := s.entry(src)
	slab := s.edges[e.Offset : e.Offset+e.Len]
	for i, edge := range slab {
		if handle.Handle(edge) != dstHandle {
			continue
		}
		last := e.Len - 1
		slab[i] = slab[last]
		s.entries[src].Len = last

		return
	}
}

// EdgesSlice returns a read view over src's live outgoing edges,
// [offset, offset+len) of its slab, in storage order.
func (s *EdgeStorage) EdgesSlice(src handle.VertexHandle) []handle.PackedEdge {
	e := s.entry(src)
	return s.edges[e.Offset : e.Offset+e.Len]
}

// EdgesMutSlice returns a mutable view over src's live outgoing edges.
func (s *EdgeStorage) EdgesMutSlice(src handle.VertexHandle) []handle.PackedEdge {
	return s.EdgesSlice(src)
}

// EdgesIter returns the same view as EdgesSlice; Go slices already range
// directly, so this exists only as a named alias for callers that prefer
// an explicit iterator-shaped name.
func (s *EdgeStorage) EdgesIter(src handle.VertexHandle) []handle.PackedEdge {
	return s.EdgesSlice(src)
}

// EdgesIterMut returns the same view as EdgesMutSlice.
func (s *EdgeStorage) EdgesIterMut(src handle.VertexHandle) []handle.PackedEdge {
	return s.EdgesMutSlice(src)
}

// EdgesIndex returns the arena offset of src's slab.
func (s *EdgeStorage) EdgesIndex(src handle.VertexHandle) int {
	return s.entry(src).Offset
}

// EdgesLen returns the number of live outgoing edges of src.
func (s *EdgeStorage) EdgesLen(src handle.VertexHandle) int {
	return s.entry(src).Len
}

// EdgesCapacity returns the reserved slab capacity of src.
func (s *EdgeStorage) EdgesCapacity(src handle.VertexHandle) int {
	return s.entry(src).Capacity
}

// Entry returns a copy of src's (offset, len, capacity) triple.
func (s *EdgeStorage) Entry(src handle.VertexHandle) VertexEntry {
	return s.entry(src)
}

// Iter walks every live edge of every vertex, in vertex-handle order, slab
// by slab, invoking fn with the owning vertex and the edge value. Empty
// slabs produce no calls.
func (s *EdgeStorage) Iter(fn func(src handle.VertexHandle, e handle.PackedEdge)) {
	for v := range s.entries {
		for _, e := range s.EdgesSlice(handle.VertexHandle(v)) {
			fn(handle.VertexHandle(v), e)
		}
	}
}

// IterMut is Iter but passes a pointer to each live edge so fn may mutate
// it in place.
func (s *EdgeStorage) IterMut(fn func(src handle.VertexHandle, e *handle.PackedEdge)) {
	for v := range s.entries {
		e := s.entry(handle.VertexHandle(v))
		slab := s.edges[e.Offset : e.Offset+e.Len]
		for i := range slab {
			fn(handle.VertexHandle(v), &slab[i])
		}
	}
}

// Clone returns a deep copy of the arena and its entry table, used by
// Dinic to build a private residual graph without touching the original.
func (s *EdgeStorage) Clone() *EdgeStorage {
	out := &EdgeStorage{
		reserve: s.reserve,
		edges:   make([]handle.PackedEdge, len(s.edges)),
		entries: make([]VertexEntry, len(s.entries)),
	}
	copy(out.edges, s.edges)
	copy(out.entries, s.entries)

	return out
}

func (s *EdgeStorage) entry(h handle.VertexHandle) VertexEntry {
	if int(h) >= len(s.entries) {
		panic(fmt.Sprintf("storage: handle %d out of range (have %d vertices)", h, len(s.entries)))
	}

	return s.entries[h]
}
