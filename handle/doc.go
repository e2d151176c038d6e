// Package handle defines the packed-edge representation shared by every
// other package in arcgraph: a single machine word combining a vertex
// handle in its low half and a signed weight in its high half.
//
// The word width is a build-time choice, selected by Go build tags rather
// than a runtime flag, so that VertexHandle, Weight, and PackedEdge are
// concrete (non-generic) types throughout the module:
//
//   - default build (no tag): 64-bit PackedEdge, uint32 handle, int32 weight.
//   - "msize32" build tag:    32-bit PackedEdge, uint16 handle, int16 weight.
//   - "msize16" build tag:    16-bit PackedEdge, uint8 handle,  int8  weight.
//
// Build with e.g. `go build -tags msize32 ./...` to switch widths.
//
// Pack, Handle, WeightOf, SetHandle, and SetWeight round-trip exactly for
// every representable (handle, weight) pair; SetWeight preserves the
// handle half and SetHandle preserves the weight half. A plain vertex
// handle used as an edge packs with weight 0.
package handle
