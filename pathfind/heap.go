package pathfind

import "github.com/katalvlaran/arcgraph/handle"

// heapItem is a candidate (vertex, f_score) pair waiting to be explored.
// Duplicate entries for the same vertex are expected: the search never
// removes a stale entry from the heap, it only ignores it on pop once a
// better f_score has already been finalized for that vertex.
type heapItem struct {
	vertex handle.VertexHandle
	fScore handle.Weight
}

// nodePQ is a min-heap of heapItem ordered by fScore ascending.
type nodePQ []heapItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].fScore < pq[j].fScore }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(heapItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
