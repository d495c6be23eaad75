package grid

import (
	"container/heap"

	"github.com/tilewave/wfc/space"
)

// entropyEntry2D is one push into the lazy-invalidation priority queue:
// a position, the entropy it had at push time, and the position's version
// counter at push time. A popped entry whose version no longer matches
// the grid's current version for that position is stale and discarded.
type entropyEntry2D struct {
	position space.Location2D
	entropy  float64
	version  int
}

// entropyPQ2D implements heap.Interface as a min-heap on entropy, mirroring
// graph/dijkstra.go's nodePQ.
type entropyPQ2D []*entropyEntry2D

func (pq entropyPQ2D) Len() int            { return len(pq) }
func (pq entropyPQ2D) Less(i, j int) bool  { return pq[i].entropy < pq[j].entropy }
func (pq entropyPQ2D) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *entropyPQ2D) Push(x interface{}) { *pq = append(*pq, x.(*entropyEntry2D)) }
func (pq *entropyPQ2D) Pop() interface{} {
	old := *pq
	n := len(old)
	entry := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return entry
}

var _ heap.Interface = (*entropyPQ2D)(nil)
