package grid

import (
	"container/heap"

	"github.com/tilewave/wfc/space"
)

type entropyEntry1D struct {
	position space.Location1D
	entropy  float64
	version  int
}

type entropyPQ1D []*entropyEntry1D

func (pq entropyPQ1D) Len() int            { return len(pq) }
func (pq entropyPQ1D) Less(i, j int) bool  { return pq[i].entropy < pq[j].entropy }
func (pq entropyPQ1D) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *entropyPQ1D) Push(x interface{}) { *pq = append(*pq, x.(*entropyEntry1D)) }
func (pq *entropyPQ1D) Pop() interface{} {
	old := *pq
	n := len(old)
	entry := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return entry
}

var _ heap.Interface = (*entropyPQ1D)(nil)
