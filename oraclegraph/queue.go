package oraclegraph

import "container/heap"

// nodeItem pairs a vertex with its current scalarized tentative distance
// from the source, mirroring the teacher's dijkstra.nodeItem shape.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending, using the
// same lazy-decrease-key strategy as the teacher's dijkstra.nodePQ: stale
// entries are pushed rather than updated in place, and skipped on pop once
// their vertex is already finalized.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x any)         { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

func newNodeQueue() *nodePQ {
	pq := &nodePQ{}
	heap.Init(pq)

	return pq
}
