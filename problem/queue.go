package problem

import (
	"container/heap"

	"github.com/katalvlaran/pareto/facet"
)

// facetItem holds one non-boundary facet awaiting refinement, plus its
// insertion sequence number for the tie-break spec.md §4.F requires: when
// two facets carry equal Bound(), the one inserted first (smaller seq) is
// refined first.
type facetItem[S any] struct {
	f   facet.Facet[S]
	seq int
}

// facetPQ is a max-heap of *facetItem[S] ordered by Bound() descending,
// ties broken by seq ascending — the mirror image of dijkstra.nodePQ's
// min-heap-by-distance shape, adapted to this driver's "always refine the
// worst-bound facet next" rule.
type facetPQ[S any] []*facetItem[S]

func (pq facetPQ[S]) Len() int { return len(pq) }

func (pq facetPQ[S]) Less(i, j int) bool {
	bi, bj := pq[i].f.Bound(), pq[j].f.Bound()
	if bi != bj {
		return bi > bj
	}

	return pq[i].seq < pq[j].seq
}

func (pq facetPQ[S]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *facetPQ[S]) Push(x any) { *pq = append(*pq, x.(*facetItem[S])) }

func (pq *facetPQ[S]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// newFacetQueue returns an empty, heap-initialized facetPQ.
func newFacetQueue[S any]() *facetPQ[S] {
	pq := &facetPQ[S]{}
	heap.Init(pq)

	return pq
}

func (pq *facetPQ[S]) push(f facet.Facet[S], seq int) {
	heap.Push(pq, &facetItem[S]{f: f, seq: seq})
}

func (pq *facetPQ[S]) pop() *facetItem[S] {
	return heap.Pop(pq).(*facetItem[S])
}

func (pq *facetPQ[S]) peekBound() (float64, bool) {
	if pq.Len() == 0 {
		return 0, false
	}

	return (*pq)[0].f.Bound(), true
}
