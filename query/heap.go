// Package query implements the disjunctive merge-loop search described
// in §4.6: one posting-list iterator per query term, merged in
// ascending document-id order, scored, and collected into a bounded
// top-K result set.
package query

import (
	"container/heap"

	"github.com/kindex/ftsindex/docid"
)

// scored pairs a candidate document with the score a Scorer assigned
// it, the unit the result heap orders on.
type scored struct {
	id    docid.ID
	score float32
}

// resultHeap is a min-heap of scored candidates, evicting the lowest
// score once it grows past its bound (§4.6 step 3e). Ties break by
// ascending doc id, making drain order fully deterministic. Modeled
// directly on merge.go's PlexHeap, which satisfies
// container/heap.Interface the same way over a different payload.
type resultHeap []scored

func (h resultHeap) Len() int { return len(h) }

func (h resultHeap) Less(i, j int) bool {
	if h[i].score != h[j].score {
		return h[i].score < h[j].score
	}
	return h[j].id.Less(h[i].id) // lower score ranks first; among ties, the higher doc id ranks first
}

func (h resultHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *resultHeap) Push(x interface{}) {
	*h = append(*h, x.(scored))
}

func (h *resultHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}

// topK bounds a result heap at maxDocs candidates, evicting the current
// minimum whenever a push would exceed the bound.
type topK struct {
	h   resultHeap
	max int
}

func newTopK(max int) *topK {
	h := &topK{max: max}
	heap.Init(&h.h)
	return h
}

func (t *topK) push(id docid.ID, score float32) {
	if t.max <= 0 {
		return
	}
	heap.Push(&t.h, scored{id: id, score: score})
	if t.h.Len() > t.max {
		heap.Pop(&t.h)
	}
}

// drain returns the accumulated candidates in descending score order
// (ties broken by ascending doc id), emptying the heap.
func (t *topK) drain() []docid.ID {
	n := t.h.Len()
	out := make([]docid.ID, n)
	for i := n - 1; i >= 0; i-- {
		out[i] = heap.Pop(&t.h).(scored).id
	}
	return out
}
