package datastructure

import (
	"github.com/lintang-b-s/skiproute/pkg"
	"github.com/lintang-b-s/skiproute/pkg/geo"
	"github.com/lintang-b-s/skiproute/pkg/util"
)

// CandidateHeap is the heap-backed CandidateSet variant: a max-heap
// keyed by costMin (ranks are negated in the underlying min-heap), so
// Prune pops dominated candidates lazily from the top. Trades the exact
// sorted order of CandidateList for O(log k) insert and pop.
type CandidateHeap struct {
	grid geo.Grid
	heap *MinHeap[*Candidate, float64]

	// strict minimum invariant cost ever inserted. Not recomputed when
	// its holder is pruned, which only makes becameBest rarer; pruning
	// stays sound either way.
	minInvariant float64

	checkInvariants bool
}

func NewCandidateHeap(g geo.Grid) *CandidateHeap {
	return &CandidateHeap{
		grid:         g,
		heap:         NewBinaryHeap[*Candidate, float64](),
		minInvariant: pkg.INF_COST,
	}
}

func (h *CandidateHeap) SetInvariantChecks(on bool) {
	h.checkInvariants = on
}

func (h *CandidateHeap) Insert(c *Candidate) bool {
	h.heap.Insert(NewPriorityQueueNode(-c.costMin, c))
	if c.invariantCost < h.minInvariant {
		h.minInvariant = c.invariantCost
		return true
	}
	return false
}

func (h *CandidateHeap) QueryMinCost(from Checkpoint) (float64, *Candidate) {
	bestCost := pkg.INF_COST
	var argmin *Candidate
	for _, node := range h.heap.Nodes() {
		c := node.GetItem()
		if cost := c.CostFrom(h.grid, from); cost < bestCost {
			bestCost = cost
			argmin = c
		}
	}
	if h.checkInvariants {
		util.AssertPanic(argmin != nil, "query on empty candidate heap")
	}
	return bestCost, argmin
}

func (h *CandidateHeap) Prune(toExceed float64) int {
	removed := 0
	for !h.heap.IsEmpty() && h.heap.GetMin().GetItem().costMin > toExceed {
		h.heap.ExtractMin()
		removed++
	}
	if h.checkInvariants {
		util.AssertPanic(!h.heap.IsEmpty(), "prune emptied the candidate heap")
	}
	return removed
}

func (h *CandidateHeap) Len() int {
	return h.heap.Size()
}

func (h *CandidateHeap) Candidates() []*Candidate {
	cands := make([]*Candidate, 0, h.heap.Size())
	for _, node := range h.heap.Nodes() {
		cands = append(cands, node.GetItem())
	}
	return cands
}
