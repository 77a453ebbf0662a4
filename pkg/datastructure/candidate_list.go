package datastructure

import (
	"github.com/lintang-b-s/skiproute/pkg"
	"github.com/lintang-b-s/skiproute/pkg/geo"
	"github.com/lintang-b-s/skiproute/pkg/util"
	"golang.org/x/exp/slices"
)

// CandidateList is the canonical CandidateSet: a slice kept sorted in
// non-decreasing invariant cost, with binary-search insert and a
// tail-inward prune sweep.
type CandidateList struct {
	grid  geo.Grid
	cands []*Candidate

	checkInvariants bool
}

func NewCandidateList(g geo.Grid) *CandidateList {
	return &CandidateList{
		grid:  g,
		cands: make([]*Candidate, 0, 16),
	}
}

// SetInvariantChecks switches the debug-only sortedness and prune-index
// assertions. Off by default.
func (l *CandidateList) SetInvariantChecks(on bool) {
	l.checkInvariants = on
}

// upperBound is the first index whose invariant cost is strictly greater
// than inv, so equal-cost candidates keep insertion order.
func (l *CandidateList) upperBound(inv float64) int {
	pos, _ := slices.BinarySearchFunc(l.cands, inv, func(c *Candidate, target float64) int {
		if c.invariantCost <= target {
			return -1
		}
		return 1
	})
	return pos
}

func (l *CandidateList) Insert(c *Candidate) bool {
	pos := l.upperBound(c.invariantCost)
	l.cands = slices.Insert(l.cands, pos, c)
	if l.checkInvariants {
		l.assertSorted()
	}
	return pos == 0
}

func (l *CandidateList) QueryMinCost(from Checkpoint) (float64, *Candidate) {
	bestCost := pkg.INF_COST
	var argmin *Candidate
	for _, c := range l.cands {
		if cost := c.CostFrom(l.grid, from); cost < bestCost {
			bestCost = cost
			argmin = c
		}
	}
	if l.checkInvariants {
		util.AssertPanic(argmin != nil, "query on empty candidate set")
	}
	return bestCost, argmin
}

func (l *CandidateList) Prune(toExceed float64) int {
	// everything with invariantCost > toExceed certainly has
	// costMin > toExceed; cut that tail in one go.
	cut := l.upperBound(toExceed)
	if l.checkInvariants {
		util.AssertPanic(cut > 0, "prune cutoff would remove the freshly accepted best candidate")
	}
	removed := len(l.cands) - cut
	l.cands = l.cands[:cut]

	// invariant-cost order says nothing about costMin below the cut, so
	// sweep downward until even the largest possible TimeMin cannot push
	// costMin over the cutoff.
	stopBelow := toExceed - l.grid.TimeMinUpperBound()
	for i := cut - 1; i >= 0 && l.cands[i].invariantCost > stopBelow; i-- {
		if l.cands[i].costMin > toExceed {
			l.cands = slices.Delete(l.cands, i, i+1)
			removed++
		}
	}
	return removed
}

func (l *CandidateList) Len() int {
	return len(l.cands)
}

func (l *CandidateList) Candidates() []*Candidate {
	return l.cands
}

func (l *CandidateList) assertSorted() {
	for i := 1; i < len(l.cands); i++ {
		util.AssertPanic(l.cands[i-1].invariantCost <= l.cands[i].invariantCost,
			"candidate list out of invariant-cost order")
	}
}
