package datastructure

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/lintang-b-s/skiproute/pkg/geo"
)

func randomCandidates(rng *rand.Rand, g geo.Grid, n int) []*Candidate {
	cands := make([]*Candidate, 0, n)
	for i := 0; i < n; i++ {
		cp := NewCheckpoint(1+rng.Intn(99), 1+rng.Intn(99), rng.Intn(50))
		bestCost := 10.0 + rng.Float64()*100.0
		cands = append(cands, NewCandidate(g, 10.0, cp, bestCost, nil))
	}
	return cands
}

func TestCandidateListStaysSorted(t *testing.T) {
	g := geo.NewGrid(100, 2.0, 1)
	rng := rand.New(rand.NewSource(42))

	l := NewCandidateList(g)
	l.SetInvariantChecks(true)
	for _, c := range randomCandidates(rng, g, 200) {
		l.Insert(c)
	}

	cands := l.Candidates()
	for i := 1; i < len(cands); i++ {
		if cands[i-1].InvariantCost() > cands[i].InvariantCost() {
			t.Fatalf("list out of order at %d: %f > %f", i,
				cands[i-1].InvariantCost(), cands[i].InvariantCost())
		}
	}
}

func TestCandidateListBecameBest(t *testing.T) {
	g := geo.NewGrid(100, 2.0, 1)
	l := NewCandidateList(g)

	mk := func(bestCost float64) *Candidate {
		return NewCandidate(g, 10.0, NewCheckpoint(50, 50, 0), bestCost, nil)
	}

	if !l.Insert(mk(50.0)) {
		t.Fatal("first insert must become best")
	}
	if l.Insert(mk(60.0)) {
		t.Fatal("larger invariant cost must not become best")
	}
	// ties keep the incumbent
	if l.Insert(mk(50.0)) {
		t.Fatal("equal invariant cost must not become best")
	}
	if !l.Insert(mk(40.0)) {
		t.Fatal("strictly smaller invariant cost must become best")
	}
}

func TestQueryMinCostMatchesScan(t *testing.T) {
	g := geo.NewGrid(100, 2.0, 1)
	rng := rand.New(rand.NewSource(7))

	l := NewCandidateList(g)
	cands := randomCandidates(rng, g, 100)
	for _, c := range cands {
		l.Insert(c)
	}

	for trial := 0; trial < 20; trial++ {
		from := NewCheckpoint(rng.Intn(101), rng.Intn(101), 0)

		want := cands[0].CostFrom(g, from)
		for _, c := range cands[1:] {
			if cost := c.CostFrom(g, from); cost < want {
				want = cost
			}
		}

		got, argmin := l.QueryMinCost(from)
		if !Eq(got, want) {
			t.Fatalf("QueryMinCost = %f, want %f", got, want)
		}
		if argmin == nil || !Eq(argmin.CostFrom(g, from), got) {
			t.Fatal("argmin does not realize the returned minimum")
		}
	}
}

func TestPruneRemovesExactlyDominated(t *testing.T) {
	g := geo.NewGrid(100, 2.0, 1)
	rng := rand.New(rand.NewSource(99))

	for trial := 0; trial < 10; trial++ {
		l := NewCandidateList(g)
		l.SetInvariantChecks(true)
		cands := randomCandidates(rng, g, 150)
		for _, c := range cands {
			l.Insert(c)
		}

		// cut at the median surviving candidate so both sides are exercised
		sorted := append([]*Candidate(nil), cands...)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].CostMin() < sorted[j].CostMin() })
		toExceed := sorted[len(sorted)/2].CostMin()

		wantKept := 0
		for _, c := range cands {
			if c.CostMin() <= toExceed {
				wantKept++
			}
		}

		removed := l.Prune(toExceed)
		if removed != len(cands)-wantKept {
			t.Fatalf("Prune removed %d, want %d", removed, len(cands)-wantKept)
		}
		for _, c := range l.Candidates() {
			if c.CostMin() > toExceed {
				t.Fatalf("candidate with costMin %f survived cutoff %f", c.CostMin(), toExceed)
			}
		}
		if l.Len() != wantKept {
			t.Fatalf("Len = %d after prune, want %d", l.Len(), wantKept)
		}
	}
}

func TestHeapPruneRemovesExactlyDominated(t *testing.T) {
	g := geo.NewGrid(100, 2.0, 1)
	rng := rand.New(rand.NewSource(123))

	h := NewCandidateHeap(g)
	cands := randomCandidates(rng, g, 150)
	for _, c := range cands {
		h.Insert(c)
	}

	sorted := append([]*Candidate(nil), cands...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].CostMin() < sorted[j].CostMin() })
	toExceed := sorted[len(sorted)/2].CostMin()

	wantKept := 0
	for _, c := range cands {
		if c.CostMin() <= toExceed {
			wantKept++
		}
	}

	removed := h.Prune(toExceed)
	if removed != len(cands)-wantKept {
		t.Fatalf("Prune removed %d, want %d", removed, len(cands)-wantKept)
	}
	for _, c := range h.Candidates() {
		if c.CostMin() > toExceed {
			t.Fatalf("candidate with costMin %f survived cutoff %f", c.CostMin(), toExceed)
		}
	}
}

// Both CandidateSet variants must answer queries identically after the
// same insert and prune sequence.
func TestListHeapEquivalence(t *testing.T) {
	g := geo.NewGrid(100, 2.0, 1)
	rng := rand.New(rand.NewSource(2024))

	l := NewCandidateList(g)
	h := NewCandidateHeap(g)

	cands := randomCandidates(rng, g, 300)
	for _, c := range cands {
		l.Insert(c)
		h.Insert(c)
	}

	sorted := append([]*Candidate(nil), cands...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].CostMin() < sorted[j].CostMin() })
	toExceed := sorted[2*len(sorted)/3].CostMin()
	l.Prune(toExceed)
	h.Prune(toExceed)

	if l.Len() != h.Len() {
		t.Fatalf("list kept %d candidates, heap kept %d", l.Len(), h.Len())
	}

	for trial := 0; trial < 20; trial++ {
		from := NewCheckpoint(rng.Intn(101), rng.Intn(101), 0)
		lCost, _ := l.QueryMinCost(from)
		hCost, _ := h.QueryMinCost(from)
		if !Eq(lCost, hCost) {
			t.Fatalf("query from %s: list %f, heap %f", from, lCost, hCost)
		}
	}
}
