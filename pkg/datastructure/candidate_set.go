package datastructure

// CandidateSet maintains the pool of still-possibly-optimal future
// stopping points. Implementations must behave identically; they differ
// only in how insert/prune are organised internally.
type CandidateSet interface {
	// Insert adds the candidate at its invariant-cost rank and reports
	// whether it became the strict minimum-invariant-cost element (a tie
	// does not count).
	Insert(c *Candidate) bool

	// QueryMinCost scans the live candidates and returns the cheapest
	// jump-cost from the given checkpoint together with the candidate
	// achieving it.
	QueryMinCost(from Checkpoint) (float64, *Candidate)

	// Prune permanently removes every candidate whose costMin exceeds
	// toExceed and returns how many were removed. Such candidates can
	// never win a future query, so removal is sound forever.
	Prune(toExceed float64) int

	Len() int

	// Candidates exposes the live candidates for observers and invariant
	// checks; callers must not mutate them. Order is implementation
	// defined.
	Candidates() []*Candidate
}
