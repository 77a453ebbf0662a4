package datastructure

import (
	"fmt"

	"github.com/lintang-b-s/skiproute/pkg/geo"
)

// Candidate is a checkpoint enriched with its solved best cost to the
// destination plus bounds precomputed for pruning. All derived fields
// are computed once at construction and never mutated.
//
// invariantCost is the part of the eventual jump-cost that does not
// depend on where the jump comes from: bestCost - penalty + delay. The
// penalty term refunds the unconditional charge the solver accrues for
// every fed checkpoint, so a candidate that is actually visited pays
// delay instead of its penalty.
type Candidate struct {
	checkpoint Checkpoint

	bestCost      float64
	invariantCost float64
	costMin       float64
	costMax       float64

	// next visited checkpoint on the optimal continuation, nil on the
	// destination seed. Lets the API layer rebuild the stop sequence.
	via *Candidate
}

// NewCandidate wraps an interior checkpoint whose best cost to the
// destination has just been solved.
func NewCandidate(g geo.Grid, delay float64, cp Checkpoint, bestCost float64, via *Candidate) *Candidate {
	invariantCost := bestCost - float64(cp.GetPenalty()) + delay
	return &Candidate{
		checkpoint:    cp,
		bestCost:      bestCost,
		invariantCost: invariantCost,
		costMin:       invariantCost + cp.TimeMin(g),
		costMax:       invariantCost + cp.TimeMax(g),
		via:           via,
	}
}

// NewSeedCandidate wraps the destination endpoint. Arriving at the
// destination costs no stop delay and refunds no penalty, so its
// invariant cost is zero.
func NewSeedCandidate(g geo.Grid, cp Checkpoint) *Candidate {
	return &Candidate{
		checkpoint: cp,
		costMin:    cp.TimeMin(g),
		costMax:    cp.TimeMax(g),
	}
}

// CostFrom is the full jump-cost of stopping next at this candidate when
// currently standing at from.
func (c *Candidate) CostFrom(g geo.Grid, from Checkpoint) float64 {
	return from.TimeTo(g, c.checkpoint) + c.invariantCost
}

func (c *Candidate) GetCheckpoint() Checkpoint {
	return c.checkpoint
}

func (c *Candidate) BestCost() float64 {
	return c.bestCost
}

func (c *Candidate) InvariantCost() float64 {
	return c.invariantCost
}

func (c *Candidate) CostMin() float64 {
	return c.costMin
}

func (c *Candidate) CostMax() float64 {
	return c.costMax
}

func (c *Candidate) Via() *Candidate {
	return c.via
}

func (c *Candidate) String() string {
	return fmt.Sprintf("%s cost_inv=%.3f cost_min=%.3f", c.checkpoint, c.invariantCost, c.costMin)
}
