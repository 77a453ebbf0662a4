package solver

import (
	"github.com/lintang-b-s/skiproute/pkg"
	"github.com/lintang-b-s/skiproute/pkg/datastructure"
	"github.com/lintang-b-s/skiproute/pkg/geo"
	"github.com/lintang-b-s/skiproute/pkg/util"
)

type Strategy string

const (
	// StrategyList keeps candidates in a sorted array (canonical).
	StrategyList Strategy = "list"
	// StrategyHeap keeps candidates in a max-heap by costMin.
	StrategyHeap Strategy = "heap"
)

// Params is the domain configuration threaded into geometry and
// candidate construction. Never read from process-wide state inside the
// algorithm, so tests can vary it freely.
type Params struct {
	Grid            geo.Grid
	Delay           float64
	Strategy        Strategy
	CheckInvariants bool
}

func DefaultParams() Params {
	return Params{
		Grid:     geo.DefaultGrid(),
		Delay:    pkg.DEFAULT_DELAY,
		Strategy: StrategyList,
	}
}

type state uint8

const (
	stateEmpty state = iota
	stateActive
	stateFinished
)

// Solver runs the backward dynamic program over one test case. Feed
// checkpoints from the one nearest the destination back to the one
// nearest the origin, then Finish. A Solver must not be shared between
// goroutines; independent cases get independent Solvers.
type Solver struct {
	params Params

	set            datastructure.CandidateSet
	acceptableCost float64
	totalPenalty   float64

	obs Observer

	state state
	stops []datastructure.Checkpoint
}

func New(params Params) *Solver {
	var set datastructure.CandidateSet
	switch params.Strategy {
	case StrategyHeap:
		h := datastructure.NewCandidateHeap(params.Grid)
		h.SetInvariantChecks(params.CheckInvariants)
		set = h
	default:
		l := datastructure.NewCandidateList(params.Grid)
		l.SetInvariantChecks(params.CheckInvariants)
		set = l
	}

	seed := datastructure.NewSeedCandidate(params.Grid, datastructure.Destination(params.Grid.GetEdge()))
	set.Insert(seed)

	return &Solver{
		params:         params,
		set:            set,
		acceptableCost: pkg.INF_COST,
	}
}

// SetObserver attaches a read-only step observer (visualizers). The
// observer must not mutate solver state.
func (s *Solver) SetObserver(obs Observer) {
	s.obs = obs
}

// Feed processes the next checkpoint in destination-to-origin order.
func (s *Solver) Feed(cp datastructure.Checkpoint) error {
	if s.state == stateFinished {
		return util.WrapErrorf(nil, util.ErrBadParamInput, "feed on a finished solver")
	}
	if !cp.InBounds(s.params.Grid) {
		return util.WrapErrorf(nil, util.ErrBadParamInput, "checkpoint %s outside the grid", cp)
	}
	s.state = stateActive

	// charge every checkpoint's penalty up front; candidates refund it
	// through their invariant cost if the checkpoint ends up visited.
	s.totalPenalty += float64(cp.GetPenalty())

	bestCost, via := s.set.QueryMinCost(cp)
	cand := datastructure.NewCandidate(s.params.Grid, s.params.Delay, cp, bestCost, via)

	inserted, becameBest, pruned := false, false, 0
	if cand.CostMin() <= s.acceptableCost {
		inserted = true
		becameBest = s.set.Insert(cand)
		if becameBest {
			s.acceptableCost = cand.CostMax()
			pruned = s.set.Prune(s.acceptableCost)
		}
	}

	if s.obs != nil {
		s.obs.OnStep(Event{
			Kind:           StepFeed,
			Checkpoint:     cp,
			BestCost:       bestCost,
			Inserted:       inserted,
			BecameBest:     becameBest,
			Pruned:         pruned,
			Live:           s.set.Len(),
			AcceptableCost: s.acceptableCost,
		})
	}
	return nil
}

// Finish queries the candidate set from the origin and returns the
// overall minimum cost. The solver is spent afterwards.
func (s *Solver) Finish() (float64, error) {
	if s.state == stateFinished {
		return 0, util.WrapErrorf(nil, util.ErrBadParamInput, "finish on a finished solver")
	}
	origin := datastructure.Origin()
	bestCost, via := s.set.QueryMinCost(origin)
	cost := bestCost + s.totalPenalty
	s.state = stateFinished
	s.stops = buildStops(origin, via)

	if s.obs != nil {
		s.obs.OnStep(Event{
			Kind:           StepFinish,
			Checkpoint:     origin,
			BestCost:       bestCost,
			Live:           s.set.Len(),
			AcceptableCost: s.acceptableCost,
			Cost:           cost,
		})
	}
	return cost, nil
}

// Stops returns the checkpoints the optimal path actually visits, in
// travel order, origin and destination included. Valid after Finish.
func (s *Solver) Stops() []datastructure.Checkpoint {
	return s.stops
}

func (s *Solver) TotalPenalty() float64 {
	return s.totalPenalty
}

func (s *Solver) LiveCandidates() int {
	return s.set.Len()
}

func buildStops(origin datastructure.Checkpoint, via *datastructure.Candidate) []datastructure.Checkpoint {
	stops := []datastructure.Checkpoint{origin}
	for c := via; c != nil; c = c.Via() {
		stops = append(stops, c.GetCheckpoint())
	}
	return stops
}

// Solve runs one whole case. Interior checkpoints come in travel order
// (origin side first); the reversal to the solver's backward feed order
// happens here, never inside the state machine.
func Solve(params Params, interior []datastructure.Checkpoint) (float64, error) {
	s := New(params)
	return s.run(interior)
}

// SolveObserved is Solve with a step observer attached.
func SolveObserved(params Params, interior []datastructure.Checkpoint, obs Observer) (float64, []datastructure.Checkpoint, error) {
	s := New(params)
	s.SetObserver(obs)
	cost, err := s.run(interior)
	return cost, s.Stops(), err
}

// SolveWithStops is Solve plus the reconstructed visited sequence.
func SolveWithStops(params Params, interior []datastructure.Checkpoint) (float64, []datastructure.Checkpoint, error) {
	s := New(params)
	cost, err := s.run(interior)
	return cost, s.Stops(), err
}

func (s *Solver) run(interior []datastructure.Checkpoint) (float64, error) {
	for _, cp := range util.ReverseG(interior) {
		if err := s.Feed(cp); err != nil {
			return 0, err
		}
	}
	return s.Finish()
}
