package solver

import (
	"github.com/lintang-b-s/skiproute/pkg/datastructure"
)

type StepKind string

const (
	StepFeed   StepKind = "feed"
	StepFinish StepKind = "finish"
)

// Event is a read-only snapshot of one solver transition, emitted after
// each feed and at finish. Cost is only set on the finish event.
type Event struct {
	Kind           StepKind
	Checkpoint     datastructure.Checkpoint
	BestCost       float64
	Inserted       bool
	BecameBest     bool
	Pruned         int
	Live           int
	AcceptableCost float64
	Cost           float64
}

// Observer receives solver step events, purely for display. It runs on
// the solver's goroutine and must not block for long or touch the
// solver.
type Observer interface {
	OnStep(ev Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(ev Event)

func (f ObserverFunc) OnStep(ev Event) {
	f(ev)
}
