package datastructure

import (
	"fmt"

	"github.com/lintang-b-s/skiproute/pkg/geo"
)

// Checkpoint is one stop on the grid: a position plus the penalty
// incurred if the traveler passes it by. Immutable once created.
type Checkpoint struct {
	x, y    int
	penalty int
}

func NewCheckpoint(x, y, penalty int) Checkpoint {
	return Checkpoint{
		x:       x,
		y:       y,
		penalty: penalty,
	}
}

// Origin is the synthetic start endpoint (0,0). Never skipped, never
// penalized.
func Origin() Checkpoint {
	return Checkpoint{}
}

// Destination is the synthetic end endpoint (edge,edge). Never skipped,
// never penalized.
func Destination(edge int) Checkpoint {
	return Checkpoint{x: edge, y: edge}
}

func (c Checkpoint) GetX() int {
	return c.x
}

func (c Checkpoint) GetY() int {
	return c.y
}

func (c Checkpoint) GetPenalty() int {
	return c.penalty
}

func (c Checkpoint) InBounds(g geo.Grid) bool {
	return g.InBounds(c.x, c.y)
}

// TimeTo is the travel time from c to other at grid speed.
func (c Checkpoint) TimeTo(g geo.Grid, other Checkpoint) float64 {
	return g.TravelTime(other.x-c.x, other.y-c.y)
}

// TimeMin is the provable lower bound on the travel time from any
// in-grid point to c.
func (c Checkpoint) TimeMin(g geo.Grid) float64 {
	return g.TimeMin(c.x, c.y)
}

// TimeMax is the provable upper bound on the travel time from any
// in-grid point to c.
func (c Checkpoint) TimeMax(g geo.Grid) float64 {
	return g.TimeMax(c.x, c.y)
}

func (c Checkpoint) String() string {
	return fmt.Sprintf("(%d,%d) penalty=%d", c.x, c.y, c.penalty)
}
