package controllers

import (
	"github.com/lintang-b-s/skiproute/pkg/datastructure"
	"github.com/lintang-b-s/skiproute/pkg/solver"
)

// SolverService solves one case. speed <= 0, delay < 0 and edge <= 0
// mean "use the configured default". Returns the optimal cost, the
// visited stop sequence (endpoints included) and its polyline encoding.
type SolverService interface {
	Solve(checkpoints []datastructure.Checkpoint, speed, delay float64, edge int) (float64, []datastructure.Checkpoint, string, error)
	SolveStream(checkpoints []datastructure.Checkpoint, speed, delay float64, edge int,
		obs solver.Observer) (float64, []datastructure.Checkpoint, string, error)
}
