package usecases

import (
	"github.com/lintang-b-s/skiproute/pkg/datastructure"
	"github.com/lintang-b-s/skiproute/pkg/geo"
	"github.com/lintang-b-s/skiproute/pkg/solver"
	"github.com/lintang-b-s/skiproute/pkg/util"
	"github.com/twpayne/go-polyline"
	"go.uber.org/zap"
)

type SolverService struct {
	log      *zap.Logger
	defaults solver.Params
}

func NewSolverService(log *zap.Logger, defaults solver.Params) *SolverService {
	return &SolverService{
		log:      log,
		defaults: defaults,
	}
}

// Solve runs one case against the configured grid. speed <= 0, delay < 0
// and edge <= 0 fall back to the configured defaults.
func (ss *SolverService) Solve(checkpoints []datastructure.Checkpoint, speed, delay float64,
	edge int) (float64, []datastructure.Checkpoint, string, error) {
	return ss.SolveStream(checkpoints, speed, delay, edge, nil)
}

func (ss *SolverService) SolveStream(checkpoints []datastructure.Checkpoint, speed, delay float64,
	edge int, obs solver.Observer) (float64, []datastructure.Checkpoint, string, error) {

	params, err := ss.caseParams(speed, delay, edge)
	if err != nil {
		return 0, nil, "", err
	}

	for _, cp := range checkpoints {
		if !cp.InBounds(params.Grid) {
			return 0, nil, "", util.WrapErrorf(nil, util.ErrBadParamInput,
				"checkpoint %s outside grid of edge %d", cp, params.Grid.GetEdge())
		}
	}

	cost, stops, err := solver.SolveObserved(params, checkpoints, obs)
	if err != nil {
		return 0, nil, "", err
	}

	return cost, stops, stopsPolyline(stops), nil
}

func (ss *SolverService) caseParams(speed, delay float64, edge int) (solver.Params, error) {
	params := ss.defaults

	if edge <= 0 {
		edge = params.Grid.GetEdge()
	}
	if speed <= 0 {
		speed = params.Grid.GetSpeed()
	}
	if delay < 0 {
		delay = params.Delay
	}
	if edge < 2 {
		return solver.Params{}, util.WrapErrorf(nil, util.ErrBadParamInput,
			"grid edge must be at least 2, got %d", edge)
	}

	params.Grid = geo.NewGrid(edge, speed, params.Grid.GetMinAxisOffset())
	params.Delay = delay
	return params, nil
}

func stopsPolyline(stops []datastructure.Checkpoint) string {
	coords := make([][]float64, 0, len(stops))
	for _, cp := range stops {
		coords = append(coords, []float64{float64(cp.GetY()), float64(cp.GetX())})
	}
	return string(polyline.EncodeCoords(coords))
}
