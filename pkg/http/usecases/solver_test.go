package usecases

import (
	"math"
	"testing"

	"github.com/lintang-b-s/skiproute/pkg/datastructure"
	"github.com/lintang-b-s/skiproute/pkg/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService() *SolverService {
	return NewSolverService(zap.NewNop(), solver.DefaultParams())
}

func TestSolveWithDefaults(t *testing.T) {
	ss := newTestService()

	cost, stops, path, err := ss.Solve([]datastructure.Checkpoint{
		datastructure.NewCheckpoint(50, 50, 5),
	}, 0, -1, 0)
	require.NoError(t, err)

	assert.InDelta(t, math.Sqrt(20000)/2.0+5, cost, 1e-3)
	require.Len(t, stops, 2)
	assert.NotEmpty(t, path)
}

func TestSolveWithOverrides(t *testing.T) {
	ss := newTestService()

	// doubling the speed halves the diagonal ride
	cost, _, _, err := ss.Solve(nil, 4.0, -1, 0)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(20000)/4.0, cost, 1e-3)

	// a smaller grid shrinks the diagonal
	cost, stops, _, err := ss.Solve(nil, 0, -1, 10)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(200)/2.0, cost, 1e-3)
	require.Len(t, stops, 2)
	assert.Equal(t, datastructure.Destination(10), stops[1])
}

func TestSolveRejectsOutOfBounds(t *testing.T) {
	ss := newTestService()

	_, _, _, err := ss.Solve([]datastructure.Checkpoint{
		datastructure.NewCheckpoint(50, 50, 5),
	}, 0, -1, 10)
	require.Error(t, err)
}

func TestSolveRejectsDegenerateGrid(t *testing.T) {
	ss := NewSolverService(zap.NewNop(), solver.Params{Delay: 10, Strategy: solver.StrategyList})

	_, _, _, err := ss.Solve(nil, 2.0, -1, 0)
	require.Error(t, err)
}

func TestSolveStreamEmitsSteps(t *testing.T) {
	ss := newTestService()

	steps := 0
	_, _, _, err := ss.SolveStream([]datastructure.Checkpoint{
		datastructure.NewCheckpoint(25, 75, 3),
		datastructure.NewCheckpoint(75, 25, 8),
	}, 0, -1, 0, solver.ObserverFunc(func(ev solver.Event) {
		steps++
	}))
	require.NoError(t, err)
	assert.Equal(t, 3, steps)
}
