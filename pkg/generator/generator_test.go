package generator

import (
	"testing"

	"github.com/lintang-b-s/skiproute/pkg/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaseStaysInterior(t *testing.T) {
	grid := geo.NewGrid(100, 2.0, 1)
	gen := New(1, grid, 100, true)

	checkpoints, err := gen.Case(500)
	require.NoError(t, err)
	require.Len(t, checkpoints, 500)

	for _, cp := range checkpoints {
		assert.GreaterOrEqual(t, cp.GetX(), 1)
		assert.LessOrEqual(t, cp.GetX(), 99)
		assert.GreaterOrEqual(t, cp.GetY(), 1)
		assert.LessOrEqual(t, cp.GetY(), 99)
		assert.GreaterOrEqual(t, cp.GetPenalty(), 1)
		assert.Less(t, cp.GetPenalty(), 100)
	}
}

func TestCaseDistinctPositions(t *testing.T) {
	grid := geo.NewGrid(20, 2.0, 1)
	gen := New(2, grid, 50, true)

	checkpoints, err := gen.Case(300)
	require.NoError(t, err)

	seen := make(map[[2]int]bool)
	for _, cp := range checkpoints {
		pos := [2]int{cp.GetX(), cp.GetY()}
		require.False(t, seen[pos], "duplicate position %v", pos)
		seen[pos] = true
	}
}

func TestCaseTooManyDistinct(t *testing.T) {
	grid := geo.NewGrid(4, 2.0, 1)
	gen := New(3, grid, 50, true)

	// only 9 interior cells on a 4-edge grid
	_, err := gen.Case(10)
	require.Error(t, err)
}

func TestCaseDuplicatesAllowed(t *testing.T) {
	grid := geo.NewGrid(4, 2.0, 1)
	gen := New(4, grid, 50, false)

	checkpoints, err := gen.Case(100)
	require.NoError(t, err)
	assert.Len(t, checkpoints, 100)
}

func TestCasesIsDeterministicPerSeed(t *testing.T) {
	grid := geo.NewGrid(100, 2.0, 1)

	first, err := New(99, grid, 100, true).Cases(10, 30)
	require.NoError(t, err)
	second, err := New(99, grid, 100, true).Cases(10, 30)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
