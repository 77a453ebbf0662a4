package driver

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lintang-b-s/skiproute/pkg/generator"
	"github.com/lintang-b-s/skiproute/pkg/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const sampleInput = `1
50 50 5
1
50 50 30
3
25 25 0
50 50 0
75 75 0
1
50 50 100
0
`

const sampleOutput = "75.711\n80.711\n70.711\n80.711\n"

func TestRunSequential(t *testing.T) {
	var out bytes.Buffer
	d := New(solver.DefaultParams(), 1, zap.NewNop())

	solved, err := d.Run(strings.NewReader(sampleInput), &out)
	require.NoError(t, err)
	assert.Equal(t, 4, solved)
	assert.Equal(t, sampleOutput, out.String())
}

func TestRunParallelPreservesOrder(t *testing.T) {
	var out bytes.Buffer
	d := New(solver.DefaultParams(), 4, zap.NewNop())

	solved, err := d.Run(strings.NewReader(sampleInput), &out)
	require.NoError(t, err)
	assert.Equal(t, 4, solved)
	assert.Equal(t, sampleOutput, out.String())
}

func TestParallelMatchesSequential(t *testing.T) {
	params := solver.DefaultParams()
	gen := generator.New(17, params.Grid, 100, true)
	cases, err := gen.Cases(60, 50)
	require.NoError(t, err)

	var stream bytes.Buffer
	require.NoError(t, generator.WriteCases(&stream, cases))
	input := stream.String()

	var seqOut, parOut bytes.Buffer
	_, err = New(params, 1, zap.NewNop()).Run(strings.NewReader(input), &seqOut)
	require.NoError(t, err)
	_, err = New(params, 8, zap.NewNop()).Run(strings.NewReader(input), &parOut)
	require.NoError(t, err)

	assert.Equal(t, seqOut.String(), parOut.String())
}

func TestRunAbortsOnParseError(t *testing.T) {
	var out bytes.Buffer
	d := New(solver.DefaultParams(), 1, zap.NewNop())

	_, err := d.Run(strings.NewReader("1\nnot a checkpoint\n0\n"), &out)
	require.Error(t, err)
}

func TestRunAbortsOnOutOfBounds(t *testing.T) {
	var out bytes.Buffer
	d := New(solver.DefaultParams(), 1, zap.NewNop())

	_, err := d.Run(strings.NewReader("1\n500 500 5\n0\n"), &out)
	require.Error(t, err)
	assert.Empty(t, out.String())
}
