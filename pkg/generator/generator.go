package generator

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"

	"github.com/lintang-b-s/skiproute/pkg/datastructure"
	"github.com/lintang-b-s/skiproute/pkg/geo"
	"github.com/lintang-b-s/skiproute/pkg/util"
)

// Generator produces random, syntactically valid case streams for
// stress testing. Coordinates land in [1, edge) and penalties in
// [1, maxPenalty). Positions are distinct by default: the clamped
// travel-time lower bound assumes no two checkpoints share a position.
type Generator struct {
	rng        *rand.Rand
	grid       geo.Grid
	maxPenalty int
	distinct   bool
}

func New(seed int64, grid geo.Grid, maxPenalty int, distinct bool) *Generator {
	return &Generator{
		rng:        rand.New(rand.NewSource(seed)),
		grid:       grid,
		maxPenalty: maxPenalty,
		distinct:   distinct,
	}
}

// Case draws n interior checkpoints.
func (g *Generator) Case(n int) ([]datastructure.Checkpoint, error) {
	interiorCells := (g.grid.GetEdge() - 1) * (g.grid.GetEdge() - 1)
	if g.distinct && n > interiorCells {
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput,
			"cannot place %d distinct checkpoints on %d interior cells", n, interiorCells)
	}

	used := make(map[[2]int]bool, n)
	checkpoints := make([]datastructure.Checkpoint, 0, n)
	for len(checkpoints) < n {
		x := 1 + g.rng.Intn(g.grid.GetEdge()-1)
		y := 1 + g.rng.Intn(g.grid.GetEdge()-1)
		if g.distinct {
			if used[[2]int{x, y}] {
				continue
			}
			used[[2]int{x, y}] = true
		}
		penalty := 1 + g.rng.Intn(util.MaxInt(1, g.maxPenalty-1))
		checkpoints = append(checkpoints, datastructure.NewCheckpoint(x, y, penalty))
	}
	return checkpoints, nil
}

// Cases draws numCases cases with sizes in [1, maxN].
func (g *Generator) Cases(numCases, maxN int) ([][]datastructure.Checkpoint, error) {
	cases := make([][]datastructure.Checkpoint, 0, numCases)
	for i := 0; i < numCases; i++ {
		n := 1 + g.rng.Intn(maxN)
		c, err := g.Case(n)
		if err != nil {
			return nil, err
		}
		cases = append(cases, c)
	}
	return cases, nil
}

// WriteCases emits cases in the stream format the parser reads,
// terminator included.
func WriteCases(w io.Writer, cases [][]datastructure.Checkpoint) error {
	bw := bufio.NewWriter(w)
	for _, c := range cases {
		if _, err := fmt.Fprintf(bw, "%d\n", len(c)); err != nil {
			return err
		}
		for _, cp := range c {
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", cp.GetX(), cp.GetY(), cp.GetPenalty()); err != nil {
				return err
			}
		}
	}
	if _, err := fmt.Fprintln(bw, 0); err != nil {
		return err
	}
	return bw.Flush()
}
