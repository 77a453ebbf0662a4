package solver

import (
	"github.com/lintang-b-s/skiproute/pkg"
	"github.com/lintang-b-s/skiproute/pkg/datastructure"
)

// Reference solves a case with the plain quadratic DP, no pruning and no
// candidate bookkeeping. It is the oracle the pruned solver is checked
// against in tests and the stress harness.
func Reference(params Params, interior []datastructure.Checkpoint) float64 {
	pts := make([]datastructure.Checkpoint, 0, len(interior)+2)
	pts = append(pts, datastructure.Origin())
	pts = append(pts, interior...)
	pts = append(pts, datastructure.Destination(params.Grid.GetEdge()))

	n := len(pts)
	best := make([]float64, n)
	for i := n - 2; i >= 0; i-- {
		best[i] = pkg.INF_COST
		skipped := 0.0
		for j := i + 1; j < n; j++ {
			stop := params.Delay
			if j == n-1 {
				stop = 0
			}
			cost := pts[i].TimeTo(params.Grid, pts[j]) + stop + skipped + best[j]
			if cost < best[i] {
				best[i] = cost
			}
			skipped += float64(pts[j].GetPenalty())
		}
	}
	return best[0]
}

// Exhaustive enumerates every visit/skip subset. Exponential; only for
// very small cases.
func Exhaustive(params Params, interior []datastructure.Checkpoint) float64 {
	n := len(interior)
	dest := datastructure.Destination(params.Grid.GetEdge())

	answer := pkg.INF_COST
	for mask := 0; mask < 1<<uint(n); mask++ {
		cost := 0.0
		prev := datastructure.Origin()
		for i, cp := range interior {
			if mask&(1<<uint(i)) != 0 {
				cost += prev.TimeTo(params.Grid, cp) + params.Delay
				prev = cp
			} else {
				cost += float64(cp.GetPenalty())
			}
		}
		cost += prev.TimeTo(params.Grid, dest)
		if cost < answer {
			answer = cost
		}
	}
	return answer
}
