package driver

import (
	"io"

	"github.com/lintang-b-s/skiproute/pkg/concurrent"
	"github.com/lintang-b-s/skiproute/pkg/datastructure"
	"github.com/lintang-b-s/skiproute/pkg/parser"
	"github.com/lintang-b-s/skiproute/pkg/solver"
	"go.uber.org/zap"
)

// Driver wires the case reader, the solver and the result writer: the
// external collaborator loop around the core algorithm. Costs come out
// in input order even when cases are solved in parallel.
type Driver struct {
	params  solver.Params
	workers int
	log     *zap.Logger
}

func New(params solver.Params, workers int, log *zap.Logger) *Driver {
	if workers < 1 {
		workers = 1
	}
	return &Driver{
		params:  params,
		workers: workers,
		log:     log,
	}
}

// Run processes the whole case stream from r and writes one cost line
// per case to w. Returns the number of cases solved. A parse error or a
// contract violation aborts the stream; nothing is emitted for the
// broken case.
func (d *Driver) Run(r io.Reader, w io.Writer) (int, error) {
	cr := parser.NewCaseReader(r)
	rw := parser.NewResultWriter(w)

	if d.workers == 1 {
		return d.runSequential(cr, rw)
	}
	return d.runParallel(cr, rw)
}

func (d *Driver) runSequential(cr *parser.CaseReader, rw *parser.ResultWriter) (int, error) {
	solved := 0
	for {
		c, err := cr.Next()
		if err != nil {
			return solved, err
		}
		if c == nil {
			break
		}
		cost, err := solver.Solve(d.params, c.GetCheckpoints())
		if err != nil {
			return solved, err
		}
		if err := rw.WriteCost(cost); err != nil {
			return solved, err
		}
		solved++
	}
	return solved, rw.Flush()
}

type caseJob struct {
	idx         int
	checkpoints []datastructure.Checkpoint
}

type caseResult struct {
	idx  int
	cost float64
	err  error
}

func (d *Driver) runParallel(cr *parser.CaseReader, rw *parser.ResultWriter) (int, error) {
	cases := make([][]datastructure.Checkpoint, 0)
	for {
		c, err := cr.Next()
		if err != nil {
			return 0, err
		}
		if c == nil {
			break
		}
		cases = append(cases, c.GetCheckpoints())
	}

	pool := concurrent.NewWorkerPool[caseJob, caseResult](d.workers, len(cases))
	pool.Start(func(job caseJob) caseResult {
		cost, err := solver.Solve(d.params, job.checkpoints)
		return caseResult{idx: job.idx, cost: cost, err: err}
	})
	for i, checkpoints := range cases {
		pool.AddJob(caseJob{idx: i, checkpoints: checkpoints})
	}
	pool.Close()
	pool.Wait()

	costs := make([]float64, len(cases))
	var firstErr error
	for res := range pool.CollectResults() {
		if res.err != nil && firstErr == nil {
			firstErr = res.err
		}
		costs[res.idx] = res.cost
	}
	if firstErr != nil {
		return 0, firstErr
	}

	for _, cost := range costs {
		if err := rw.WriteCost(cost); err != nil {
			return 0, err
		}
	}
	d.log.Debug("case stream solved", zap.Int("cases", len(cases)), zap.Int("workers", d.workers))
	return len(cases), rw.Flush()
}
