package main

import (
	"flag"
	"math"
	"os"
	"runtime"
	"time"

	"github.com/lintang-b-s/skiproute/pkg/concurrent"
	"github.com/lintang-b-s/skiproute/pkg/datastructure"
	"github.com/lintang-b-s/skiproute/pkg/generator"
	"github.com/lintang-b-s/skiproute/pkg/geo"
	"github.com/lintang-b-s/skiproute/pkg/logger"
	"github.com/lintang-b-s/skiproute/pkg/solver"
	"github.com/lintang-b-s/skiproute/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	numCases   = flag.Int("cases", 1000, "random cases per run")
	maxN       = flag.Int("max_n", 200, "maximum checkpoints per case")
	maxPenalty = flag.Int("max_penalty", 100, "penalties drawn from [1, max_penalty)")
	seed       = flag.Int64("seed", 0, "rng seed, 0 uses the current time")
	workers    = flag.Int("workers", runtime.NumCPU(), "cases checked concurrently")
	exhaustive = flag.Bool("exhaustive", false, "also check the subset enumeration oracle (max_n <= 20)")
)

const tolerance = 1e-6

type checkJob struct {
	idx         int
	checkpoints []datastructure.Checkpoint
}

type checkResult struct {
	idx      int
	list     float64
	heap     float64
	oracle   float64
	mismatch bool
}

func main() {
	flag.Parse()
	if err := util.ReadConfig(); err != nil {
		panic(err)
	}
	log, err := logger.New()
	if err != nil {
		panic(err)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	if *exhaustive && *maxN > 20 {
		log.Fatal("exhaustive oracle is exponential", zap.Int("max_n", *maxN))
	}

	grid := geo.NewGrid(viper.GetInt("EDGE"), viper.GetFloat64("SPEED"),
		viper.GetInt("MIN_AXIS_OFFSET"))
	gen := generator.New(*seed, grid, *maxPenalty, true)
	cases, err := gen.Cases(*numCases, *maxN)
	if err != nil {
		log.Fatal("generate cases", zap.Error(err))
	}

	params := solver.Params{
		Grid:            grid,
		Delay:           viper.GetFloat64("DELAY"),
		CheckInvariants: true,
	}

	pool := concurrent.NewWorkerPool[checkJob, checkResult](*workers, len(cases))
	pool.Start(func(job checkJob) checkResult {
		res := checkResult{idx: job.idx}

		listParams := params
		listParams.Strategy = solver.StrategyList
		res.list, _ = solver.Solve(listParams, job.checkpoints)

		heapParams := params
		heapParams.Strategy = solver.StrategyHeap
		res.heap, _ = solver.Solve(heapParams, job.checkpoints)

		res.oracle = solver.Reference(params, job.checkpoints)
		if *exhaustive {
			brute := solver.Exhaustive(params, job.checkpoints)
			res.mismatch = math.Abs(brute-res.oracle) > tolerance
		}
		res.mismatch = res.mismatch ||
			math.Abs(res.list-res.oracle) > tolerance ||
			math.Abs(res.heap-res.oracle) > tolerance
		return res
	})
	for i, checkpoints := range cases {
		pool.AddJob(checkJob{idx: i, checkpoints: checkpoints})
	}
	pool.Close()
	pool.Wait()

	failed := 0
	for res := range pool.CollectResults() {
		if res.mismatch {
			failed++
			log.Error("answer mismatch",
				zap.Int("case", res.idx),
				zap.Int("n", len(cases[res.idx])),
				zap.Float64("list", res.list),
				zap.Float64("heap", res.heap),
				zap.Float64("oracle", res.oracle))
		}
	}

	if failed > 0 {
		log.Error("stress run failed", zap.Int("cases", *numCases), zap.Int("failed", failed),
			zap.Int64("seed", *seed))
		os.Exit(1)
	}
	log.Info("stress run passed", zap.Int("cases", *numCases), zap.Int64("seed", *seed))
}
