package main

import (
	"flag"
	"io"
	"os"
	"runtime"

	"github.com/lintang-b-s/skiproute/pkg/driver"
	"github.com/lintang-b-s/skiproute/pkg/geo"
	"github.com/lintang-b-s/skiproute/pkg/logger"
	"github.com/lintang-b-s/skiproute/pkg/parser"
	"github.com/lintang-b-s/skiproute/pkg/solver"
	"github.com/lintang-b-s/skiproute/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	input    = flag.String("input", "", "case file to solve (.bz2 supported), empty reads stdin")
	workers  = flag.Int("workers", runtime.NumCPU(), "cases solved concurrently")
	strategy = flag.String("strategy", "", "candidate set strategy: list or heap (default from config)")
)

func main() {
	flag.Parse()
	if err := util.ReadConfig(); err != nil {
		panic(err)
	}
	log, err := logger.New()
	if err != nil {
		panic(err)
	}

	params := paramsFromConfig()
	if *strategy != "" {
		params.Strategy = solver.Strategy(*strategy)
	}

	var r io.ReadCloser = os.Stdin
	if *input != "" {
		r, err = parser.OpenInput(*input)
		if err != nil {
			log.Fatal("open input", zap.Error(err))
		}
		defer r.Close()
	}

	solved, err := driver.New(params, *workers, log).Run(r, os.Stdout)
	if err != nil {
		log.Fatal("case stream failed", zap.Int("solved", solved), zap.Error(err))
	}
	log.Info("done", zap.Int("cases", solved))
}

func paramsFromConfig() solver.Params {
	return solver.Params{
		Grid: geo.NewGrid(viper.GetInt("EDGE"), viper.GetFloat64("SPEED"),
			viper.GetInt("MIN_AXIS_OFFSET")),
		Delay:    viper.GetFloat64("DELAY"),
		Strategy: solver.Strategy(viper.GetString("CANDIDATE_SET")),
	}
}
