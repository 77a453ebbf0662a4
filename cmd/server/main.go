package main

import (
	"context"
	"flag"

	"github.com/lintang-b-s/skiproute/pkg/geo"
	"github.com/lintang-b-s/skiproute/pkg/http"
	"github.com/lintang-b-s/skiproute/pkg/http/usecases"
	"github.com/lintang-b-s/skiproute/pkg/logger"
	"github.com/lintang-b-s/skiproute/pkg/solver"
	"github.com/lintang-b-s/skiproute/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	useRateLimit = flag.Bool("rate_limit", false, "enable per-server rate limiting")
)

func main() {
	flag.Parse()
	if err := util.ReadConfig(); err != nil {
		panic(err)
	}
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}

	defaults := solver.Params{
		Grid: geo.NewGrid(viper.GetInt("EDGE"), viper.GetFloat64("SPEED"),
			viper.GetInt("MIN_AXIS_OFFSET")),
		Delay:    viper.GetFloat64("DELAY"),
		Strategy: solver.Strategy(viper.GetString("CANDIDATE_SET")),
	}

	api := http.NewServer(logger)

	solverService := usecases.NewSolverService(logger, defaults)
	ctx, cleanup, err := NewContext()
	if err != nil {
		panic(err)
	}
	api.Use(ctx,
		logger, *useRateLimit, solverService)

	signal := http.GracefulShutdown()

	logger.Info("solver server stopped", zap.String("signal", signal.String()))
	cleanup()
}

func NewContext() (context.Context, func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb, nil
}
