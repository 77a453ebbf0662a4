package main

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/dsnet/compress/bzip2"
	"github.com/lintang-b-s/skiproute/pkg/generator"
	"github.com/lintang-b-s/skiproute/pkg/geo"
	"github.com/lintang-b-s/skiproute/pkg/logger"
	"github.com/lintang-b-s/skiproute/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	numCases        = flag.Int("cases", 100, "number of cases to generate")
	maxN            = flag.Int("max_n", 1000, "maximum checkpoints per case")
	maxPenalty      = flag.Int("max_penalty", 100, "penalties drawn from [1, max_penalty)")
	seed            = flag.Int64("seed", 0, "rng seed, 0 uses the current time")
	out             = flag.String("out", "", "output file (.bz2 compresses), empty writes stdout")
	allowDuplicates = flag.Bool("allow_duplicates", false, "allow repeated checkpoint positions")
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

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	grid := geo.NewGrid(viper.GetInt("EDGE"), viper.GetFloat64("SPEED"),
		viper.GetInt("MIN_AXIS_OFFSET"))
	gen := generator.New(*seed, grid, *maxPenalty, !*allowDuplicates)

	cases, err := gen.Cases(*numCases, *maxN)
	if err != nil {
		log.Fatal("generate cases", zap.Error(err))
	}

	var w io.Writer = os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatal("create output", zap.Error(err))
		}
		defer f.Close()
		w = f
		if filepath.Ext(*out) == ".bz2" {
			bz, err := bzip2.NewWriter(f, &bzip2.WriterConfig{Level: bzip2.BestCompression})
			if err != nil {
				log.Fatal("bzip2 writer", zap.Error(err))
			}
			defer bz.Close()
			w = bz
		}
	}

	if err := generator.WriteCases(w, cases); err != nil {
		log.Fatal("write cases", zap.Error(err))
	}
	log.Info("generated", zap.Int("cases", *numCases), zap.Int64("seed", *seed))
}
