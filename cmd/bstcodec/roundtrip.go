package main

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/wippyai/bstcodec/codec"
	"github.com/wippyai/bstcodec/tree"
)

func roundTripFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "nodes",
			Usage:   "number of random keys inserted per run",
			Value:   30,
			EnvVars: []string{"BSTCODEC_NODES"},
		},
		&cli.IntFlag{
			Name:    "range",
			Usage:   "keys are drawn from [0, range)",
			Value:   100,
			EnvVars: []string{"BSTCODEC_KEY_RANGE"},
		},
		&cli.IntFlag{
			Name:    "runs",
			Usage:   "number of random trees to check",
			Value:   1,
			EnvVars: []string{"BSTCODEC_RUNS"},
		},
		&cli.Int64Flag{
			Name:    "seed",
			Usage:   "random seed; 0 picks one at random",
			EnvVars: []string{"BSTCODEC_SEED"},
		},
		&cli.BoolFlag{
			Name:  "print",
			Usage: "print every encoded tree",
		},
	}
}

func roundTripCommand() *cli.Command {
	return &cli.Command{
		Name:   "roundtrip",
		Usage:  "encode random trees, decode them and compare the re-encoding (default)",
		Flags:  roundTripFlags(),
		Action: runRoundTrip,
	}
}

type roundTripConfig struct {
	nodes    int
	keyRange int
	runs     int
	seed     int64
	print    bool
}

func runRoundTrip(cctx *cli.Context) error {
	cfg := roundTripConfig{
		nodes:    cctx.Int("nodes"),
		keyRange: cctx.Int("range"),
		runs:     cctx.Int("runs"),
		seed:     cctx.Int64("seed"),
		print:    cctx.Bool("print"),
	}
	if cfg.nodes < 0 || cfg.runs < 1 || cfg.keyRange < 1 {
		return fmt.Errorf("nodes must be >= 0, runs and range must be >= 1")
	}

	faker := gofakeit.New(cfg.seed)
	out := cctx.App.Writer

	for i := 0; i < cfg.runs; i++ {
		t := randomTree(faker, cfg.nodes, cfg.keyRange)

		res, err := codec.RoundTrip(t)
		if err != nil {
			return fmt.Errorf("run %d: decode %q: %w", i+1, res.Encoded, err)
		}
		log.Debug("round trip",
			zap.Int("run", i+1),
			zap.Int("nodes", t.Len()),
			zap.Int("height", t.Height()),
			zap.Bool("ok", res.OK()))

		if cfg.print {
			fmt.Fprintln(out, res.Encoded)
		}
		if !res.OK() {
			log.Error("round trip mismatch",
				zap.Int("run", i+1),
				zap.String("encoded", res.Encoded),
				zap.String("reencoded", res.Reencoded))
			return fmt.Errorf("run %d: error encoding or decoding the tree", i+1)
		}
	}

	log.Info("round trips completed", zap.Int("runs", cfg.runs), zap.Int64("seed", cfg.seed))
	fmt.Fprintln(out, "Test runs completed successfully!")
	return nil
}

// randomTree inserts n keys drawn from [0, keyRange). Duplicates are dropped
// by the tree, so the result may hold fewer than n nodes.
func randomTree(faker *gofakeit.Faker, n, keyRange int) *tree.Tree[int] {
	t := tree.New[int]()
	for i := 0; i < n; i++ {
		t.InsertKey(faker.Number(0, keyRange-1))
	}
	return t
}
