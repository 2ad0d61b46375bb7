package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/wippyai/bstcodec/codec"
)

var log = zap.NewNop()

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	return newApp().Run(args)
}

func newApp() *cli.App {
	app := &cli.App{
		Name:    "bstcodec",
		Usage:   "build binary search trees and round-trip their text encoding",
		Version: versioninfo.Short(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "debug, info, warn or error",
				Value:   "warn",
				EnvVars: []string{"BSTCODEC_LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "console or json",
				Value:   "console",
				EnvVars: []string{"BSTCODEC_LOG_FORMAT"},
			},
		},
		Before: func(cctx *cli.Context) error {
			l, err := newLogger(cctx.String("log-level"), cctx.String("log-format"))
			if err != nil {
				return err
			}
			log = l
			codec.SetLogger(l.Named("codec"))
			return nil
		},
		After: func(cctx *cli.Context) error {
			_ = log.Sync()
			return nil
		},
	}
	app.Commands = []*cli.Command{
		roundTripCommand(),
		encodeCommand(),
		decodeCommand(),
		showCommand(),
		interactiveCommand(),
	}
	app.Action = runRoundTrip
	app.Flags = append(app.Flags, roundTripFlags()...)
	return app
}
