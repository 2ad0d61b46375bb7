package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/wippyai/bstcodec/codec"
	"github.com/wippyai/bstcodec/tree"
)

func encodeCommand() *cli.Command {
	return &cli.Command{
		Name:      "encode",
		Usage:     "insert keys in the given order and print the encoded tree",
		ArgsUsage: "<key>...",
		Action:    runEncode,
	}
}

func decodeCommand() *cli.Command {
	return &cli.Command{
		Name:      "decode",
		Usage:     "decode an encoded tree and print its canonical encoding",
		ArgsUsage: "<text>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "strict",
				Usage:   "reject trees that break the search order",
				EnvVars: []string{"BSTCODEC_STRICT"},
			},
		},
		Action: runDecode,
	}
}

func showCommand() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "decode an encoded tree and draw it",
		ArgsUsage: "<text>",
		Action:    runShow,
	}
}

func runEncode(cctx *cli.Context) error {
	t, err := parseKeys(cctx.Args().Slice())
	if err != nil {
		return err
	}
	fmt.Fprintln(cctx.App.Writer, codec.Encode(t))
	return nil
}

func runDecode(cctx *cli.Context) error {
	t, err := decodeArg(cctx, cctx.Bool("strict"))
	if err != nil {
		return err
	}
	log.Info("decoded tree", zap.Int("nodes", t.Len()), zap.Int("height", t.Height()))
	fmt.Fprintln(cctx.App.Writer, codec.Encode(t))
	return nil
}

func runShow(cctx *cli.Context) error {
	t, err := decodeArg(cctx, false)
	if err != nil {
		return err
	}
	fmt.Fprint(cctx.App.Writer, renderTree(t))
	return nil
}

func decodeArg(cctx *cli.Context, strict bool) (*tree.Tree[int], error) {
	if cctx.Args().Len() != 1 {
		return nil, fmt.Errorf("expected exactly one encoded tree argument")
	}
	decode := codec.Decode
	if strict {
		decode = codec.DecodeStrict
	}
	t, err := decode(cctx.Args().First())
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return t, nil
}

// parseKeys builds a tree by inserting keys in argument order.
func parseKeys(args []string) (*tree.Tree[int], error) {
	keys, err := parseKeyList(args)
	if err != nil {
		return nil, err
	}
	t := tree.New[int]()
	for _, k := range keys {
		t.InsertKey(k)
	}
	return t, nil
}

// parseKeyList reads decimal keys. Each argument may hold several keys
// separated by spaces or commas.
func parseKeyList(args []string) ([]int, error) {
	var keys []int
	for _, arg := range args {
		fields := strings.FieldsFunc(arg, func(r rune) bool { return r == ',' || r == ' ' })
		for _, f := range fields {
			k, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", f, err)
			}
			keys = append(keys, k)
		}
	}
	return keys, nil
}
