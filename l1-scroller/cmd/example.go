package main

import (
	"context"
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/urfave/cli/v2"

	"github.com/l1sload/l1scroller/l1-scroller/scroller"
)

// ExampleContract is an L1 contract holding a uint in slot 0, an address in
// slot 1 and a short string in slot 2.
var ExampleContract = common.HexToAddress("0xA8E50c2607678747D9d8A24AC52234712bE41fD9")

// ExampleAction prints the three demo values. Failures are printed rather
// than returned, so the command always exits 0.
func ExampleAction(cliCtx *cli.Context) error {
	out := cliCtx.App.Writer
	cfg, l, err := setupCommand(cliCtx)
	if err != nil {
		return err
	}
	r, err := scroller.NewReader(cliCtx.Context, l, cfg.ReaderConfig())
	if err != nil {
		fmt.Fprintln(out, "Error:", err)
		return nil
	}
	defer r.Close()

	if err := runExample(cliCtx.Context, r, out); err != nil {
		fmt.Fprintln(out, "Error:", err)
	}
	return nil
}

func runExample(ctx context.Context, r *scroller.Reader, out io.Writer) error {
	u, err := r.ReadUint(ctx, ExampleContract, uint256.NewInt(0))
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "Uint Value:", u.Dec())

	addr, err := r.ReadAddress(ctx, ExampleContract, uint256.NewInt(1))
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "Address Value:", addr.Hex())

	s, err := r.ReadString(ctx, ExampleContract, uint256.NewInt(2))
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "String Value:", s)
	return nil
}
