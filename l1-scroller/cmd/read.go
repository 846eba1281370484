package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"

	"github.com/l1sload/l1scroller/l1-scroller/config"
	"github.com/l1sload/l1scroller/l1-scroller/flags"
	"github.com/l1sload/l1scroller/l1-scroller/scroller"
	"github.com/l1sload/l1scroller/op-service/cliutil"
	oplog "github.com/l1sload/l1scroller/op-service/log"
)

// errOut is where one-shot commands log, so that the app writer carries
// only the printed values.
func errOut(cliCtx *cli.Context) io.Writer {
	if cliCtx.App.ErrWriter != nil {
		return cliCtx.App.ErrWriter
	}
	return os.Stderr
}

func setupCommand(cliCtx *cli.Context) (*config.CLIConfig, log.Logger, error) {
	if err := oplog.CheckCLIFlags(cliCtx); err != nil {
		return nil, nil, fmt.Errorf("invalid CLI flags: %w", err)
	}
	cfg := config.NewConfig(cliCtx)
	if err := cfg.Check(); err != nil {
		return nil, nil, fmt.Errorf("invalid CLI flags: %w", err)
	}
	return cfg, oplog.NewLogger(errOut(cliCtx), cfg.LogConfig), nil
}

func ReadAction(cliCtx *cli.Context) error {
	cfg, l, err := setupCommand(cliCtx)
	if err != nil {
		return err
	}
	kind, err := scroller.ParseKind(cliCtx.String(flags.KindFlag.Name))
	if err != nil {
		return err
	}
	contract, err := cliutil.AddressFlag(cliCtx, flags.ContractFlag.Name)
	if err != nil {
		return err
	}
	slot, err := cliutil.Uint256Flag(cliCtx, flags.SlotFlag.Name)
	if err != nil {
		return err
	}

	r, err := scroller.NewReader(cliCtx.Context, l, cfg.ReaderConfig())
	if err != nil {
		return err
	}
	defer r.Close()

	v, err := r.ReadKind(cliCtx.Context, kind, contract, slot)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cliCtx.App.Writer, v.String())
	return err
}
