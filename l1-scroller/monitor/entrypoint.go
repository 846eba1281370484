package monitor

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/l1sload/l1scroller/l1-scroller/flags"
	opservice "github.com/l1sload/l1scroller/op-service"
	"github.com/l1sload/l1scroller/op-service/cliapp"
	oplog "github.com/l1sload/l1scroller/op-service/log"
)

func Main(version string) cliapp.LifecycleAction {
	return func(cliCtx *cli.Context, _ context.CancelCauseFunc) (cliapp.Lifecycle, error) {
		if err := flags.CheckRequired(cliCtx); err != nil {
			return nil, err
		}
		if err := oplog.CheckCLIFlags(cliCtx); err != nil {
			return nil, fmt.Errorf("invalid CLI flags: %w", err)
		}
		cfg := NewConfig(cliCtx)
		if err := cfg.Check(); err != nil {
			return nil, fmt.Errorf("invalid CLI flags: %w", err)
		}

		l := oplog.NewLogger(oplog.AppOut(cliCtx), cfg.LogConfig)
		opservice.ValidateEnvVars(flags.EnvVarPrefix, flags.EnvFlags(), l)

		l.Info("initializing monitor", "queries", cfg.QueriesFile)
		return MonitorServiceFromCLIConfig(cliCtx.Context, version, cfg, l)
	}
}
