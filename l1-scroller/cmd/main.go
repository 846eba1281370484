package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"

	"github.com/l1sload/l1scroller/l1-scroller/flags"
	"github.com/l1sload/l1scroller/l1-scroller/metrics"
	"github.com/l1sload/l1scroller/l1-scroller/monitor"
	opservice "github.com/l1sload/l1scroller/op-service"
	"github.com/l1sload/l1scroller/op-service/cliapp"
	oplog "github.com/l1sload/l1scroller/op-service/log"
	"github.com/l1sload/l1scroller/op-service/metrics/doc"
)

var (
	Version   = "v0.0.0"
	GitCommit = ""
	GitDate   = ""
)

func main() {
	oplog.SetupDefaults()

	app := newApp()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := app.RunContext(ctx, os.Args); err != nil {
		log.Crit("Application failed", "message", err)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Flags = flags.Flags
	app.Version = opservice.FormatVersion(Version, GitCommit, GitDate, "")
	app.Name = "l1scroller"
	app.Usage = "L1 storage reader"
	app.Description = "Reads L1 contract storage slots through the L2 scroller contract"
	app.Commands = []*cli.Command{
		{
			Name:      "read",
			Usage:     "Reads one storage slot and prints the decoded value",
			Flags:     flags.ReadFlags,
			Action:    ReadAction,
			ArgsUsage: " ",
		},
		{
			Name:   "example",
			Usage:  "Reads the uint, address and string slots of the demo contract",
			Action: ExampleAction,
		},
		{
			Name:        "slot",
			Usage:       "Derives storage slot numbers of Solidity mappings",
			Subcommands: slotCommands,
		},
		{
			Name:   "monitor",
			Usage:  "Polls a set of storage slots and exports them as metrics",
			Flags:  flags.MonitorFlags,
			Action: cliapp.LifecycleCmd(monitor.Main(Version)),
		},
		{
			Name:        "doc",
			Subcommands: doc.NewSubcommands(metrics.NewMetrics("")),
		},
	}
	return app
}
