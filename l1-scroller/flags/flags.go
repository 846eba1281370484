package flags

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/l1sload/l1scroller/l1-scroller/scroller"
	opservice "github.com/l1sload/l1scroller/op-service"
	"github.com/l1sload/l1scroller/op-service/dial"
	oplog "github.com/l1sload/l1scroller/op-service/log"
	opmetrics "github.com/l1sload/l1scroller/op-service/metrics"
)

const EnvVarPrefix = "L1_SCROLLER"

func prefixEnvVars(name string) []string {
	return opservice.PrefixEnvVar(EnvVarPrefix, name)
}

var (
	// Endpoint Flags
	RPCUrlFlag = &cli.StringFlag{
		Name:    "rpc-url",
		Usage:   "JSON-RPC endpoint of the L2 chain hosting the scroller contract",
		Value:   scroller.DefaultRPCUrl,
		EnvVars: prefixEnvVars("RPC_URL"),
	}
	ScrollerAddressFlag = &cli.StringFlag{
		Name:    "scroller-address",
		Usage:   "Address of the L1 scroller view contract",
		Value:   scroller.DefaultScrollerAddress,
		EnvVars: prefixEnvVars("SCROLLER_ADDRESS"),
	}
	DialTimeoutFlag = &cli.DurationFlag{
		Name:    "dial-timeout",
		Usage:   "Timeout for connecting to the endpoint and for its liveness check",
		Value:   dial.DefaultDialTimeout,
		EnvVars: prefixEnvVars("DIAL_TIMEOUT"),
	}

	// Read Flags
	KindFlag = &cli.StringFlag{
		Name:    "kind",
		Usage:   fmt.Sprintf("Type the slot is decoded as, one of %v", scroller.Kinds),
		Value:   scroller.KindUint.String(),
		EnvVars: prefixEnvVars("KIND"),
	}
	ContractFlag = &cli.StringFlag{
		Name:     "contract",
		Usage:    "Address of the L1 contract whose storage is read",
		EnvVars:  prefixEnvVars("CONTRACT"),
		Required: true,
	}
	SlotFlag = &cli.StringFlag{
		Name:     "slot",
		Usage:    "Storage slot number, decimal or 0x-prefixed hex",
		EnvVars:  prefixEnvVars("SLOT"),
		Required: true,
	}

	// Monitor Flags
	QueriesFlag = &cli.StringFlag{
		Name:     "queries",
		Usage:    "TOML or YAML file listing the slots to poll",
		EnvVars:  prefixEnvVars("QUERIES"),
		Required: true,
	}
	PollIntervalFlag = &cli.DurationFlag{
		Name:    "poll-interval",
		Usage:   "How frequently to read the queried slots",
		Value:   12 * time.Second,
		EnvVars: prefixEnvVars("POLL_INTERVAL"),
	}
	MaxConcurrentReadsFlag = &cli.IntFlag{
		Name:    "max-concurrent-reads",
		Usage:   "Maximum number of queries read at the same time within one poll",
		Value:   8,
		EnvVars: prefixEnvVars("MAX_CONCURRENT_READS"),
	}

	// Slot Layout Flags
	KeyFlag = &cli.StringFlag{
		Name:     "key",
		Usage:    "Mapping key, a number or an address",
		Required: true,
	}
	BaseFlag = &cli.StringFlag{
		Name:     "base",
		Usage:    "Slot the mapping is declared at",
		Required: true,
	}
	TokenIDFlag = &cli.StringFlag{
		Name:     "token-id",
		Usage:    "ERC721 token id",
		Required: true,
	}
	AccountFlag = &cli.StringFlag{
		Name:     "account",
		Usage:    "Account address",
		Required: true,
	}
	OperatorFlag = &cli.StringFlag{
		Name:     "operator",
		Usage:    "Operator address",
		Required: true,
	}
)

var Flags = []cli.Flag{
	RPCUrlFlag,
	ScrollerAddressFlag,
	DialTimeoutFlag,
}

var ReadFlags = []cli.Flag{
	KindFlag,
	ContractFlag,
	SlotFlag,
}

var monitorRequiredFlags = []cli.Flag{
	QueriesFlag,
}

var MonitorFlags = []cli.Flag{
	PollIntervalFlag,
	MaxConcurrentReadsFlag,
}

func init() {
	Flags = append(Flags, oplog.CLIFlags(EnvVarPrefix)...)

	MonitorFlags = append(monitorRequiredFlags, MonitorFlags...)
	MonitorFlags = append(MonitorFlags, opmetrics.CLIFlags(EnvVarPrefix)...)
}

// EnvFlags are all flags that can be set from the environment.
func EnvFlags() []cli.Flag {
	out := append([]cli.Flag{}, Flags...)
	out = append(out, ReadFlags...)
	return append(out, MonitorFlags...)
}

func CheckRequired(ctx *cli.Context) error {
	for _, f := range monitorRequiredFlags {
		if !ctx.IsSet(f.Names()[0]) {
			return fmt.Errorf("flag %s is required", f.Names()[0])
		}
	}
	return nil
}
