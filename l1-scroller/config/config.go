package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/urfave/cli/v2"

	"github.com/l1sload/l1scroller/l1-scroller/bindings"
	"github.com/l1sload/l1scroller/l1-scroller/flags"
	"github.com/l1sload/l1scroller/l1-scroller/scroller"
	oplog "github.com/l1sload/l1scroller/op-service/log"
)

var (
	ErrMissingRPCUrl      = errors.New("rpc url is required")
	ErrInvalidScroller    = errors.New("invalid scroller address")
	ErrInvalidDialTimeout = errors.New("dial timeout must be positive")
)

// CLIConfig is the endpoint and logging configuration shared by all
// commands.
type CLIConfig struct {
	RPCUrl          string
	ScrollerAddress string
	DialTimeout     time.Duration
	LogConfig       oplog.CLIConfig
}

func (c *CLIConfig) Check() error {
	if c.RPCUrl == "" {
		return ErrMissingRPCUrl
	}
	if !common.IsHexAddress(c.ScrollerAddress) || common.HexToAddress(c.ScrollerAddress) == (common.Address{}) {
		return fmt.Errorf("%w: %q", ErrInvalidScroller, c.ScrollerAddress)
	}
	if c.DialTimeout <= 0 {
		return ErrInvalidDialTimeout
	}
	return nil
}

// ReaderConfig binds the configured endpoint to the L1Scroller schema.
func (c *CLIConfig) ReaderConfig() scroller.Config {
	return scroller.Config{
		RPCUrl:          c.RPCUrl,
		ScrollerAddress: common.HexToAddress(c.ScrollerAddress),
		Schema:          bindings.L1ScrollerMetaData,
		DialTimeout:     c.DialTimeout,
	}
}

func NewConfig(ctx *cli.Context) *CLIConfig {
	return &CLIConfig{
		RPCUrl:          ctx.String(flags.RPCUrlFlag.Name),
		ScrollerAddress: ctx.String(flags.ScrollerAddressFlag.Name),
		DialTimeout:     ctx.Duration(flags.DialTimeoutFlag.Name),
		LogConfig:       oplog.ReadCLIConfig(ctx),
	}
}
