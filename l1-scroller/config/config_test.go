package config

import (
	"flag"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/l1sload/l1scroller/l1-scroller/flags"
	"github.com/l1sload/l1scroller/l1-scroller/scroller"
)

func validConfig() *CLIConfig {
	return &CLIConfig{
		RPCUrl:          "http://localhost:8545",
		ScrollerAddress: scroller.DefaultScrollerAddress,
		DialTimeout:     time.Second,
	}
}

func TestValidConfig(t *testing.T) {
	cfg := validConfig()
	require.NoError(t, cfg.Check())

	rc := cfg.ReaderConfig()
	require.NoError(t, rc.Check())
	require.Equal(t, common.HexToAddress(scroller.DefaultScrollerAddress), rc.ScrollerAddress)
	require.Equal(t, "http://localhost:8545", rc.RPCUrl)
	require.Equal(t, time.Second, rc.DialTimeout)
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*CLIConfig)
		want   error
	}{
		{name: "missing rpc", modify: func(c *CLIConfig) { c.RPCUrl = "" }, want: ErrMissingRPCUrl},
		{name: "bad address", modify: func(c *CLIConfig) { c.ScrollerAddress = "0x1234" }, want: ErrInvalidScroller},
		{name: "zero address", modify: func(c *CLIConfig) { c.ScrollerAddress = common.Address{}.Hex() }, want: ErrInvalidScroller},
		{name: "zero timeout", modify: func(c *CLIConfig) { c.DialTimeout = 0 }, want: ErrInvalidDialTimeout},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := validConfig()
			test.modify(cfg)
			require.ErrorIs(t, cfg.Check(), test.want)
		})
	}
}

func TestNewConfigDefaults(t *testing.T) {
	app := cli.NewApp()
	app.Flags = flags.Flags
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	for _, f := range app.Flags {
		require.NoError(t, f.Apply(set))
	}
	require.NoError(t, set.Parse([]string{"--rpc-url", "http://127.0.0.1:9545"}))
	ctx := cli.NewContext(app, set, nil)

	cfg := NewConfig(ctx)
	require.NoError(t, cfg.Check())
	require.Equal(t, "http://127.0.0.1:9545", cfg.RPCUrl)
	require.Equal(t, scroller.DefaultScrollerAddress, cfg.ScrollerAddress)
	require.Equal(t, flags.DialTimeoutFlag.Value, cfg.DialTimeout)
}
