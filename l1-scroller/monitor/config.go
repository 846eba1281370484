package monitor

import (
	"errors"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/l1sload/l1scroller/l1-scroller/config"
	"github.com/l1sload/l1scroller/l1-scroller/flags"
	opmetrics "github.com/l1sload/l1scroller/op-service/metrics"
)

var (
	ErrMissingQueries     = errors.New("queries file is required")
	ErrInvalidInterval    = errors.New("poll interval must be positive")
	ErrInvalidConcurrency = errors.New("max concurrent reads must be positive")
)

type CLIConfig struct {
	config.CLIConfig

	QueriesFile        string
	PollInterval       time.Duration
	MaxConcurrentReads int
	MetricsConfig      opmetrics.CLIConfig
}

func (c *CLIConfig) Check() error {
	if err := c.CLIConfig.Check(); err != nil {
		return err
	}
	if err := c.MetricsConfig.Check(); err != nil {
		return err
	}
	if c.QueriesFile == "" {
		return ErrMissingQueries
	}
	if c.PollInterval <= 0 {
		return ErrInvalidInterval
	}
	if c.MaxConcurrentReads <= 0 {
		return ErrInvalidConcurrency
	}
	return nil
}

func NewConfig(ctx *cli.Context) *CLIConfig {
	return &CLIConfig{
		CLIConfig: *config.NewConfig(ctx),

		QueriesFile:        ctx.String(flags.QueriesFlag.Name),
		PollInterval:       ctx.Duration(flags.PollIntervalFlag.Name),
		MaxConcurrentReads: ctx.Int(flags.MaxConcurrentReadsFlag.Name),
		MetricsConfig:      opmetrics.ReadCLIConfig(ctx),
	}
}
