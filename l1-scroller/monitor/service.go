package monitor

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/ethereum/go-ethereum/log"

	"github.com/l1sload/l1scroller/l1-scroller/metrics"
	"github.com/l1sload/l1scroller/l1-scroller/scroller"
	"github.com/l1sload/l1scroller/op-service/cliapp"
	"github.com/l1sload/l1scroller/op-service/httputil"
	opmetrics "github.com/l1sload/l1scroller/op-service/metrics"
)

var ErrAlreadyStopped = errors.New("already stopped")

type MonitorService struct {
	Log     log.Logger
	Metrics metrics.Metricer
	Reader  *scroller.Reader

	Version string

	driver     *Monitor
	metricsSrv *httputil.HTTPServer

	stopped atomic.Bool
}

func MonitorServiceFromCLIConfig(ctx context.Context, version string, cfg *CLIConfig, log log.Logger) (*MonitorService, error) {
	var ms MonitorService
	if err := ms.initFromCLIConfig(ctx, version, cfg, log); err != nil {
		return nil, errors.Join(err, ms.Stop(ctx))
	}
	return &ms, nil
}

func (ms *MonitorService) initFromCLIConfig(ctx context.Context, version string, cfg *CLIConfig, log log.Logger) error {
	ms.Version = version
	ms.Log = log

	ms.initMetrics(cfg)

	queries, err := LoadQueries(cfg.QueriesFile)
	if err != nil {
		return err
	}
	if err := ms.initReader(ctx, cfg); err != nil {
		return err
	}
	if err := ms.initMetricsServer(cfg); err != nil {
		return fmt.Errorf("failed to start metrics server: %w", err)
	}
	if err := ms.initDriver(cfg, queries); err != nil {
		return fmt.Errorf("failed to init monitor: %w", err)
	}

	ms.Metrics.RecordInfo(ms.Version)
	ms.Metrics.RecordUp()
	return nil
}

func (ms *MonitorService) initMetrics(cfg *CLIConfig) {
	if cfg.MetricsConfig.Enabled {
		ms.Metrics = metrics.NewMetrics("")
	} else {
		ms.Metrics = metrics.NoopMetrics
	}
}

func (ms *MonitorService) initReader(ctx context.Context, cfg *CLIConfig) error {
	r, err := scroller.NewReader(ctx, ms.Log, cfg.ReaderConfig(), scroller.WithMetrics(ms.Metrics))
	if err != nil {
		return err
	}
	ms.Reader = r
	return nil
}

func (ms *MonitorService) initMetricsServer(cfg *CLIConfig) error {
	if !cfg.MetricsConfig.Enabled {
		ms.Log.Info("metrics disabled")
		return nil
	}
	m, ok := ms.Metrics.(opmetrics.RegistryMetricer)
	if !ok {
		return fmt.Errorf("metrics were enabled, but metricer %T does not expose registry for metrics-server", ms.Metrics)
	}
	ms.Log.Debug("starting metrics server", "addr", cfg.MetricsConfig.ListenAddr, "port", cfg.MetricsConfig.ListenPort)
	metricsSrv, err := opmetrics.StartServer(m.Registry(), cfg.MetricsConfig.ListenAddr, cfg.MetricsConfig.ListenPort)
	if err != nil {
		return err
	}
	ms.Log.Info("started metrics server", "addr", metricsSrv.Addr())
	ms.metricsSrv = metricsSrv
	return nil
}

func (ms *MonitorService) initDriver(cfg *CLIConfig, queries []Query) error {
	driver, err := NewMonitor(DriverSetup{
		Log:                ms.Log,
		Metr:               ms.Metrics,
		Reader:             ms.Reader,
		PollInterval:       cfg.PollInterval,
		MaxConcurrentReads: cfg.MaxConcurrentReads,
	}, queries)
	if err != nil {
		return err
	}
	ms.driver = driver
	return nil
}

func (ms *MonitorService) Start(ctx context.Context) error {
	return ms.driver.Start()
}

func (ms *MonitorService) Stopped() bool {
	return ms.stopped.Load()
}

func (ms *MonitorService) Stop(ctx context.Context) error {
	if ms.Stopped() {
		return ErrAlreadyStopped
	}
	ms.Log.Info("stopping monitor service")

	var result error
	if ms.driver != nil && ms.driver.Running() {
		if err := ms.driver.Stop(); err != nil {
			result = errors.Join(result, fmt.Errorf("failed to stop monitor: %w", err))
		}
	}

	if ms.metricsSrv != nil {
		if err := ms.metricsSrv.Stop(ctx); err != nil {
			result = errors.Join(result, fmt.Errorf("failed to stop metrics server: %w", err))
		}
	}

	if ms.Reader != nil {
		ms.Reader.Close()
	}

	if result == nil {
		ms.stopped.Store(true)
		ms.Log.Info("stopped monitor service")
	}
	return result
}

// MetricsEndpoint is empty when metrics are disabled.
func (ms *MonitorService) MetricsEndpoint() string {
	if ms.metricsSrv == nil {
		return ""
	}
	return ms.metricsSrv.HTTPEndpoint()
}

var _ cliapp.Lifecycle = (*MonitorService)(nil)
