package monitor

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"
	"github.com/holiman/uint256"
	"golang.org/x/sync/errgroup"

	"github.com/l1sload/l1scroller/l1-scroller/metrics"
	"github.com/l1sload/l1scroller/l1-scroller/scroller"
)

type SlotReader interface {
	ReadKind(ctx context.Context, kind scroller.Kind, l1Contract common.Address, slot *uint256.Int) (scroller.Value, error)
}

type DriverSetup struct {
	Log    log.Logger
	Metr   metrics.Metricer
	Reader SlotReader

	PollInterval       time.Duration
	MaxConcurrentReads int
}

// Result is the outcome of reading one query during a poll.
type Result struct {
	Query string
	Value scroller.Value
	Err   error
}

// Monitor polls a fixed set of queries at a fixed interval. Queries within a
// poll are read concurrently; a failed query does not affect the others.
type Monitor struct {
	DriverSetup

	targets []target

	wg   sync.WaitGroup
	done chan struct{}

	ctx    context.Context
	cancel context.CancelFunc

	mutex   sync.Mutex
	running bool
}

func NewMonitor(setup DriverSetup, queries []Query) (*Monitor, error) {
	if setup.Reader == nil {
		return nil, errors.New("slot reader is required")
	}
	if setup.PollInterval <= 0 {
		return nil, errors.New("poll interval must be positive")
	}
	if setup.Metr == nil {
		setup.Metr = metrics.NoopMetrics
	}
	ts, err := targets(queries)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Monitor{
		DriverSetup: setup,
		targets:     ts,
		done:        make(chan struct{}),
		ctx:         ctx,
		cancel:      cancel,
	}, nil
}

func (m *Monitor) Start() error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.running {
		return errors.New("monitor is already running")
	}
	m.running = true

	m.wg.Add(1)
	go m.loop()

	m.Log.Info("started monitor", "queries", len(m.targets), "interval", m.PollInterval)
	return nil
}

func (m *Monitor) Stop() error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if !m.running {
		return errors.New("monitor is not running")
	}
	m.running = false

	m.cancel()
	close(m.done)
	m.wg.Wait()

	m.Log.Info("stopped monitor")
	return nil
}

func (m *Monitor) Running() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.running
}

func (m *Monitor) loop() {
	defer m.wg.Done()

	ticker := time.NewTicker(m.PollInterval)
	defer ticker.Stop()

	m.Poll(m.ctx)
	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			// Prioritize quit signal
			select {
			case <-m.done:
				return
			default:
			}
			m.Poll(m.ctx)
		}
	}
}

// Poll reads every query once and records the results. The returned slice
// is in query order.
func (m *Monitor) Poll(ctx context.Context) []Result {
	results := make([]Result, len(m.targets))

	var g errgroup.Group
	if m.MaxConcurrentReads > 0 {
		g.SetLimit(m.MaxConcurrentReads)
	}
	for i, t := range m.targets {
		g.Go(func() error {
			results[i] = m.read(ctx, t)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func (m *Monitor) read(ctx context.Context, t target) Result {
	v, err := m.Reader.ReadKind(ctx, t.kind, t.contract, t.slot)
	if err != nil {
		if ctx.Err() != nil || errors.Is(err, context.Canceled) {
			m.Log.Debug("Query read canceled", "query", t.name, "err", err)
			return Result{Query: t.name, Err: err}
		}
		m.Metr.RecordQueryError(t.name)
		m.Log.Warn("Failed to read query", "query", t.name, "contract", t.contract, "slot", t.slot, "err", err)
		return Result{Query: t.name, Err: err}
	}
	if f, ok := v.Float64(); ok {
		m.Metr.RecordSlotValue(t.name, f)
	}
	m.Log.Info("Read query", "query", t.name, "kind", t.kind, "value", v)
	return Result{Query: t.name, Value: v}
}
