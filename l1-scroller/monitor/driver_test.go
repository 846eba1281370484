package monitor

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/l1sload/l1scroller/l1-scroller/metrics"
	"github.com/l1sload/l1scroller/l1-scroller/scroller"
	opmetrics "github.com/l1sload/l1scroller/op-service/metrics"
	"github.com/l1sload/l1scroller/op-service/testlog"
)

var testContract = common.HexToAddress("0xA8E50c2607678747D9d8A24AC52234712bE41fD9")

// fakeReader answers by slot number.
type fakeReader struct {
	mu     sync.Mutex
	values map[uint64]scroller.Value
	errs   map[uint64]error
	reads  atomic.Int64

	inFlight    atomic.Int64
	maxInFlight atomic.Int64
	delay       time.Duration
}

func newFakeReader() *fakeReader {
	return &fakeReader{
		values: make(map[uint64]scroller.Value),
		errs:   make(map[uint64]error),
	}
}

func (f *fakeReader) ReadKind(ctx context.Context, kind scroller.Kind, l1Contract common.Address, slot *uint256.Int) (scroller.Value, error) {
	f.reads.Add(1)
	n := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)
	for {
		cur := f.maxInFlight.Load()
		if n <= cur || f.maxInFlight.CompareAndSwap(cur, n) {
			break
		}
	}
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return scroller.Value{}, ctx.Err()
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.errs[slot.Uint64()]; ok {
		return scroller.Value{}, err
	}
	v := f.values[slot.Uint64()]
	v.Kind = kind
	return v, nil
}

func testQueries() []Query {
	return []Query{
		{Name: "counter", Contract: testContract.Hex(), Slot: "0"},
		{Name: "owner", Contract: testContract.Hex(), Slot: "1", Kind: "address"},
		{Name: "label", Contract: testContract.Hex(), Slot: "2", Kind: "string"},
	}
}

func setupMonitor(t *testing.T, reader SlotReader, queries []Query) (*Monitor, *metrics.Metrics, *testlog.CapturingHandler) {
	logger, logs := testlog.CaptureLogger(t, log.LevelDebug)
	m := metrics.NewMetrics("")
	mon, err := NewMonitor(DriverSetup{
		Log:                logger,
		Metr:               m,
		Reader:             reader,
		PollInterval:       time.Hour,
		MaxConcurrentReads: 2,
	}, queries)
	require.NoError(t, err)
	return mon, m, logs
}

func TestPoll(t *testing.T) {
	reader := newFakeReader()
	owner := common.HexToAddress("0x4838B106FCe9647Bdf1E7877BF73cE8B0BAD5f97")
	reader.values[0] = scroller.Value{Uint: uint256.NewInt(2)}
	reader.values[1] = scroller.Value{Address: owner}
	reader.values[2] = scroller.Value{Text: "scroll"}
	mon, m, logs := setupMonitor(t, reader, testQueries())

	results := mon.Poll(context.Background())
	require.Len(t, results, 3)
	for i, q := range testQueries() {
		require.Equal(t, q.Name, results[i].Query)
		require.NoError(t, results[i].Err)
	}
	require.Equal(t, "2", results[0].Value.String())
	require.Equal(t, owner, results[1].Value.Address)
	require.Equal(t, "scroll", results[2].Value.Text)

	checker := opmetrics.NewMetricChecker(t, m.Registry())
	values := checker.FindByName("l1_scroller_slot_value")
	require.Equal(t, 1, values.Len(), "only numeric queries are exported")
	require.Equal(t, 2.0, values.FindByLabels(map[string]string{"query": "counter"}).Gauge.GetValue())

	require.Len(t, logs.FindLogs("Read query"), 3)
}

func TestPollIsolatesFailures(t *testing.T) {
	reader := newFakeReader()
	reader.values[0] = scroller.Value{Uint: uint256.NewInt(7)}
	readErr := errors.New("execution reverted")
	reader.errs[1] = readErr
	mon, m, logs := setupMonitor(t, reader, testQueries())

	results := mon.Poll(context.Background())
	require.NoError(t, results[0].Err)
	require.ErrorIs(t, results[1].Err, readErr)
	require.NoError(t, results[2].Err)

	checker := opmetrics.NewMetricChecker(t, m.Registry())
	require.Equal(t, 1.0, checker.FindByName("l1_scroller_query_errors_total").FindByLabels(map[string]string{"query": "owner"}).Counter.GetValue())
	require.Equal(t, 7.0, checker.FindByName("l1_scroller_slot_value").FindByLabels(map[string]string{"query": "counter"}).Gauge.GetValue())

	rec := logs.FindLog(slog.LevelWarn, "Failed to read query")
	require.NotNil(t, rec)
	v, ok := rec.AttrValue("query")
	require.True(t, ok)
	require.Equal(t, "owner", v.String())
}

func TestPollLimitsConcurrency(t *testing.T) {
	reader := newFakeReader()
	reader.delay = 20 * time.Millisecond
	var queries []Query
	for i, name := range []string{"a", "b", "c", "d", "e", "f"} {
		queries = append(queries, Query{Name: name, Contract: testContract.Hex(), Slot: uint256.NewInt(uint64(i)).Dec()})
	}
	mon, _, _ := setupMonitor(t, reader, queries)

	results := mon.Poll(context.Background())
	require.Len(t, results, 6)
	require.EqualValues(t, 6, reader.reads.Load())
	require.LessOrEqual(t, reader.maxInFlight.Load(), int64(2))
}

func TestMonitorStartStop(t *testing.T) {
	reader := newFakeReader()
	mon, err := NewMonitor(DriverSetup{
		Log:          testlog.Logger(t, log.LevelInfo),
		Reader:       reader,
		PollInterval: 5 * time.Millisecond,
	}, testQueries())
	require.NoError(t, err)

	require.ErrorContains(t, mon.Stop(), "not running")
	require.NoError(t, mon.Start())
	require.True(t, mon.Running())
	require.ErrorContains(t, mon.Start(), "already running")

	require.Eventually(t, func() bool {
		return reader.reads.Load() >= 6
	}, 5*time.Second, 5*time.Millisecond)

	require.NoError(t, mon.Stop())
	require.False(t, mon.Running())
	stopped := reader.reads.Load()
	time.Sleep(20 * time.Millisecond)
	require.Equal(t, stopped, reader.reads.Load())
}

func TestStopDuringPollIsNotAQueryError(t *testing.T) {
	reader := newFakeReader()
	reader.delay = time.Minute
	mon, m, logs := setupMonitor(t, reader, testQueries())

	require.NoError(t, mon.Start())
	require.Eventually(t, func() bool {
		return reader.inFlight.Load() == 2
	}, 5*time.Second, 5*time.Millisecond)
	require.NoError(t, mon.Stop())

	checker := opmetrics.NewMetricChecker(t, m.Registry())
	require.False(t, checker.Has("l1_scroller_query_errors_total"))
	require.False(t, checker.Has("l1_scroller_slot_value"))
	require.Nil(t, logs.FindLog(slog.LevelWarn, "Failed to read query"))
	require.NotEmpty(t, logs.FindLogs("Query read canceled"))
}

func TestNewMonitorValidation(t *testing.T) {
	reader := newFakeReader()
	_, err := NewMonitor(DriverSetup{Log: log.New(), PollInterval: time.Second}, testQueries())
	require.ErrorContains(t, err, "slot reader")
	_, err = NewMonitor(DriverSetup{Log: log.New(), Reader: reader}, testQueries())
	require.ErrorContains(t, err, "poll interval")
	_, err = NewMonitor(DriverSetup{Log: log.New(), Reader: reader, PollInterval: time.Second}, nil)
	require.ErrorIs(t, err, ErrNoQueries)
}
