package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	opmetrics "github.com/l1sload/l1scroller/op-service/metrics"
)

const Namespace = "l1_scroller"

var _ opmetrics.RegistryMetricer = (*Metrics)(nil)

type Metricer interface {
	RecordInfo(version string)
	RecordUp()

	RecordRead(method string, dur time.Duration, err error)
	RecordSlotValue(query string, v float64)
	RecordQueryError(query string)
}

type Metrics struct {
	ns       string
	registry *prometheus.Registry
	factory  opmetrics.Factory

	info         prometheus.GaugeVec
	up           prometheus.Gauge
	reads        prometheus.CounterVec
	readDuration prometheus.HistogramVec
	slotValue    prometheus.GaugeVec
	queryErrors  prometheus.CounterVec
}

var _ Metricer = (*Metrics)(nil)

func NewMetrics(procName string) *Metrics {
	ns := Namespace
	if procName != "" {
		ns += "_" + procName
	}

	registry := opmetrics.NewRegistry()
	factory := opmetrics.With(registry)

	return &Metrics{
		ns:       ns,
		registry: registry,
		factory:  factory,

		info: *factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: ns,
			Name:      "info",
			Help:      "Information about the l1-scroller",
		}, []string{
			"version",
		}),
		up: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: ns,
			Name:      "up",
			Help:      "1 if the l1-scroller has finished starting up",
		}),
		reads: *factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "reads_total",
			Help:      "Slot reads through the scroller contract, by method and outcome",
		}, []string{
			"method",
			"outcome",
		}),
		readDuration: *factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: ns,
			Name:      "read_duration_seconds",
			Help:      "Latency of slot reads, including failed ones",
			Buckets:   []float64{.025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		}, []string{
			"method",
		}),
		slotValue: *factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: ns,
			Name:      "slot_value",
			Help:      "Value of a monitored query from its latest poll, absent while the query fails",
		}, []string{
			"query",
		}),
		queryErrors: *factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "query_errors_total",
			Help:      "Failed polls of a monitored query",
		}, []string{
			"query",
		}),
	}
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) RecordInfo(version string) {
	m.info.WithLabelValues(version).Set(1)
}

func (m *Metrics) RecordUp() {
	m.up.Set(1)
}

func (m *Metrics) RecordRead(method string, dur time.Duration, err error) {
	m.reads.WithLabelValues(method, outcome(err)).Inc()
	m.readDuration.WithLabelValues(method).Observe(dur.Seconds())
}

func (m *Metrics) RecordSlotValue(query string, v float64) {
	m.slotValue.WithLabelValues(query).Set(v)
}

// RecordQueryError counts the failure and drops the query's value, so a
// stale value is not reported as current.
func (m *Metrics) RecordQueryError(query string) {
	m.queryErrors.WithLabelValues(query).Inc()
	m.slotValue.DeleteLabelValues(query)
}

func (m *Metrics) Document() []opmetrics.DocumentedMetric {
	return m.factory.Document()
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "error"
	}
}
