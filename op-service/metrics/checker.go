package metrics

import (
	"encoding/json"

	"github.com/prometheus/client_golang/prometheus"
	gocl "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

// MetricChecker gathers a registry once and searches the result.
// Lookups that find nothing fail the test.
type MetricChecker struct {
	families []*gocl.MetricFamily
	t        require.TestingT
}

type FamilyChecker struct {
	fam *gocl.MetricFamily
	t   require.TestingT
}

func NewMetricChecker(t require.TestingT, reg *prometheus.Registry) *MetricChecker {
	families, err := reg.Gather()
	require.NoError(t, err, "must gather metrics")
	return &MetricChecker{families: families, t: t}
}

func (m *MetricChecker) FindByName(name string) *FamilyChecker {
	for _, f := range m.families {
		if f.GetName() == name {
			return &FamilyChecker{fam: f, t: m.t}
		}
	}
	require.Failf(m.t, "metric family not found", "name %q", name)
	return nil
}

// Has reports whether a family with the given name was gathered.
func (m *MetricChecker) Has(name string) bool {
	for _, f := range m.families {
		if f.GetName() == name {
			return true
		}
	}
	return false
}

// Dump returns the gathered families as indented JSON, for debugging.
func (m *MetricChecker) Dump() string {
	out, _ := json.MarshalIndent(m.families, "  ", "  ")
	return string(out)
}

// FindByLabels returns the single metric carrying all the given labels.
func (f *FamilyChecker) FindByLabels(labels map[string]string) *gocl.Metric {
	var found *gocl.Metric
	for _, m := range f.fam.GetMetric() {
		if !matchLabels(m, labels) {
			continue
		}
		require.Nil(f.t, found, "labels %v match more than one metric", labels)
		found = m
	}
	require.NotNil(f.t, found, "no metric with labels %v", labels)
	return found
}

// Len is the number of label combinations in the family.
func (f *FamilyChecker) Len() int {
	return len(f.fam.GetMetric())
}

func matchLabels(m *gocl.Metric, want map[string]string) bool {
	for k, v := range want {
		ok := false
		for _, lab := range m.GetLabel() {
			if lab.GetName() == k && lab.GetValue() == v {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}
