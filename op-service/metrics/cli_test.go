package metrics

import (
	"io"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestCLIConfigCheck(t *testing.T) {
	cfg := DefaultCLIConfig()
	require.NoError(t, cfg.Check())

	cfg.Enabled = true
	cfg.ListenPort = 70000
	require.ErrorIs(t, cfg.Check(), ErrInvalidPort)

	cfg.Enabled = false
	require.NoError(t, cfg.Check(), "disabled metrics skip port validation")
}

func TestStartServerServesRegistry(t *testing.T) {
	registry := NewRegistry()
	factory := With(registry)
	up := factory.NewGauge(prometheus.GaugeOpts{Namespace: "test", Name: "up", Help: "up"})
	up.Set(1)

	srv, err := StartServer(registry, "127.0.0.1", 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = srv.Close() })

	resp, err := http.Get(srv.HTTPEndpoint() + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), "test_up 1")

	require.Equal(t, []DocumentedMetric{{Type: "gauge", Name: "test_up", Help: "up"}}, factory.Document())
}
