package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/l1sload/l1scroller/l1-scroller/scroller/scrollertest"
	"github.com/l1sload/l1scroller/op-service/metrics"
)

var (
	testScroller = common.HexToAddress("0xfA75fa50f36bb87669d0D4B8382BeC1C1C9570eC")
	testAddress  = common.HexToAddress("0x4838B106FCe9647Bdf1E7877BF73cE8B0BAD5f97")
)

func runApp(ctx context.Context, args ...string) (stdout string, stderr string, err error) {
	app := newApp()
	var out, errOut bytes.Buffer
	app.Writer = &out
	app.ErrWriter = &errOut
	err = app.RunContext(ctx, append([]string{"l1scroller"}, args...))
	return out.String(), errOut.String(), err
}

func exampleBackend(t *testing.T) (*scrollertest.Backend, string) {
	backend := scrollertest.NewBackend(t, testScroller)
	backend.Set("readUint", ExampleContract, 0, big.NewInt(2))
	backend.Set("readAddress", ExampleContract, 1, testAddress)
	backend.Set("readString", ExampleContract, 2, "scroll\x00\x00\x00")
	url := scrollertest.NewRPCServer(t, &scrollertest.EthAPI{Backend: backend, ChainID: big.NewInt(534352)})
	return backend, url
}

func TestExample(t *testing.T) {
	_, url := exampleBackend(t)

	out, _, err := runApp(context.Background(), "--rpc-url", url, "example")
	require.NoError(t, err)
	require.Equal(t, "Uint Value: 2\n"+
		"Address Value: 0x4838B106FCe9647Bdf1E7877BF73cE8B0BAD5f97\n"+
		"String Value: scroll\n", out)
}

func TestExamplePrintsReadFailure(t *testing.T) {
	backend, url := exampleBackend(t)
	backend.SetErr(errors.New("execution reverted"))

	out, _, err := runApp(context.Background(), "--rpc-url", url, "example")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "Error: "), out)
	require.Contains(t, out, "execution reverted")
	require.NotContains(t, out, "Uint Value")
}

func TestExamplePrintsValuesBeforeFailure(t *testing.T) {
	backend, url := exampleBackend(t)
	backend.Set("readString", ExampleContract, 2, "sc\xffroll")

	out, _, err := runApp(context.Background(), "--rpc-url", url, "example")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "Uint Value: 2", lines[0])
	require.True(t, strings.HasPrefix(lines[2], "Error: "), lines[2])
	require.Contains(t, lines[2], "utf-8")
}

func TestExamplePrintsConnectivityFailure(t *testing.T) {
	out, _, err := runApp(context.Background(), "--rpc-url", "http://localhost:0", "--dial-timeout", "1s", "example")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "Error: "), out)
}

func TestRead(t *testing.T) {
	_, url := exampleBackend(t)

	tests := []struct {
		kind string
		slot string
		want string
	}{
		{kind: "uint", slot: "0", want: "2"},
		{kind: "uint256", slot: "0x0", want: "2"},
		{kind: "address", slot: "1", want: testAddress.Hex()},
		{kind: "string", slot: "2", want: "scroll"},
	}
	for _, test := range tests {
		t.Run(test.kind, func(t *testing.T) {
			out, stderr, err := runApp(context.Background(), "--rpc-url", url,
				"read", "--kind", test.kind, "--contract", ExampleContract.Hex(), "--slot", test.slot)
			require.NoError(t, err)
			require.Equal(t, test.want+"\n", out)
			require.Contains(t, stderr, "Connected to L2 endpoint")
		})
	}
}

func TestReadErrors(t *testing.T) {
	backend, url := exampleBackend(t)

	_, _, err := runApp(context.Background(), "--rpc-url", url, "read", "--contract", ExampleContract.Hex())
	require.ErrorContains(t, err, "slot")

	_, _, err = runApp(context.Background(), "--rpc-url", url, "read", "--kind", "int", "--contract", ExampleContract.Hex(), "--slot", "0")
	require.ErrorContains(t, err, "unknown kind")

	_, _, err = runApp(context.Background(), "--rpc-url", url, "read", "--contract", "0x1234", "--slot", "0")
	require.ErrorContains(t, err, "invalid address")

	_, _, err = runApp(context.Background(), "--rpc-url", url, "--scroller-address", "0x0", "read", "--contract", ExampleContract.Hex(), "--slot", "0")
	require.ErrorContains(t, err, "invalid scroller address")

	backend.SetErr(errors.New("execution reverted"))
	_, _, err = runApp(context.Background(), "--rpc-url", url, "read", "--contract", ExampleContract.Hex(), "--slot", "0")
	require.ErrorContains(t, err, "execution reverted")
}

func TestSlot(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "mapping",
			args: []string{"mapping", "--key", "1", "--base", "2"},
			want: "0xe90b7bceb6e7df5418fb78d8ee546e97c83a08bbccc01a0644d599ccd2a7c2e0",
		},
		{
			name: "mapping address key",
			args: []string{"mapping", "--key", testAddress.Hex(), "--base", "3"},
			want: "0x4921876acba9eabcee77b83b128ea9445a655f94530616fe82904da1cf0c5250",
		},
		{
			name: "owner",
			args: []string{"erc721-owner", "--token-id", "1"},
			want: "0xe90b7bceb6e7df5418fb78d8ee546e97c83a08bbccc01a0644d599ccd2a7c2e0",
		},
		{
			name: "balance",
			args: []string{"erc721-balance", "--account", testAddress.Hex()},
			want: "0x4921876acba9eabcee77b83b128ea9445a655f94530616fe82904da1cf0c5250",
		},
		{
			name: "operator",
			args: []string{"erc721-operator", "--account", testAddress.Hex(), "--operator", testScroller.Hex()},
			want: "0x1e6043a6c86e5742fd0ac32eaf3561055f8c2118434b49aa0ab8fd83ab4175fc",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			out, _, err := runApp(context.Background(), append([]string{"slot"}, test.args...)...)
			require.NoError(t, err)
			require.Equal(t, test.want+"\n", out)
		})
	}

	_, _, err := runApp(context.Background(), "slot", "erc721-owner", "--token-id", "-1")
	require.ErrorContains(t, err, "negative")
}

func TestDocMetrics(t *testing.T) {
	out, _, err := runApp(context.Background(), "doc", "metrics", "--format", "json")
	require.NoError(t, err)

	var documented []metrics.DocumentedMetric
	require.NoError(t, json.Unmarshal([]byte(out), &documented))
	names := make([]string, 0, len(documented))
	for _, m := range documented {
		names = append(names, m.Name)
	}
	require.Contains(t, names, "l1_scroller_reads_total")
	require.Contains(t, names, "l1_scroller_slot_value")
}

func TestMonitor(t *testing.T) {
	backend, url := exampleBackend(t)
	queries := filepath.Join(t.TempDir(), "queries.toml")
	require.NoError(t, os.WriteFile(queries, []byte(`
[[query]]
name = "counter"
contract = "0xA8E50c2607678747D9d8A24AC52234712bE41fD9"
slot = "0"

[[query]]
name = "label"
contract = "0xA8E50c2607678747D9d8A24AC52234712bE41fD9"
slot = "2"
kind = "string"
`), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, _, err := runApp(ctx, "--rpc-url", url,
			"monitor", "--queries", queries, "--poll-interval", "10ms")
		done <- err
	}()

	// two queries per poll, so at least two polls
	require.Eventually(t, func() bool {
		return backend.CallCount() >= 4
	}, 10*time.Second, 10*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("monitor did not stop")
	}
}

func TestMonitorRequiresQueries(t *testing.T) {
	_, _, err := runApp(context.Background(), "monitor")
	require.ErrorContains(t, err, "queries")
}
