package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/log"
	"github.com/stretchr/testify/require"

	"github.com/l1sload/l1scroller/op-service/client"
)

func startTestJSONRPCServer(t *testing.T) *httptest.Server {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := map[string]interface{}{
			"jsonrpc": "2.0",
			"error": map[string]interface{}{
				"code":    -32000,
				"message": "execution reverted",
			},
			"id": 1,
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(response)
	})
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestCheckAndDialPropagatesRPCErrors(t *testing.T) {
	server := startTestJSONRPCServer(t)
	rpcClient, err := client.CheckAndDial(context.Background(), log.Root(), server.URL, 5*time.Second)
	require.NoError(t, err)
	defer rpcClient.Close()

	var result any
	err = rpcClient.CallContext(context.Background(), &result, "eth_chainId")
	require.EqualError(t, err, "execution reverted")
}
