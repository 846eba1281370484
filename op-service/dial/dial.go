package dial

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/l1sload/l1scroller/op-service/client"
)

// DefaultDialTimeout is a default timeout for dialing a client.
const DefaultDialTimeout = 10 * time.Second

// DialEthClientWithTimeout dials the JSON-RPC endpoint at url once. If the
// endpoint is not reachable within timeout, an error is returned. Callers
// decide what to do with the failure; the dial is never retried.
func DialEthClientWithTimeout(ctx context.Context, timeout time.Duration, log log.Logger, url string, opts ...rpc.ClientOption) (*ethclient.Client, error) {
	c, err := DialRPCClientWithTimeout(ctx, timeout, log, url, opts...)
	if err != nil {
		return nil, err
	}
	return ethclient.NewClient(c), nil
}

// DialRPCClientWithTimeout is DialEthClientWithTimeout for the raw RPC client.
func DialRPCClientWithTimeout(ctx context.Context, timeout time.Duration, log log.Logger, url string, opts ...rpc.ClientOption) (*rpc.Client, error) {
	if timeout <= 0 {
		timeout = DefaultDialTimeout
	}
	return client.CheckAndDial(ctx, log, url, timeout, opts...)
}
