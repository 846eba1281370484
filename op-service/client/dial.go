package client

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/rpc"
)

// CheckAndDial checks that the address is reachable within the connect
// timeout, and then dials the JSON-RPC endpoint once. There is no retry.
func CheckAndDial(ctx context.Context, log log.Logger, addr string, connectTimeout time.Duration, options ...rpc.ClientOption) (*rpc.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if !IsURLAvailable(ctx, addr, connectTimeout) {
		log.Warn("Failed to connect to RPC endpoint", "timeout", connectTimeout)
		return nil, fmt.Errorf("address unavailable (%s)", redactURL(addr))
	}

	client, err := rpc.DialOptions(ctx, addr, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to dial address (%s): %w", redactURL(addr), err)
	}
	return client, nil
}

// IsURLAvailable reports whether a TCP connection can be opened to the host
// of the given URL. Schemes without a well-known port (e.g. IPC paths) are
// reported as available, and left for the dial itself to fail.
func IsURLAvailable(ctx context.Context, address string, timeout time.Duration) bool {
	u, err := url.Parse(address)
	if err != nil {
		return false
	}
	addr := u.Host
	if u.Port() == "" {
		switch u.Scheme {
		case "http", "ws":
			addr += ":80"
		case "https", "wss":
			addr += ":443"
		default:
			return true
		}
	}
	dialer := net.Dialer{Timeout: timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

// redactURL strips credentials, path and query, which commonly carry API keys.
func redactURL(addr string) string {
	u, err := url.Parse(addr)
	if err != nil || u.Host == "" {
		return "<invalid url>"
	}
	return u.Scheme + "://" + u.Host
}
