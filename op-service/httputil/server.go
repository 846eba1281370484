package httputil

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"
)

var DefaultTimeouts = struct {
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
}{
	ReadTimeout:       30 * time.Second,
	ReadHeaderTimeout: 30 * time.Second,
	WriteTimeout:      30 * time.Second,
	IdleTimeout:       120 * time.Second,
}

// HTTPServer wraps a http.Server and exposes its bound address.
// A 0 port in addr makes the system pick an available one.
type HTTPServer struct {
	mu       sync.RWMutex
	addr     string
	handler  http.Handler
	listener net.Listener
	srv      *http.Server
}

func NewHTTPServer(addr string, handler http.Handler) *HTTPServer {
	return &HTTPServer{addr: addr, handler: handler}
}

func StartHTTPServer(addr string, handler http.Handler) (*HTTPServer, error) {
	out := NewHTTPServer(addr, handler)
	return out, out.Start()
}

// Start binds the listener and checks that the server comes online.
func (s *HTTPServer) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.srv != nil {
		return errors.New("already have existing server")
	}

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to bind to address %q: %w", s.addr, err)
	}
	srv := &http.Server{
		Handler:           s.handler,
		ReadTimeout:       DefaultTimeouts.ReadTimeout,
		ReadHeaderTimeout: DefaultTimeouts.ReadHeaderTimeout,
		WriteTimeout:      DefaultTimeouts.WriteTimeout,
		IdleTimeout:       DefaultTimeouts.IdleTimeout,
	}

	// cap of 1, to not block on non-immediate shutdown
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(listener)
	}()

	standupTimer := time.NewTimer(10 * time.Millisecond)
	defer standupTimer.Stop()
	select {
	case err := <-errCh:
		return fmt.Errorf("http server failed: %w", err)
	case <-standupTimer.C:
	}
	s.srv = srv
	s.listener = listener
	return nil
}

// Stop shuts down gracefully, force-closing once ctx is done.
func (s *HTTPServer) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.srv == nil {
		return nil
	}
	err := s.srv.Shutdown(ctx)
	if err != nil && errors.Is(err, ctx.Err()) {
		err = s.srv.Close()
	}
	if err != nil {
		return err
	}
	s.srv = nil
	s.listener = nil
	return nil
}

// Close force-closes the server and all active connections.
func (s *HTTPServer) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.srv == nil {
		return nil
	}
	if err := s.srv.Close(); err != nil {
		return err
	}
	s.srv = nil
	s.listener = nil
	return nil
}

// Addr returns nil when the server is not online.
func (s *HTTPServer) Addr() net.Addr {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// HTTPEndpoint returns an empty string when the server is not online.
func (s *HTTPServer) HTTPEndpoint() string {
	addr := s.Addr()
	if addr == nil {
		return ""
	}
	return "http://" + addr.String()
}
