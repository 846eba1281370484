package testlog

import (
	"context"
	"log/slog"
	"sync"

	"github.com/ethereum/go-ethereum/log"
)

// CapturedRecord is a log record together with the attributes inherited
// from the logger it was emitted on.
type CapturedRecord struct {
	slog.Record
	inherited []slog.Attr
}

// AttrValue returns the value of the first attribute named key.
func (r *CapturedRecord) AttrValue(key string) (slog.Value, bool) {
	var out slog.Value
	found := false
	r.Record.Attrs(func(a slog.Attr) bool {
		if a.Key == key {
			out, found = a.Value, true
			return false
		}
		return true
	})
	if found {
		return out, true
	}
	for _, a := range r.inherited {
		if a.Key == key {
			return a.Value, true
		}
	}
	return slog.Value{}, false
}

type captureStore struct {
	mu   sync.Mutex
	logs []*CapturedRecord
}

// CapturingHandler records every handled record and forwards it to a
// delegate handler.
type CapturingHandler struct {
	handler slog.Handler
	store   *captureStore
	attrs   []slog.Attr
}

// CaptureLogger returns a test logger and the handler capturing its output.
func CaptureLogger(t Testing, level slog.Level) (log.Logger, *CapturingHandler) {
	ch := &CapturingHandler{handler: handler(t, level), store: new(captureStore)}
	return log.NewLogger(ch), ch
}

func (c *CapturingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return c.handler.Enabled(ctx, level)
}

func (c *CapturingHandler) Handle(ctx context.Context, r slog.Record) error {
	c.store.mu.Lock()
	c.store.logs = append(c.store.logs, &CapturedRecord{Record: r.Clone(), inherited: c.attrs})
	c.store.mu.Unlock()
	return c.handler.Handle(ctx, r)
}

func (c *CapturingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	inherited := make([]slog.Attr, 0, len(c.attrs)+len(attrs))
	inherited = append(append(inherited, attrs...), c.attrs...)
	return &CapturingHandler{
		handler: c.handler.WithAttrs(attrs),
		store:   c.store,
		attrs:   inherited,
	}
}

func (c *CapturingHandler) WithGroup(name string) slog.Handler {
	return &CapturingHandler{
		handler: c.handler.WithGroup(name),
		store:   c.store,
		attrs:   c.attrs,
	}
}

// FindLog returns the first captured record with the given level and
// message, or nil.
func (c *CapturingHandler) FindLog(level slog.Level, msg string) *CapturedRecord {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	for _, r := range c.store.logs {
		if r.Level == level && r.Message == msg {
			return r
		}
	}
	return nil
}

// FindLogs returns all captured records with the given message.
func (c *CapturingHandler) FindLogs(msg string) []*CapturedRecord {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	var out []*CapturedRecord
	for _, r := range c.store.logs {
		if r.Message == msg {
			out = append(out, r)
		}
	}
	return out
}

func (c *CapturingHandler) Clear() {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	c.store.logs = nil
}
