// Package testlog provides a log handler for unit tests.
package testlog

import (
	"log/slog"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/log"
)

var useColorInTestLog = os.Getenv("L1_SCROLLER_TESTLOG_DISABLE_COLOR") != "true"

// Testing is the subset of testing.TB the logger writes through.
type Testing interface {
	Logf(format string, args ...any)
	Helper()
}

// Logger returns a logger which logs to the unit test log of t.
func Logger(t Testing, level slog.Level) log.Logger {
	return log.NewLogger(handler(t, level))
}

func handler(t Testing, level slog.Level) slog.Handler {
	return log.NewTerminalHandlerWithLevel(&testWriter{t: t}, level, useColorInTestLog)
}

// testWriter forwards each rendered record to t.Logf.
type testWriter struct {
	t Testing
}

func (w *testWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Logf("%s", strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}
