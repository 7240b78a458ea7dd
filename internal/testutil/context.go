package testutil

import (
	"context"
	"log/slog"
	"testing"

	"github.com/vk/gridcalc/internal/ctxlog"
)

// Context returns a context carrying a debug-level text logger that writes
// into the returned buffer, so tests can assert on log lines.
func Context(t *testing.T) (context.Context, *SafeBuffer) {
	t.Helper()
	buf := &SafeBuffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return ctxlog.WithLogger(context.Background(), logger), buf
}
