package engine

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/engine/backend"
	"github.com/gogpu/engine/content"
	"github.com/gogpu/engine/surface"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	l := newNopLogger()
	loggerPtr.Store(l)
}

// SetLogger configures the logger for engine and all its sub-packages.
// By default, engine produces no log output. Call SetLogger to enable logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by engine:
//   - [slog.LevelDebug]: internal diagnostics (tick timing, buffer churn)
//   - [slog.LevelInfo]: important lifecycle events (device selected, surface resized)
//   - [slog.LevelWarn]: non-fatal issues (content load failures, release errors)
//
// Example:
//
//	// Enable info-level logging to stderr:
//	engine.SetLogger(slog.Default())
//
//	// Enable debug-level logging for full diagnostics:
//	engine.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)

	// Propagate to sub-packages that keep their own logger to avoid
	// import cycles back into the root package.
	backend.SetLogger(l)
	surface.SetLogger(l)
	content.SetLogger(l)
}

// Logger returns the current logger used by engine.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
