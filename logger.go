package gfx

import (
	"log/slog"

	"github.com/gogpu/gfx/internal/logging"
)

// SetLogger configures the logger for gfx and all its sub-packages.
// By default, gfx produces no log output. Call SetLogger to enable logging
// for diagnostics and debugging.
//
// Log levels used by gfx:
//   - [slog.LevelDebug]: per-frame diagnostics, atlas page allocation
//   - [slog.LevelInfo]: lifecycle events (graphics created, backend selected)
//   - [slog.LevelWarn]: skipped or abandoned frames, texture release failures
//
// SetLogger is safe for concurrent use. Pass nil to disable logging.
//
// Example:
//
//	gfx.SetLogger(slog.Default())
//	gfx.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the current logger used by gfx.
// Sub-packages read the same logger through internal/logging.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logging.Logger()
}
