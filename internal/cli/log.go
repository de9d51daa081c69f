// Package cli implements the framelink command-line interface.
//
// This package provides commands for rebuilding the adjacency of frame
// model files, checking stored adjacency against geometry, listing crossing
// members and disconnected sub-structures, editing members, and rendering
// the connectivity graph. The CLI is built using cobra and logs via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - build: Recompute adjacency from geometry and write the model
//   - check: Validate stored adjacency and diff it against a rebuild
//   - crossings: List member pairs that cross or overlap
//   - components: List connected sub-structures and floating members
//   - add, remove: Edit a model file member by member
//   - render: Draw the connectivity graph as SVG, PNG or DOT
//
// # Configuration
//
// The global --config flag names a TOML file with precision, tolerance and
// ignore_kinds. Without it, framelink.toml in the working directory is used
// when present.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which traces
// every junction the engine records. Crossings are logged as warnings.
//
// # Example
//
//	c := cli.New(os.Stderr, cli.LogInfo)
//	if err := c.RootCommand().ExecuteContext(ctx); err != nil {
//	    os.Exit(1)
//	}
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
// The returned progress should call done when the operation completes.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// The duration is rounded to the nearest millisecond.
// Example output: "Rebuilt 42 members (12ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// ctxKey is the type for context keys used in this package.
// Using a distinct type prevents collisions with other packages.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
// The logger can be retrieved later with loggerFromContext.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
// This ensures commands always have a valid logger even if context setup fails.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// logIOHooks logs model file reads and writes at debug level.
type logIOHooks struct {
	logger *log.Logger
}

func (h *logIOHooks) OnRead(_ context.Context, format string, members int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("read failed", "format", format, "err", err)
		return
	}
	h.logger.Debug("read model", "format", format, "members", members, "took", d.Round(time.Microsecond))
}

func (h *logIOHooks) OnWrite(_ context.Context, format string, members int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("write failed", "format", format, "err", err)
		return
	}
	h.logger.Debug("wrote model", "format", format, "members", members, "took", d.Round(time.Microsecond))
}
