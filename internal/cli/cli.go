package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/framelink/pkg/config"
	"github.com/matzehuels/framelink/pkg/connect"
	"github.com/matzehuels/framelink/pkg/crossing"
	"github.com/matzehuels/framelink/pkg/frame"
	pkgio "github.com/matzehuels/framelink/pkg/io"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display and completion scripts.
const appName = "framelink"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// configPath is bound to the global --config flag.
	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// =============================================================================
// Engine Factory
// =============================================================================

// engine loads the configuration named by --config (or framelink.toml in the
// working directory) and builds a connectivity engine from it.
func (c *CLI) engine() (*connect.Engine, error) {
	cfg, err := config.LoadOrDefault(c.configPath)
	if err != nil {
		return nil, err
	}
	e, err := connect.FromConfig(cfg, c.Logger)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("engine ready", "precision", cfg.Precision, "tolerance", e.Grid.Tolerance, "ignore", cfg.IgnoreKinds)
	return e, nil
}

// reporter collects crossings and logs each one as a warning.
func (c *CLI) reporter(model string) (*crossing.Collector, crossing.Func) {
	var col crossing.Collector
	return &col, crossing.Tee(col.Report, crossing.LogReporter(c.Logger, model))
}

// =============================================================================
// Model Helpers
// =============================================================================

// loadBuilt reads a model file and recomputes its adjacency from geometry.
func (c *CLI) loadBuilt(ctx context.Context, e *connect.Engine, path string) (*frame.Model, *crossing.Collector, error) {
	m, err := pkgio.ImportModel(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	col, report := c.reporter(m.Name)
	built, err := e.Rebuild(m, report)
	if err != nil {
		return nil, nil, err
	}
	return built, col, nil
}

// outputPath returns output, or input when no output was given.
func outputPath(output, input string) string {
	if output == "" {
		return input
	}
	return output
}
