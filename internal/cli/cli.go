// Package cli implements the geo command-line interface.
//
// This package wires the shape taxonomy in pkg/geo into a small cobra
// program. Running geo without a subcommand prints the demo report for a
// circle, a square, a sphere, and a cube.
//
// # Commands
//
//   - demo: Print area, perimeter and volume for the demo shapes (default)
//   - kinds: List the supported shape kinds and their formulas
//   - completion: Generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging via
// charmbracelet/log. Logs go to stderr; reports go to stdout.
//
// # Configuration
//
// An optional TOML file (see [Config]) can enable verbose logging, colored
// output, and validation by default.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
)

const (
	// appName is the application name used for directories and display.
	appName = "geo"

	// configFile is the name of the config file inside the config directory.
	configFile = "config.toml"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config
}

// New creates a new CLI instance logging to w at the given level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: DefaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}
