// Package cli implements the scenehop command-line interface.
//
// This package provides commands for browsing the deterministic mock video
// catalog, rendering procedural cover thumbnails to PNG files, and serving
// both over HTTP for previewing. The CLI is built using cobra and supports
// verbose logging via the charmbracelet/log library.
//
// # Commands
//
//   - catalog: Print the generated video catalog as a table
//   - render: Write cover thumbnails (and hover variant frames) as PNGs
//   - serve: Serve the catalog and thumbnails over HTTP
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/eloquentlyAzaria/videosystem-concept/pkg/buildinfo"
)

// appName is the application name used for config lookup and display.
const appName = "scenehop"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Scenehop generates a mock video catalog with procedural cover thumbnails",
		Long:         `Scenehop fabricates a deterministic catalog of synthetic videos and composites placeholder cover thumbnails for them: flat fill, play glyph, wrapped title, rounded corners, and a soft drop shadow, memoized per (title, color, size).`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.catalogCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())

	return root
}
