// Package cli implements the puzzlecut command-line interface.
//
// This package provides commands for generating jigsaw cut patterns,
// re-rendering saved puzzles, inspecting piece geometry, and serving the
// generation pipeline over HTTP. The CLI is built using cobra and supports
// verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - generate: Generate a puzzle and render it to one or more formats
//   - render: Re-render a saved puzzle document
//   - inspect: Browse a puzzle's pieces in an interactive TUI
//   - graph: Render a puzzle's neighbor graph as DOT/SVG/PNG
//   - serve: Run the HTTP API
//   - cache: Manage the generation cache
package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/puzzlecut/puzzlecut/pkg/buildinfo"
	"github.com/puzzlecut/puzzlecut/pkg/cache"
	"github.com/puzzlecut/puzzlecut/pkg/pipeline"
	"github.com/puzzlecut/puzzlecut/pkg/stud"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "puzzlecut"

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
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "puzzlecut",
		Short:        "Puzzlecut generates jigsaw puzzle cut patterns",
		Long:         `Puzzlecut partitions a rectangular image into an interlocking jigsaw grid, assigning complementary tabs and indents to every shared edge and emitting per-piece contours for rendering or cutting.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	cache, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cache, nil, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/puzzlecut/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// loadStudConfig loads a TOML stud profile, or returns nil for defaults.
func loadStudConfig(profile string) (*stud.Config, error) {
	if profile == "" {
		return nil, nil
	}
	cfg, err := stud.LoadProfile(profile)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}
