// Package cli implements the polygone command-line interface.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/AbheetChaudhary/PolyGone/pkg/errors"
	"github.com/AbheetChaudhary/PolyGone/pkg/graph"
	"github.com/AbheetChaudhary/PolyGone/pkg/play"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "polygone"

	// configFile is the config file name inside the config directory.
	configFile = "config.toml"
)

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
	Config Config

	levelPath  string // --level flag
	configPath string // --config flag
}

// New creates a new CLI instance with a default logger and default config.
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

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "PolyGone is a puzzle about closing and clearing polygons",
		Long: `PolyGone shows an undirected graph. Select connected edges until they close
a polygon, then remove it. Vertices left without edges disappear. Clear every
edge to solve the level.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.loadConfig(); err != nil {
				return err
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(versionTemplate())
	root.PersistentFlags().StringVarP(&c.levelPath, "level", "l", "", "level file (.toml or .json); defaults to the built-in level")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/polygone/config.toml)")
	root.RegisterFlagCompletionFunc("level", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"toml", "json"}, cobra.ShellCompDirectiveFilterFileExt
	})

	root.AddCommand(c.playCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.levelsCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Config & Levels
// =============================================================================

// loadConfig reads the config file. An explicit --config must exist; the
// default location is optional.
func (c *CLI) loadConfig() error {
	path := c.configPath
	if path == "" {
		dir, err := configDir()
		if err != nil {
			return nil
		}
		path = filepath.Join(dir, configFile)
		if _, err := os.Stat(path); err != nil {
			return nil
		}
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		return err
	}
	c.Config = cfg
	c.Logger.Debug("loaded config", "path", path)
	return nil
}

// level resolves the active level: --level, then the config file, then the
// built-in level.
func (c *CLI) level() (graph.Level, error) {
	path := c.levelPath
	if path == "" {
		path = c.Config.Level
	}
	if path == "" {
		return graph.DefaultLevel(), nil
	}

	if err := errors.ValidateLevelPath(path); err != nil {
		return graph.Level{}, err
	}
	l, err := graph.ReadLevelFile(path)
	if err != nil {
		return graph.Level{}, errors.Wrap(errors.ErrCodeInvalidLevel, err, "load level")
	}
	return l, nil
}

// newGame loads the active level and starts a controller on it. A nil
// logger means the CLI logger.
func (c *CLI) newGame(listener play.Listener, logger *log.Logger) (*play.Controller, error) {
	if logger == nil {
		logger = c.Logger
	}
	l, err := c.level()
	if err != nil {
		return nil, err
	}
	g, err := l.Build()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidLevel, err, "build level")
	}
	logger.Debug("loaded level", "name", l.Name, "vertices", g.VertexCount(), "edges", g.EdgeCount())
	return play.New(g, play.Options{Name: l.Name, Listener: listener, Logger: logger}), nil
}

// =============================================================================
// Paths
// =============================================================================

// configDir returns the config directory using XDG standard (~/.config/polygone/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home directory: %w", err)
	}
	return filepath.Join(home, ".config", appName), nil
}
