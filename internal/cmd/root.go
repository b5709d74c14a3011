package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"tempo/internal/config"
	"tempo/internal/logging"
	"tempo/internal/ui"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`
	Storage     string           `help:"Workspace storage backend" default:"json" enum:"json,sqlite"`

	Run      RunCmd      `cmd:"" help:"Start the tempo TUI (default)" default:"1"`
	Projects ProjectsCmd `cmd:"projects" help:"Manage projects (list, add, del)"`
	Sessions SessionsCmd `cmd:"sessions" help:"List recorded sessions"`
	Adjust   AdjustCmd   `cmd:"adjust" help:"Add or remove time on a project"`
	Stats    StatsCmd    `cmd:"stats" help:"Show tracked time statistics"`
	Serve    ServeCmd    `cmd:"serve" help:"Serve the TUI over SSH"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Apply settings with precedence: CLI flags > env vars > settings.json > defaults
	if c.settings != nil {
		if c.MaxLogFiles == 1000 {
			if _, hasEnv := os.LookupEnv("TEMPO_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("TEMPO_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}

		if c.Storage == config.StorageJSON && c.settings.Storage != "" {
			c.Storage = c.settings.Storage
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	if c.Debug || c.DebugFile != "" {
		os.Setenv("TEMPO_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("TEMPO_DEBUG_FILE", logFilePath)
		}
	}

	// Create container AFTER logging is initialized so the storage layer
	// can log through the shared logger
	var dataDir string
	if c.settings != nil {
		dataDir = c.settings.DataDir
	}
	container, err := NewContainer(c.Storage, dataDir)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

// RunCmd starts the TUI application
type RunCmd struct{}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	logging.Logger.Info("Starting tempo TUI")

	p := tea.NewProgram(
		ui.NewModel(cli.Container.Ledger, cli.Container.Timer, cli.Container.Pomodoro),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("TUI program exited normally")
	return nil
}
