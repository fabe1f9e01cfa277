package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/barkhq/barksound/internal/config"
	"github.com/barkhq/barksound/internal/logging"
)

// defaultMaxLogFiles is the --max-log-files default, used to detect an unset flag
const defaultMaxLogFiles = 1000

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Browse   BrowseCmd   `cmd:"browse" help:"Browse, play and import sounds (default)" default:"1"`
	Mirror   MirrorCmd   `cmd:"mirror" help:"Inspect the shared sound directory mirror"`
	Notify   NotifyCmd   `cmd:"notify" help:"Play a sound by name for a notification" hidden:""`
	Settings SettingsCmd `cmd:"settings" help:"Manage settings (meta)"`
	Sounds   SoundsCmd   `cmd:"sounds" help:"Manage custom sounds (list, import, delete, play)"`

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
	// Apply settings with proper precedence: CLI flags > env vars > settings.json > defaults
	// Only apply if flag is at default value and env var is not set
	if c.settings != nil {
		if c.MaxLogFiles == defaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv("BARKSOUND_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("BARKSOUND_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Child processes (the player, notify runs) append to the same file
	if c.Debug || c.DebugFile != "" {
		os.Setenv("BARKSOUND_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("BARKSOUND_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != defaultMaxLogFiles {
		os.Setenv("BARKSOUND_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	// The container logs while it opens the ledger, so it comes after logging
	container, err := NewContainer(c.settings)
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
