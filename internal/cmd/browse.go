package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/barkhq/barksound/internal/config"
	"github.com/barkhq/barksound/internal/logging"
	"github.com/barkhq/barksound/internal/ui"
)

// BrowseCmd starts the sound browser TUI
type BrowseCmd struct {
	Dev              bool   `help:"Enable development mode (shows version info in dialogs)"`
	ImportDir        string `help:"Directory the import file picker starts in (default: home directory)" type:"path"`
	StatusClearDelay int    `help:"Seconds before status messages auto-clear" default:"5"`
}

// Run executes the TUI
func (b *BrowseCmd) Run(cli *CLI) error {
	var keysConfig config.KeyBindingsConfig
	if cli.settings != nil && cli.settings.Keys != nil {
		if err := cli.settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
			return fmt.Errorf("invalid key bindings in settings.json: %w", err)
		}
		keysConfig = cli.settings.Keys
		logging.Logger.Debug("Custom key bindings loaded and validated")
	}

	importDir := b.ImportDir
	if importDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			importDir = home
		}
	}

	logging.Logger.Info("Starting barksound TUI")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	coordinator := cli.Container.Coordinator
	coordinator.Start(ctx)

	model := ui.NewModel(ctx, coordinator, cli.Container.Player, cli.Container.Clipboard, ui.Options{
		DevMode:          b.Dev,
		ImportDir:        importDir,
		Keys:             keysConfig,
		StatusClearDelay: time.Duration(b.StatusClearDelay) * time.Second,
	})
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen())

	logging.Logger.Info("Starting TUI program")
	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("TUI program exited normally")
	return nil
}
