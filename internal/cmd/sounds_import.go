package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/barkhq/barksound/internal/logging"
)

// SoundsImportCmd copies sound files into the custom sounds
type SoundsImportCmd struct {
	Files []string `arg:"" help:"Sound files to import (.caf)" type:"path"`
}

// Run executes the import command. A file that does not show up in the
// rebuilt list is reported as a warning; the command still succeeds.
func (s *SoundsImportCmd) Run(cli *CLI) error {
	ctx, cancel, coordinator, err := startCoordinator(cli)
	if err != nil {
		return err
	}
	defer cancel()

	for _, file := range s.Files {
		if err := coordinator.Import(ctx, file); err != nil {
			return fmt.Errorf("failed to import %s: %w", file, err)
		}

		name := filepath.Base(file)
		if _, found := latestSnapshot(coordinator).FindCustom(name); !found {
			logging.Logger.Warn("Import did not add sound", "file", file)
			fmt.Fprintf(os.Stderr, "Warning: %s was not imported (see debug log for details)\n", file)
			continue
		}
		fmt.Printf("Imported %s\n", name)
	}
	return nil
}
