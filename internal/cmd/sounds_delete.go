package cmd

import (
	"fmt"
	"os"

	"github.com/barkhq/barksound/internal/domain"
)

// SoundsDeleteCmd removes custom sounds
type SoundsDeleteCmd struct {
	Names []string `arg:"" help:"Sound names or file names to delete"`
}

// Run executes the delete command. Default sounds and unknown names produce
// warnings; the command still succeeds.
func (s *SoundsDeleteCmd) Run(cli *CLI) error {
	ctx, cancel, coordinator, err := startCoordinator(cli)
	if err != nil {
		return err
	}
	defer cancel()

	for _, name := range s.Names {
		snapshot := latestSnapshot(coordinator)
		asset, found := snapshot.FindCustom(name)
		if !found {
			if _, isDefault := snapshot.Find(name); isDefault {
				fmt.Fprintf(os.Stderr, "Warning: %s is a default sound and cannot be deleted\n", name)
			} else {
				fmt.Fprintf(os.Stderr, "Warning: sound %s not found\n", name)
			}
			continue
		}

		if err := coordinator.Delete(ctx, domain.NewAssetItem(asset)); err != nil {
			return fmt.Errorf("failed to delete %s: %w", name, err)
		}

		if _, stillThere := latestSnapshot(coordinator).FindCustom(asset.FileName); stillThere {
			fmt.Fprintf(os.Stderr, "Warning: %s could not be deleted (see debug log for details)\n", name)
			continue
		}
		fmt.Printf("Deleted %s\n", asset.Name)
	}
	return nil
}
