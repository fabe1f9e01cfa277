package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/barkhq/barksound/internal/domain"
	"github.com/barkhq/barksound/internal/services"
)

// SoundsCmd manages custom sounds
type SoundsCmd struct {
	Delete SoundsDeleteCmd `cmd:"delete" aliases:"del,rm" help:"Delete custom sounds"`
	Import SoundsImportCmd `cmd:"import" help:"Import sound files into the custom sounds"`
	List   SoundsListCmd   `cmd:"list" aliases:"ls" help:"List custom and default sounds" default:"1"`
	Play   SoundsPlayCmd   `cmd:"play" help:"Play a sound by name"`
}

// startCoordinator starts the container's coordinator and waits for its first
// snapshot. The returned cancel stops it.
func startCoordinator(cli *CLI) (context.Context, context.CancelFunc, *services.SoundListCoordinator, error) {
	ctx, cancel := context.WithCancel(context.Background())
	coordinator := cli.Container.Coordinator
	coordinator.Start(ctx)

	if _, err := coordinator.Snapshot(ctx); err != nil {
		cancel()
		return nil, nil, nil, fmt.Errorf("failed to load sounds: %w", err)
	}
	return ctx, cancel, coordinator, nil
}

// latestSnapshot returns the coordinator's current snapshot
func latestSnapshot(coordinator *services.SoundListCoordinator) domain.CatalogSnapshot {
	update, _ := coordinator.Latest()
	return update.Snapshot
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
