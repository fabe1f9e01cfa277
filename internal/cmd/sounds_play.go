package cmd

import (
	"fmt"
	"time"

	"github.com/barkhq/barksound/internal/domain"
	"github.com/barkhq/barksound/internal/logging"
)

// playRequestTimeout bounds the wait for the coordinator's play request
const playRequestTimeout = 5 * time.Second

// SoundsPlayCmd plays one sound from the list
type SoundsPlayCmd struct {
	Name string `arg:"" help:"Sound name or file name"`
}

// Run selects the sound the way the browser does and plays the resulting request
func (s *SoundsPlayCmd) Run(cli *CLI) error {
	ctx, cancel, coordinator, err := startCoordinator(cli)
	if err != nil {
		return err
	}
	defer cancel()

	asset, found := latestSnapshot(coordinator).Find(s.Name)
	if !found {
		return fmt.Errorf("%w: %s", domain.ErrSoundNotFound, s.Name)
	}

	requests := coordinator.PlayRequests()
	defer requests.Close()

	if err := coordinator.Select(ctx, domain.NewAssetItem(asset)); err != nil {
		return fmt.Errorf("failed to select %s: %w", s.Name, err)
	}

	select {
	case handle, ok := <-requests.C:
		if !ok {
			return fmt.Errorf("play request stream closed")
		}
		logging.Logger.Debug("Playing sound", "path", handle.Path)
		if err := cli.Container.Player.Play(handle); err != nil {
			return fmt.Errorf("failed to play %s: %w", s.Name, err)
		}
	case <-time.After(playRequestTimeout):
		return fmt.Errorf("timed out waiting for play request")
	}
	return nil
}
