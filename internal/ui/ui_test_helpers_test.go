package ui

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/barkhq/barksound/internal/adapters/soundfs"
	"github.com/barkhq/barksound/internal/config"
	"github.com/barkhq/barksound/internal/services"
)

// startCoordinator runs a coordinator over temp directories holding the given
// custom and default sound file names
func startCoordinator(t *testing.T, custom, defaults []string) (*services.SoundListCoordinator, config.SoundPaths) {
	t.Helper()
	root := t.TempDir()
	paths := config.NewSoundPaths(
		filepath.Join(root, "Library"),
		filepath.Join(root, "Groups"),
		"",
		filepath.Join(root, "bundle"),
		"",
	)
	for dir, names := range map[string][]string{paths.PrimaryDir: custom, paths.BundleDir: defaults} {
		require.NoError(t, os.MkdirAll(dir, 0755))
		for _, name := range names {
			require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("caff"), 0644))
		}
	}

	store := soundfs.NewStore(paths)
	coordinator := services.NewSoundListCoordinator(store, services.NewCatalogService(store, paths), nil)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	coordinator.Start(ctx)

	_, err := coordinator.Snapshot(ctx)
	require.NoError(t, err)
	return coordinator, paths
}

func latestUpdate(t *testing.T, coordinator *services.SoundListCoordinator) services.CatalogUpdate {
	t.Helper()
	require.Eventually(t, func() bool {
		_, ok := coordinator.Latest()
		return ok
	}, time.Second, 10*time.Millisecond)
	update, _ := coordinator.Latest()
	return update
}
