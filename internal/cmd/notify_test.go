package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/barkhq/barksound/internal/config"
	"github.com/barkhq/barksound/internal/domain"
	"github.com/barkhq/barksound/internal/logging"
	portsmocks "github.com/barkhq/barksound/internal/ports/mocks"
	"github.com/barkhq/barksound/internal/services"
)

// newNotifyCLI builds a CLI whose container only carries the notification
// service, with logs redirected to a temp directory
func newNotifyCLI(t *testing.T) (*CLI, config.SoundPaths, *portsmocks.MockSoundPlayer) {
	t.Helper()
	root := t.TempDir()
	t.Setenv("HOME", root)
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	t.Setenv("LOCALAPPDATA", filepath.Join(root, "appdata"))

	previous := logging.Logger
	t.Cleanup(func() { logging.Logger = previous })

	paths := config.NewSoundPaths(
		filepath.Join(root, "Library"),
		filepath.Join(root, "Groups"),
		"",
		filepath.Join(root, "bundle"),
		"",
	)
	player := portsmocks.NewMockSoundPlayer(t)
	cli := &CLI{Container: &Container{
		NotificationService: services.NewNotificationService(paths, player),
		SoundPaths:          paths,
	}}
	return cli, paths, player
}

func TestNotify_PlaysSharedSoundOnce(t *testing.T) {
	cli, paths, player := newNotifyCLI(t)
	require.NoError(t, os.MkdirAll(paths.SharedDir, 0755))
	path := filepath.Join(paths.SharedDir, "chime.caf")
	require.NoError(t, os.WriteFile(path, []byte("caff"), 0644))
	player.EXPECT().Play(domain.AudioHandle{Path: path}).Return(nil).Once()

	cmd := &NotifyCmd{SoundName: "chime"}

	require.NoError(t, cmd.Run(cli))
}

func TestNotify_MissingSoundUsesSystemSound(t *testing.T) {
	cli, _, player := newNotifyCLI(t)
	player.EXPECT().PlaySound().Return(nil).Once()

	cmd := &NotifyCmd{SoundName: "ghost"}

	require.NoError(t, cmd.Run(cli))
}
