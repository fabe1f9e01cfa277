package sound

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barkhq/barksound/internal/domain"
)

type recordedCall struct {
	name string
	args []string
}

func newRecordingPlayer(fail bool) (*Player, *[]recordedCall) {
	var calls []recordedCall
	return &Player{
		run: func(name string, args ...string) error {
			calls = append(calls, recordedCall{name: name, args: args})
			if fail {
				return errors.New("no audio device")
			}
			return nil
		},
	}, &calls
}

func TestPlay_UsesFirstWorkingCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chime.caf")
	require.NoError(t, os.WriteFile(path, []byte("caff"), 0644))
	player, calls := newRecordingPlayer(false)

	err := player.Play(domain.AudioHandle{Path: path})

	require.NoError(t, err)
	expected := fileCommands(path)
	if len(expected) == 0 {
		assert.Empty(t, *calls)
		return
	}
	require.Len(t, *calls, 1)
	assert.Equal(t, expected[0].name, (*calls)[0].name)
	assert.Contains(t, (*calls)[0].args, path)
}

func TestPlay_FallsBackThroughAllCommands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chime.caf")
	require.NoError(t, os.WriteFile(path, []byte("caff"), 0644))
	player, calls := newRecordingPlayer(true)

	err := player.Play(domain.AudioHandle{Path: path})

	assert.NoError(t, err) // bell fallback
	assert.Len(t, *calls, len(fileCommands(path)))
}

func TestPlay_MissingFile(t *testing.T) {
	player, calls := newRecordingPlayer(false)

	err := player.Play(domain.AudioHandle{Path: filepath.Join(t.TempDir(), "gone.caf")})

	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Empty(t, *calls)
}

func TestPlaySound_UsesDefaultCommands(t *testing.T) {
	player, calls := newRecordingPlayer(true)

	require.NoError(t, player.PlaySound())

	assert.Len(t, *calls, len(defaultCommands()))
}
