package ui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barkhq/barksound/internal/domain"
	portsmocks "github.com/barkhq/barksound/internal/ports/mocks"
)

func writeTempSound(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("caff"), 0644))
	return path
}

func newTestModel(t *testing.T, custom, defaults []string) (*Model, *portsmocks.MockSoundPlayer, *portsmocks.MockClipboard) {
	t.Helper()
	coordinator, _ := startCoordinator(t, custom, defaults)
	player := portsmocks.NewMockSoundPlayer(t)
	clipboard := portsmocks.NewMockClipboard(t)

	m := NewModel(context.Background(), coordinator, player, clipboard, Options{})
	t.Cleanup(m.Close)

	m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	m.Update(catalogUpdatedMsg{update: latestUpdate(t, coordinator)})
	return m, player, clipboard
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestModel_QuitKey(t *testing.T) {
	m, _, _ := newTestModel(t, nil, nil)

	_, cmd := m.Update(keyPress('q'))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_DeleteDefaultShowsNotice(t *testing.T) {
	m, _, _ := newTestModel(t, nil, []string{"alarm.caf"})
	m.soundList.Bottom()

	m.Update(keyPress('d'))

	assert.Equal(t, "Default sounds cannot be deleted", m.status.Notice())
}

func TestModel_DeleteCustomSound(t *testing.T) {
	m, _, _ := newTestModel(t, []string{"chime.caf"}, nil)

	_, cmd := m.Update(keyPress('d'))
	require.NotNil(t, cmd)
	msg := cmd()

	assert.Equal(t, actionResultMsg{Notice: "Deleted chime"}, msg)
	_, found := latestUpdate(t, m.coordinator).Snapshot.FindCustom("chime")
	assert.False(t, found)
}

func TestModel_PlayRequestUsesPlayer(t *testing.T) {
	m, player, _ := newTestModel(t, nil, nil)
	handle := domain.AudioHandle{Path: "/sounds/bell.caf"}
	player.EXPECT().Play(handle).Return(nil)

	msg := m.playCmd(handle)()

	assert.Equal(t, actionResultMsg{Notice: "Playing bell"}, msg)
}

func TestModel_CopyFailureSetsError(t *testing.T) {
	m, _, clipboard := newTestModel(t, nil, nil)
	clipboard.EXPECT().WriteText("bell").Return(errors.New("no clipboard"))

	msg := m.copyCmd("bell")()
	m.Update(msg)

	require.Error(t, m.status.Err())
	assert.Contains(t, m.status.Err().Error(), "no clipboard")
}

func TestModel_PickerRequestOpensImportForm(t *testing.T) {
	m, _, _ := newTestModel(t, nil, nil)

	m.Update(pickerRequestedMsg{})

	assert.Equal(t, stateImporting, m.state)
	require.NotNil(t, m.importForm)

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, stateList, m.state)
	assert.Nil(t, m.importForm)
}

func TestModel_ImportCmd(t *testing.T) {
	m, _, _ := newTestModel(t, nil, nil)

	msg := m.importCmd(writeTempSound(t, "chime.caf"))()

	assert.Equal(t, actionResultMsg{Notice: "Imported chime"}, msg)
}

func TestModel_HelpScreenToggles(t *testing.T) {
	m, _, _ := newTestModel(t, nil, nil)

	m.Update(keyPress('?'))
	assert.Equal(t, stateHelp, m.state)

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, stateList, m.state)
}

func TestModel_StaleStatusClearIgnored(t *testing.T) {
	m, _, _ := newTestModel(t, nil, nil)
	m.status.SetNotice("first")
	m.status.SetNotice("second")

	m.Update(clearStatusMsg{generation: 1})
	assert.Equal(t, "second", m.status.Notice())

	m.Update(clearStatusMsg{generation: 2})
	assert.Empty(t, m.status.Notice())
}

func TestModel_View(t *testing.T) {
	m, _, _ := newTestModel(t, []string{"chime.caf"}, []string{"alarm.caf"})

	view := m.View()

	assert.Contains(t, view, "barksound")
	assert.Contains(t, view, "chime")
	assert.Contains(t, view, "alarm")
	assert.Contains(t, view, "copy sound name")
}
