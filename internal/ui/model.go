package ui

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/barkhq/barksound/internal/config"
	"github.com/barkhq/barksound/internal/domain"
	"github.com/barkhq/barksound/internal/logging"
	"github.com/barkhq/barksound/internal/ports"
	"github.com/barkhq/barksound/internal/services"
	"github.com/barkhq/barksound/internal/theme"
)

type uiState int

const (
	stateList uiState = iota
	stateHelp
	stateImporting
)

// Options configures the browse model
type Options struct {
	DevMode          bool
	ImportDir        string                   // Directory the file picker starts in
	Keys             config.KeyBindingsConfig // Custom key bindings, nil for defaults
	StatusClearDelay time.Duration
}

// Model is the sound browser. It renders the coordinator's catalog and turns
// key presses into coordinator inputs; side effects come back through the
// coordinator's output streams.
type Model struct {
	clipboard   ports.Clipboard
	coordinator *services.SoundListCoordinator
	ctx         context.Context
	devMode     bool
	height      int
	helpScreen  *Dialog
	importDir   string
	importForm  *Dialog
	keys        KeyMap
	player      ports.SoundPlayer
	soundList   *SoundList
	state       uiState
	status      *StatusLine
	streams     *streams
	width       int
}

// NewModel creates the browser over a started coordinator
func NewModel(
	ctx context.Context,
	coordinator *services.SoundListCoordinator,
	player ports.SoundPlayer,
	clipboard ports.Clipboard,
	opts Options,
) *Model {
	clearDelay := opts.StatusClearDelay
	if clearDelay <= 0 {
		clearDelay = 5 * time.Second
	}

	return &Model{
		clipboard:   clipboard,
		coordinator: coordinator,
		ctx:         ctx,
		devMode:     opts.DevMode,
		importDir:   opts.ImportDir,
		keys:        NewKeyMap(opts.Keys),
		player:      player,
		soundList:   NewSoundList(),
		state:       stateList,
		status:      NewStatusLine(clearDelay),
		streams:     subscribe(coordinator),
	}
}

// Close releases the model's subscriptions
func (m *Model) Close() {
	m.streams.close()
}

func (m *Model) Init() tea.Cmd {
	return m.streams.all()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Stream and action results are handled in every state
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case catalogUpdatedMsg:
		m.soundList.SetUpdate(msg.update)
		return m, m.streams.nextCatalog()

	case playRequestedMsg:
		return m, tea.Batch(m.streams.nextPlay(), m.playCmd(msg.handle))

	case pickerRequestedMsg:
		return m, tea.Batch(m.streams.nextPicker(), m.openImportForm())

	case copyNameRequestedMsg:
		return m, tea.Batch(m.streams.nextCopy(), m.copyCmd(msg.name))

	case streamClosedMsg:
		logging.Logger.Debug("Coordinator stream closed", "stream", msg.stream)
		return m, nil

	case actionResultMsg:
		if msg.Err != nil {
			logging.Logger.Warn("Action failed", "error", msg.Err)
			return m, m.status.SetError(msg.Err)
		}
		if msg.Notice != "" {
			return m, m.status.SetNotice(msg.Notice)
		}
		return m, nil

	case clearStatusMsg:
		m.status.Clear(msg.generation)
		return m, nil
	}

	switch m.state {
	case stateHelp:
		return m.updateHelp(msg)
	case stateImporting:
		return m.updateImporting(msg)
	default:
		return m.updateList(msg)
	}
}

func (m *Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Application.Quit, m.keys.Application.ForceQuit):
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Application.Help):
		m.helpScreen = NewDialog("Help", NewHelpScreen(&m.keys), m.devMode)
		m.state = stateHelp
		// Send initial WindowSizeMsg so viewport can initialize
		initCmd := m.helpScreen.Init()
		_, sizeCmd := m.helpScreen.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		return m, tea.Batch(initCmd, sizeCmd)

	case key.Matches(keyMsg, m.keys.Navigation.Up):
		m.soundList.MoveUp()
	case key.Matches(keyMsg, m.keys.Navigation.Down):
		m.soundList.MoveDown()
	case key.Matches(keyMsg, m.keys.Navigation.Top):
		m.soundList.Top()
	case key.Matches(keyMsg, m.keys.Navigation.Bottom):
		m.soundList.Bottom()

	case key.Matches(keyMsg, m.keys.Sound.Select):
		if item, ok := m.soundList.Selected(); ok {
			return m, m.selectCmd(item)
		}

	case key.Matches(keyMsg, m.keys.Sound.Import):
		return m, m.selectCmd(domain.NewAddEntryItem())

	case key.Matches(keyMsg, m.keys.Sound.CopyName):
		if cell := m.soundList.SelectedCell(); cell != nil {
			return m, requestCopyCmd(cell)
		}

	case key.Matches(keyMsg, m.keys.Sound.Delete):
		item, ok := m.soundList.Selected()
		if !ok {
			return m, nil
		}
		asset, ok := item.Asset()
		if !ok {
			return m, nil
		}
		if asset.ReadOnly() {
			return m, m.status.SetNotice("Default sounds cannot be deleted")
		}
		return m, m.deleteCmd(item, asset)
	}

	return m, nil
}

func (m *Model) updateHelp(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := m.helpScreen.Update(msg)
	if content, ok := m.helpScreen.Content().(*HelpScreen); ok && content.Completed {
		m.helpScreen = nil
		m.state = stateList
		return m, nil
	}
	return m, cmd
}

func (m *Model) updateImporting(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := m.importForm.Update(msg)
	content, ok := m.importForm.Content().(*ImportForm)
	if !ok || !content.Completed {
		return m, cmd
	}

	m.importForm = nil
	m.state = stateList

	result := content.Result()
	if result.Cancelled || result.Path == "" {
		logging.Logger.Debug("Import cancelled")
		return m, nil
	}
	return m, m.importCmd(result.Path)
}

func (m *Model) openImportForm() tea.Cmd {
	if m.state == stateImporting {
		return nil
	}
	m.importForm = NewDialog("Import Sound", NewImportForm(m.importDir), m.devMode)
	m.state = stateImporting
	return m.importForm.Init()
}

func (m *Model) selectCmd(item domain.SoundListItem) tea.Cmd {
	return func() tea.Msg {
		if err := m.coordinator.Select(m.ctx, item); err != nil {
			return actionResultMsg{Err: err}
		}
		return nil
	}
}

func (m *Model) importCmd(path string) tea.Cmd {
	return func() tea.Msg {
		if err := m.coordinator.Import(m.ctx, path); err != nil {
			return actionResultMsg{Err: err}
		}
		name := filepath.Base(path)
		if m.hasCustom(name) {
			return actionResultMsg{Notice: fmt.Sprintf("Imported %s", domain.DisplayName(name))}
		}
		return nil
	}
}

func (m *Model) deleteCmd(item domain.SoundListItem, asset domain.SoundAsset) tea.Cmd {
	return func() tea.Msg {
		if err := m.coordinator.Delete(m.ctx, item); err != nil {
			return actionResultMsg{Err: err}
		}
		if !m.hasCustom(asset.FileName) {
			return actionResultMsg{Notice: fmt.Sprintf("Deleted %s", asset.Name)}
		}
		return nil
	}
}

// hasCustom reports whether the latest snapshot lists fileName as a custom sound
func (m *Model) hasCustom(fileName string) bool {
	update, ok := m.coordinator.Latest()
	if !ok {
		return false
	}
	_, found := update.Snapshot.FindCustom(fileName)
	return found
}

func (m *Model) playCmd(handle domain.AudioHandle) tea.Cmd {
	player := m.player
	return func() tea.Msg {
		if err := player.Play(handle); err != nil {
			return actionResultMsg{Err: fmt.Errorf("failed to play sound: %w", err)}
		}
		return actionResultMsg{Notice: fmt.Sprintf("Playing %s", domain.DisplayName(handle.Path))}
	}
}

func (m *Model) copyCmd(name string) tea.Cmd {
	clipboard := m.clipboard
	return func() tea.Msg {
		if err := clipboard.WriteText(name); err != nil {
			return actionResultMsg{Err: fmt.Errorf("failed to copy name: %w", err)}
		}
		return actionResultMsg{Notice: fmt.Sprintf("Copied \"%s\" to clipboard", name)}
	}
}

func requestCopyCmd(cell *services.AssetCell) tea.Cmd {
	return func() tea.Msg {
		err := cell.RequestCopy()
		if err == nil || errors.Is(err, services.ErrStaleCell) {
			return nil
		}
		return actionResultMsg{Err: err}
	}
}

func (m *Model) View() string {
	switch m.state {
	case stateHelp:
		return m.helpScreen.View()
	case stateImporting:
		return m.importForm.View()
	}

	var b strings.Builder
	b.WriteString(renderHeader(m.devMode, ""))
	b.WriteString("\n")

	// Header: 3 lines, status: 2 lines, help bar: 2 lines
	listHeight := m.height - 7
	b.WriteString(m.soundList.View(listHeight))
	b.WriteString("\n\n")

	if status := m.status.View(m.width); status != "" {
		b.WriteString(status)
		b.WriteString("\n")
	}
	b.WriteString(m.renderShortHelp())

	return b.String()
}

func (m *Model) renderShortHelp() string {
	var parts []string
	for _, binding := range m.keys.ShortHelp() {
		help := binding.Help()
		parts = append(parts, theme.HelpShortcutStyle.Render(help.Key)+" "+theme.HelpLabelStyle.Render(help.Desc))
	}
	return theme.HelpStyle.Render(strings.Join(parts, " • "))
}
