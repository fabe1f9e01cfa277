package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/barkhq/barksound/internal/domain"
	"github.com/barkhq/barksound/internal/services"
)

// listen returns a command that waits for the next value on sub
func listen[T any](sub *services.Subscription[T], name string, wrap func(T) tea.Msg) tea.Cmd {
	return func() tea.Msg {
		v, ok := <-sub.C
		if !ok {
			return streamClosedMsg{stream: name}
		}
		return wrap(v)
	}
}

// streams holds the model's subscriptions to the coordinator outputs
type streams struct {
	catalog *services.Subscription[services.CatalogUpdate]
	copies  *services.Subscription[string]
	pickers *services.Subscription[struct{}]
	plays   *services.Subscription[domain.AudioHandle]
}

func subscribe(coordinator *services.SoundListCoordinator) *streams {
	return &streams{
		catalog: coordinator.Catalog(),
		copies:  coordinator.CopyNames(),
		pickers: coordinator.PickerRequests(),
		plays:   coordinator.PlayRequests(),
	}
}

func (s *streams) nextCatalog() tea.Cmd {
	return listen(s.catalog, "catalog", func(u services.CatalogUpdate) tea.Msg {
		return catalogUpdatedMsg{update: u}
	})
}

func (s *streams) nextCopy() tea.Cmd {
	return listen(s.copies, "copy-names", func(name string) tea.Msg {
		return copyNameRequestedMsg{name: name}
	})
}

func (s *streams) nextPicker() tea.Cmd {
	return listen(s.pickers, "picker-requests", func(struct{}) tea.Msg {
		return pickerRequestedMsg{}
	})
}

func (s *streams) nextPlay() tea.Cmd {
	return listen(s.plays, "play-requests", func(h domain.AudioHandle) tea.Msg {
		return playRequestedMsg{handle: h}
	})
}

func (s *streams) all() tea.Cmd {
	return tea.Batch(s.nextCatalog(), s.nextCopy(), s.nextPicker(), s.nextPlay())
}

func (s *streams) close() {
	s.catalog.Close()
	s.copies.Close()
	s.pickers.Close()
	s.plays.Close()
}
