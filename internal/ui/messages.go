package ui

import (
	"github.com/barkhq/barksound/internal/domain"
	"github.com/barkhq/barksound/internal/services"
)

// Stream messages, produced by the coordinator subscriptions

// catalogUpdatedMsg carries a new catalog snapshot
type catalogUpdatedMsg struct {
	update services.CatalogUpdate
}

// playRequestedMsg asks for a sound to be played
type playRequestedMsg struct {
	handle domain.AudioHandle
}

// pickerRequestedMsg asks for the import file picker
type pickerRequestedMsg struct{}

// copyNameRequestedMsg asks for a name to go to the clipboard
type copyNameRequestedMsg struct {
	name string
}

// streamClosedMsg is sent once a subscription ends
type streamClosedMsg struct {
	stream string
}

// Action messages, produced by commands the model runs

// actionResultMsg reports the outcome of a background action.
// Notice is shown on success, Err on failure.
type actionResultMsg struct {
	Err    error
	Notice string
}

// clearStatusMsg clears the status line if it still shows generation
type clearStatusMsg struct {
	generation int
}
