package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/barkhq/barksound/internal/config"
)

// SoundKeys defines key bindings acting on the selected row
type SoundKeys struct {
	CopyName key.Binding
	Delete   key.Binding
	Import   key.Binding
	Select   key.Binding
}

// newSoundKeys creates sound key bindings
func newSoundKeys(customKeys config.KeyBindingsConfig) SoundKeys {
	return SoundKeys{
		CopyName: buildBinding("copy_name", customKeys),
		Delete:   buildBinding("delete", customKeys),
		Import:   buildBinding("import", customKeys),
		Select:   buildBinding("select", customKeys),
	}
}
