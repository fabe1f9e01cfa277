package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/barkhq/barksound/internal/config"
)

// KeyMap contains all keyboard shortcuts organized by context
type KeyMap struct {
	Application ApplicationKeys
	Navigation  NavigationKeys
	Sound       SoundKeys
}

// NewKeyMap creates a new KeyMap with all key bindings initialized.
// Pass nil for keysConfig to use default bindings.
func NewKeyMap(keysConfig config.KeyBindingsConfig) KeyMap {
	return KeyMap{
		Application: newApplicationKeys(keysConfig),
		Navigation:  newNavigationKeys(keysConfig),
		Sound:       newSoundKeys(keysConfig),
	}
}

// ShortHelp returns a curated list of key bindings for the bottom bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Sound.Select,
		k.Sound.CopyName,
		k.Sound.Delete,
		k.Sound.Import,
		k.Application.Help,
		k.Application.Quit,
	}
}
