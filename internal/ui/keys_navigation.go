package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/barkhq/barksound/internal/config"
)

// NavigationKeys defines key bindings for moving through the sound list
type NavigationKeys struct {
	Bottom key.Binding
	Down   key.Binding
	Top    key.Binding
	Up     key.Binding
}

// newNavigationKeys creates navigation key bindings
func newNavigationKeys(customKeys config.KeyBindingsConfig) NavigationKeys {
	return NavigationKeys{
		Bottom: buildBinding("bottom", customKeys),
		Down:   buildBinding("down", customKeys),
		Top:    buildBinding("top", customKeys),
		Up:     buildBinding("up", customKeys),
	}
}
