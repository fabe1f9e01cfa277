package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/barkhq/barksound/internal/ports"
)

// System implements ports.Clipboard on the OS clipboard
type System struct{}

// Verify interface compliance at compile time
var _ ports.Clipboard = (*System)(nil)

// NewSystem creates a clipboard writer
func NewSystem() *System {
	return &System{}
}

// WriteText replaces the clipboard contents with text
func (s *System) WriteText(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard not supported on this system")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to write clipboard: %w", err)
	}
	return nil
}
