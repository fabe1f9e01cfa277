package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/barkhq/barksound/internal/theme"
)

// StatusLine shows the latest notice or error below the list and clears it
// after a delay. Each Set bumps a generation so stale clear ticks are ignored.
type StatusLine struct {
	clearDelay time.Duration
	err        error
	generation int
	notice     string
}

// NewStatusLine creates a StatusLine with the given auto-clear delay
func NewStatusLine(clearDelay time.Duration) *StatusLine {
	return &StatusLine{clearDelay: clearDelay}
}

// SetError shows err and schedules clearing
func (s *StatusLine) SetError(err error) tea.Cmd {
	s.err = err
	s.notice = ""
	return s.scheduleClear()
}

// SetNotice shows a confirmation and schedules clearing
func (s *StatusLine) SetNotice(notice string) tea.Cmd {
	s.err = nil
	s.notice = notice
	return s.scheduleClear()
}

// Clear empties the status line when generation is still current
func (s *StatusLine) Clear(generation int) {
	if generation != s.generation {
		return
	}
	s.err = nil
	s.notice = ""
}

// Err returns the current error, nil when none
func (s *StatusLine) Err() error {
	return s.err
}

// Notice returns the current notice
func (s *StatusLine) Notice() string {
	return s.notice
}

// View renders the status line for the given width
func (s *StatusLine) View(width int) string {
	if s.err != nil {
		return theme.ErrorStyle.Render(formatErrorForDisplay(s.err, width))
	}
	if s.notice != "" {
		return theme.NoticeStyle.Render(s.notice)
	}
	return ""
}

func (s *StatusLine) scheduleClear() tea.Cmd {
	s.generation++
	generation := s.generation
	return tea.Tick(s.clearDelay, func(time.Time) tea.Msg {
		return clearStatusMsg{generation: generation}
	})
}
