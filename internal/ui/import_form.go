package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/barkhq/barksound/internal/domain"
	"github.com/barkhq/barksound/internal/logging"
)

// ImportFormResult contains the chosen file
type ImportFormResult struct {
	Cancelled bool
	Path      string
}

// ImportForm lets the user pick a sound file to import
type ImportForm struct {
	Completed bool
	form      *huh.Form
	result    ImportFormResult
}

// NewImportForm creates a file picker rooted at startDir, limited to sound files
func NewImportForm(startDir string) *ImportForm {
	f := &ImportForm{}

	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewFilePicker().
				Title("Choose a sound").
				Description("Only " + domain.SoundSuffix + " files can be imported").
				CurrentDirectory(startDir).
				AllowedTypes([]string{domain.SoundSuffix}).
				DirAllowed(false).
				FileAllowed(true).
				Picking(true).
				Height(12).
				Value(&f.result.Path),
		),
	)

	return f
}

func (f *ImportForm) Init() tea.Cmd {
	return f.form.Init()
}

func (f *ImportForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			f.result.Cancelled = true
			f.Completed = true
			return f, nil
		}
	}

	form, cmd := f.form.Update(msg)
	if hf, ok := form.(*huh.Form); ok {
		f.form = hf
	}

	if f.form.State == huh.StateCompleted {
		f.Completed = true
		logging.Logger.Debug("Import file chosen", "path", f.result.Path)
		return f, nil
	}
	if f.form.State == huh.StateAborted {
		f.result.Cancelled = true
		f.Completed = true
		return f, nil
	}

	return f, cmd
}

func (f *ImportForm) View() string {
	return f.form.View()
}

// Result returns the form result
func (f *ImportForm) Result() ImportFormResult {
	return f.result
}
