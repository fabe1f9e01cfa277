package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	HelpLabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpShortcutStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)
)

// Sound list styles
var (
	CursorStyle = lipgloss.NewStyle().
			Foreground(ColorSelected).
			Bold(true)

	CustomSoundStyle = lipgloss.NewStyle().
				Foreground(ColorCustom)

	DefaultSoundStyle = lipgloss.NewStyle().
				Foreground(ColorDefault)

	ImportEntryStyle = lipgloss.NewStyle().
				Foreground(ColorImport).
				Italic(true)

	SectionHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorSecondary).
				MarginTop(1)

	SelectedRowStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Bold(true)
)

// Dialog header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Help screen styles
var (
	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	HelpGroupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHelpGroup).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true).
			Width(18)
)

// Status line styles
var (
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	NoticeStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)
)

// KindStyle returns the style used to render an asset of the given kind
func KindStyle(readOnly bool) lipgloss.Style {
	if readOnly {
		return DefaultSoundStyle
	}
	return CustomSoundStyle
}
