package ui

import (
	"strings"

	"github.com/barkhq/barksound/internal/domain"
	"github.com/barkhq/barksound/internal/services"
	"github.com/barkhq/barksound/internal/theme"
)

// sectionTitles maps catalog section keys to headings
var sectionTitles = map[string]string{
	domain.SectionCustomSounds:  "Custom sounds",
	domain.SectionDefaultSounds: "Default sounds",
}

type soundRow struct {
	item    domain.SoundListItem
	section string
}

// SoundList renders a catalog snapshot as headed sections with a cursor
type SoundList struct {
	cursor    int
	hasUpdate bool
	rows      []soundRow
	update    services.CatalogUpdate
}

// NewSoundList creates an empty list, shown as loading until the first update
func NewSoundList() *SoundList {
	return &SoundList{}
}

// SetUpdate replaces the rows. The cursor stays on the same item when it
// survived the update, otherwise it is clamped.
func (l *SoundList) SetUpdate(update services.CatalogUpdate) {
	var selected string
	if item, ok := l.Selected(); ok {
		selected = item.String()
	}

	l.update = update
	l.hasUpdate = true
	l.rows = l.rows[:0]
	for _, section := range update.Snapshot.Sections {
		for _, item := range section.Items {
			l.rows = append(l.rows, soundRow{item: item, section: section.Key})
		}
	}

	for i, row := range l.rows {
		if selected != "" && row.item.String() == selected {
			l.cursor = i
			return
		}
	}
	l.clamp()
}

// Loaded reports whether a snapshot has been received
func (l *SoundList) Loaded() bool {
	return l.hasUpdate
}

// Len returns the number of selectable rows
func (l *SoundList) Len() int {
	return len(l.rows)
}

// Cursor returns the selected row index
func (l *SoundList) Cursor() int {
	return l.cursor
}

// MoveUp moves the cursor one row up
func (l *SoundList) MoveUp() {
	l.cursor--
	l.clamp()
}

// MoveDown moves the cursor one row down
func (l *SoundList) MoveDown() {
	l.cursor++
	l.clamp()
}

// Top moves the cursor to the first row
func (l *SoundList) Top() {
	l.cursor = 0
}

// Bottom moves the cursor to the last row
func (l *SoundList) Bottom() {
	l.cursor = len(l.rows) - 1
	l.clamp()
}

// Selected returns the item under the cursor
func (l *SoundList) Selected() (domain.SoundListItem, bool) {
	if l.cursor < 0 || l.cursor >= len(l.rows) {
		return domain.SoundListItem{}, false
	}
	return l.rows[l.cursor].item, true
}

// SelectedCell returns the live cell of the selected asset, nil for the
// import entry
func (l *SoundList) SelectedCell() *services.AssetCell {
	item, ok := l.Selected()
	if !ok {
		return nil
	}
	asset, ok := item.Asset()
	if !ok {
		return nil
	}
	return l.update.Cell(asset)
}

func (l *SoundList) clamp() {
	if l.cursor >= len(l.rows) {
		l.cursor = len(l.rows) - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
}

// View renders the sections, scrolled so the cursor stays within height lines
func (l *SoundList) View(height int) string {
	if !l.hasUpdate {
		return theme.HelpLabelStyle.Render("Loading sounds...")
	}

	var lines []string
	cursorLine := 0
	rowIndex := 0
	for _, section := range l.update.Snapshot.Sections {
		lines = append(lines, theme.SectionHeaderStyle.Render(sectionTitle(section.Key)))
		if len(section.Items) == 0 {
			lines = append(lines, "  "+theme.HelpLabelStyle.Render("(none)"))
		}
		for _, item := range section.Items {
			if rowIndex == l.cursor {
				cursorLine = len(lines)
			}
			lines = append(lines, renderRow(item, rowIndex == l.cursor))
			rowIndex++
		}
	}

	if height > 0 && len(lines) > height {
		start := cursorLine - height/2
		if start < 0 {
			start = 0
		}
		if start+height > len(lines) {
			start = len(lines) - height
		}
		lines = lines[start : start+height]
	}

	return strings.Join(lines, "\n")
}

func sectionTitle(key string) string {
	if title, ok := sectionTitles[key]; ok {
		return title
	}
	return key
}

func renderRow(item domain.SoundListItem, selected bool) string {
	prefix := "  "
	if selected {
		prefix = theme.CursorStyle.Render("› ")
	}

	label := domain.MatchItem(item,
		func(asset domain.SoundAsset) string {
			icon := "♪"
			if asset.ReadOnly() {
				icon = "♫"
			}
			name := asset.Name
			if selected {
				name = theme.SelectedRowStyle.Render(name)
			}
			return theme.KindStyle(asset.ReadOnly()).Render(icon) + " " + name
		},
		func() string {
			return theme.ImportEntryStyle.Render("+ Import a sound...")
		},
	)

	return prefix + label
}
