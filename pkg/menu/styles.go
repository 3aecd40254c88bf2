package menu

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles used by the full-screen renderer.
type Styles struct {
	Title        lipgloss.Style // header block above the options
	Option       lipgloss.Style // selectable row
	Header       lipgloss.Style // non-selectable group label
	Cursor       lipgloss.Style // row under the cursor
	CursorHeader lipgloss.Style // cursor resting on a non-selectable row
}

// DefaultStyles mirrors the classic curses attributes: bold title,
// reverse-video cursor, dimmed group headers. A non-selectable row
// under the cursor is emphasized but never reverse-highlighted.
func DefaultStyles() Styles {
	return Styles{
		Title:        lipgloss.NewStyle().Bold(true),
		Option:       lipgloss.NewStyle(),
		Header:       lipgloss.NewStyle().Faint(true),
		Cursor:       lipgloss.NewStyle().Reverse(true),
		CursorHeader: lipgloss.NewStyle().Bold(true),
	}
}
