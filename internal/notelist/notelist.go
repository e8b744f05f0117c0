// Package notelist renders the note collection as a scrollable list and
// turns key presses on it into intents. It never writes to the store.
package notelist

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/marcus/catatan/internal/keymap"
	"github.com/marcus/catatan/internal/lang"
	"github.com/marcus/catatan/internal/note"
	"github.com/marcus/catatan/internal/styles"
	"github.com/marcus/catatan/internal/ui"
)

// DefaultDateFormat renders updatedAt as "05 Mar 2024, 14:30".
const DefaultDateFormat = "02 Jan 2006, 15:04"

// rowHeight is title line plus first content line.
const rowHeight = 2

// SelectMsg is emitted when a note is activated for editing.
type SelectMsg struct {
	Note note.Note
}

// RequestDeleteMsg is emitted when deletion of a note is requested.
type RequestDeleteMsg struct {
	Note note.Note
}

// Options configures a Model.
type Options struct {
	Text         *lang.Table
	Keys         keymap.KeyMap
	DateFormat   string
	RelativeTime bool
	Location     *time.Location // defaults to time.Local
	Now          func() time.Time
}

// Model is the note list.
type Model struct {
	notes     []note.Note
	cursor    int
	scrollOff int
	width     int
	height    int

	text         *lang.Table
	keys         keymap.KeyMap
	dateFormat   string
	relativeTime bool
	loc          *time.Location
	now          func() time.Time
}

// New creates an empty list.
func New(opts Options) Model {
	if opts.Text == nil {
		opts.Text = lang.For("")
	}
	if opts.DateFormat == "" {
		opts.DateFormat = DefaultDateFormat
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return Model{
		text:         opts.Text,
		keys:         opts.Keys,
		dateFormat:   opts.DateFormat,
		relativeTime: opts.RelativeTime,
		loc:          opts.Location,
		now:          opts.Now,
	}
}

// SetNotes replaces the rows with snapshot. The cursor stays on the same
// note if it is still present, otherwise it keeps its index.
func (m *Model) SetNotes(snapshot []note.Note) {
	var selected int64
	hadSelection := false
	if n, ok := m.Selected(); ok {
		selected, hadSelection = n.ID, true
	}

	m.notes = snapshot

	if hadSelection {
		for i, n := range m.notes {
			if n.ID == selected {
				m.cursor = i
				m.ensureCursorVisible()
				return
			}
		}
	}
	m.cursor = clamp(m.cursor, 0, len(m.notes)-1)
	m.ensureCursorVisible()
}

// Notes returns the current snapshot.
func (m Model) Notes() []note.Note { return m.notes }

// Empty reports whether the collection is empty.
func (m Model) Empty() bool { return len(m.notes) == 0 }

// Selected returns the note under the cursor.
func (m Model) Selected() (note.Note, bool) {
	if m.cursor < 0 || m.cursor >= len(m.notes) {
		return note.Note{}, false
	}
	return m.notes[m.cursor], true
}

// SelectID moves the cursor to the note with id. Reports whether it was found.
func (m *Model) SelectID(id int64) bool {
	for i, n := range m.notes {
		if n.ID == id {
			m.cursor = i
			m.ensureCursorVisible()
			return true
		}
	}
	return false
}

// Cursor returns the cursor index.
func (m Model) Cursor() int { return m.cursor }

// SetSize sets the area the list renders into.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.ensureCursorVisible()
}

// Update handles navigation keys and emits SelectMsg / RequestDeleteMsg.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.notes) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(keyMsg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(keyMsg, m.keys.Top):
		m.cursor = 0
		m.ensureCursorVisible()
	case key.Matches(keyMsg, m.keys.Bottom):
		m.cursor = len(m.notes) - 1
		m.ensureCursorVisible()
	case key.Matches(keyMsg, m.keys.PageUp):
		m.moveCursor(-m.visibleRows())
	case key.Matches(keyMsg, m.keys.PageDown):
		m.moveCursor(m.visibleRows())
	case key.Matches(keyMsg, m.keys.Open):
		if n, ok := m.Selected(); ok {
			return m, func() tea.Msg { return SelectMsg{Note: n} }
		}
	case key.Matches(keyMsg, m.keys.Delete):
		if n, ok := m.Selected(); ok {
			return m, func() tea.Msg { return RequestDeleteMsg{Note: n} }
		}
	}
	return m, nil
}

func (m *Model) moveCursor(delta int) {
	m.cursor = clamp(m.cursor+delta, 0, len(m.notes)-1)
	m.ensureCursorVisible()
}

func (m Model) visibleRows() int {
	return max(1, m.height/rowHeight)
}

// ensureCursorVisible adjusts scrollOff so the cursor row is on screen.
func (m *Model) ensureCursorVisible() {
	rows := m.visibleRows()
	if m.cursor < m.scrollOff {
		m.scrollOff = m.cursor
	}
	if m.cursor >= m.scrollOff+rows {
		m.scrollOff = m.cursor - rows + 1
	}
	m.scrollOff = clamp(m.scrollOff, 0, max(0, len(m.notes)-rows))
}

// View renders the rows, or the empty-state prompt when there are no notes.
func (m Model) View() string {
	if m.Empty() {
		return m.renderEmpty()
	}

	end := min(len(m.notes), m.scrollOff+m.visibleRows())
	var b strings.Builder
	for i := m.scrollOff; i < end; i++ {
		if i > m.scrollOff {
			b.WriteString("\n")
		}
		b.WriteString(m.renderRow(m.notes[i], i == m.cursor))
	}
	return b.String()
}

func (m Model) renderEmpty() string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		styles.Title.Render(m.text.EmptyTitle),
		"",
		styles.Muted.Render(m.text.EmptyHint),
	)
	if m.width <= 0 || m.height <= 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) renderRow(n note.Note, selected bool) string {
	width := m.width
	if width <= 0 {
		width = 80
	}

	cursor := "  "
	titleStyle := styles.ListItemNormal.Bold(true)
	if selected {
		cursor = styles.ListCursor.Render("> ")
		titleStyle = styles.ListItemSelected.Bold(true)
	}

	date := m.FormatDate(n.UpdatedAt)
	dateW := runewidth.StringWidth(date)
	titleW := max(1, width-2-dateW-1)

	title := ui.PadRight(n.DisplayTitle(m.text.Untitled), titleW)
	line1 := cursor + titleStyle.Render(title) + " " + styles.ListDate.Render(date)

	body := ui.Truncate(n.DisplayContent(m.text.NoContent), max(1, width-2))
	line2 := "  " + styles.Muted.Render(body)

	return line1 + "\n" + line2
}

// FormatDate formats t with the configured layout, adding a relative time
// when enabled.
func (m Model) FormatDate(t time.Time) string {
	s := t.In(m.loc).Format(m.dateFormat)
	if m.relativeTime {
		s += " (" + humanize.RelTime(t, m.now(), m.text.RelAgo, m.text.RelLater) + ")"
	}
	return s
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
