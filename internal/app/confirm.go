package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/catatan/internal/modal"
	"github.com/marcus/catatan/internal/note"
	"github.com/marcus/catatan/internal/ui"
)

// confirmState is the open delete confirmation.
type confirmState struct {
	modal    *modal.Modal
	note     note.Note
	deleting bool
	seq      int
}

func (m *Model) openConfirmDelete(n note.Note) {
	m.seq++
	d := ui.NewConfirmDialog(m.text.DeleteNote, m.text.ConfirmDelete)
	d.ConfirmLabel = m.text.Yes
	d.CancelLabel = m.text.No
	d.Danger = true
	d.FocusCancel = true
	m.confirm = &confirmState{modal: d.ToModal(), note: n, seq: m.seq}
}

func (m Model) handleConfirmKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	c := m.confirm
	action, cmd := c.modal.HandleKey(k)
	switch action {
	case "cancel":
		m.confirm = nil
		return m, nil
	case "confirm":
		if c.deleting {
			return m, nil
		}
		c.deleting = true
		m.logger.Debug("app: deleting note", "id", c.note.ID)
		return m, deleteCmd(m.store, c.note.ID, c.seq)
	}
	return m, cmd
}
