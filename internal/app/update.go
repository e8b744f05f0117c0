package app

import (
	"errors"
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/catatan/internal/msg"
	"github.com/marcus/catatan/internal/notelist"
	"github.com/marcus/catatan/internal/state"
	"github.com/marcus/catatan/internal/store"
	"github.com/marcus/catatan/internal/styles"
	"github.com/marcus/catatan/internal/theme"
	"github.com/marcus/catatan/internal/ui"
)

// Update handles all messages and returns the updated model and commands.
func (m Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(message)

	case tea.WindowSizeMsg:
		m.width = message.Width
		m.height = message.Height
		m.ready = true
		m.layout()
		return m, nil

	case SnapshotMsg:
		m.list.SetNotes(message.Notes)
		m.loaded = true
		if m.pendingSelect != 0 && m.list.SelectID(m.pendingSelect) {
			m.pendingSelect = 0
		}
		return m, waitForSnapshot(m.updates)

	case subscriptionClosedMsg:
		if m.quitting {
			return m, nil
		}
		m.logger.Warn("app: live query closed, exiting")
		return m.quit()

	case notelist.SelectMsg:
		n := message.Note
		return m, m.openEditor(&n)

	case notelist.RequestDeleteMsg:
		m.openConfirmDelete(message.Note)
		return m, nil

	case NoteSavedMsg:
		return m.handleNoteSaved(message)

	case NoteDeletedMsg:
		return m.handleNoteDeleted(message)

	case msg.ToastMsg:
		return m, m.showToast(message.Message, message.IsError, message.Duration)

	case msg.ToastExpiredMsg:
		if m.toast.Expires.Equal(message.Expires) {
			m.toast = ui.Toast{}
		}
		return m, nil
	}

	// Cursor blink and other bubbles messages for the open editor
	if m.editor != nil {
		var cmd tea.Cmd
		if m.editor.title.Focused() {
			m.editor.title, cmd = m.editor.title.Update(message)
		} else if m.editor.content.Focused() {
			m.editor.content, cmd = m.editor.content.Update(message)
		}
		return m, cmd
	}
	return m, nil
}

// handleKeyMsg processes keyboard input, modals first.
func (m Model) handleKeyMsg(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	if k.Type == tea.KeyCtrlC {
		return m.quit()
	}

	switch m.activeModal() {
	case ModalEditor:
		return m.handleEditorKey(k)
	case ModalConfirm:
		return m.handleConfirmKey(k)
	case ModalHelp:
		switch {
		case k.Type == tea.KeyEsc, key.Matches(k, m.keys.Help):
			m.showHelp = false
		case key.Matches(k, m.keys.Quit):
			return m.quit()
		}
		return m, nil
	}

	switch {
	case key.Matches(k, m.keys.Quit):
		return m.quit()

	case key.Matches(k, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(k, m.keys.Add):
		return m, m.openEditor(nil)

	case key.Matches(k, m.keys.Copy):
		n, ok := m.list.Selected()
		if !ok {
			return m, nil
		}
		return m, copyCmd(m.clipboard, n.Content, m.text.Copied, m.text.CopyFailed)

	case key.Matches(k, m.keys.Preview):
		m.showPreview = !m.showPreview
		m.layout()
		if err := state.SetShowPreview(m.showPreview); err != nil {
			m.logger.Warn("app: save state failed", "error", err)
		}
		return m, nil

	case key.Matches(k, m.keys.Theme):
		return m, m.cycleTheme()
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(k)
	return m, cmd
}

func (m Model) handleNoteSaved(res NoteSavedMsg) (tea.Model, tea.Cmd) {
	e := m.editor
	current := e != nil && e.seq == res.Seq

	if res.Err != nil {
		if errors.Is(res.Err, store.ErrNotFound) {
			// Deleted elsewhere while being edited; nothing left to save.
			m.logger.Debug("app: edited note no longer exists", "id", res.ID)
			if current {
				m.editor = nil
			}
			return m, nil
		}
		m.logger.Error("app: save failed", "id", res.ID, "error", res.Err)
		if current {
			e.failed()
		}
		return m, m.showToast(m.text.SaveFailed+": "+res.Err.Error(), true, msg.ToastLong)
	}

	if current {
		m.editor = nil
	}
	if !m.list.SelectID(res.ID) {
		m.pendingSelect = res.ID
	}
	return m, nil
}

func (m Model) handleNoteDeleted(res NoteDeletedMsg) (tea.Model, tea.Cmd) {
	c := m.confirm
	current := c != nil && c.seq == res.Seq

	if res.Err != nil {
		m.logger.Error("app: delete failed", "id", res.ID, "error", res.Err)
		if current {
			c.deleting = false
		}
		return m, m.showToast(m.text.DeleteFailed+": "+res.Err.Error(), true, msg.ToastLong)
	}

	if current {
		m.confirm = nil
	}
	return m, nil
}

// showToast displays message until d elapses.
func (m *Model) showToast(message string, isError bool, d time.Duration) tea.Cmd {
	if d <= 0 {
		d = msg.ToastShort
	}
	m.toast = ui.Toast{Message: message, IsError: isError, Expires: m.now().Add(d)}
	return msg.ExpireToast(m.toast.Expires, d)
}

// cycleTheme switches to the next built-in theme and persists the choice.
func (m *Model) cycleTheme() tea.Cmd {
	themes := styles.ListThemes()
	i := slices.Index(themes, styles.CurrentTheme())
	next := themes[(i+1)%len(themes)]

	m.cfg.UI.Theme = next
	theme.ApplyResolved(theme.ResolveTheme(m.cfg))
	m.preview.reset()

	if m.saveTheme != nil {
		if err := m.saveTheme(next); err != nil {
			m.logger.Warn("app: save theme failed", "theme", next, "error", err)
		}
	}
	return nil
}

// quit ends the live query, remembers the selection and exits.
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.cancel()
	if n, ok := m.list.Selected(); ok {
		if err := state.SetLastNoteID(n.ID); err != nil {
			m.logger.Warn("app: save state failed", "error", err)
		}
	}
	return m, tea.Quit
}
