package app

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/catatan/internal/modal"
	"github.com/marcus/catatan/internal/note"
	"github.com/marcus/catatan/internal/styles"
	"github.com/marcus/catatan/internal/ui"
)

const (
	editorTitleID   = "title"
	editorContentID = "content"
	editorSaveID    = "save"
	editorCancelID  = "cancel"

	editorContentHeight = 8
)

// editorState is the open add/edit dialog.
type editorState struct {
	modal   *modal.Modal
	title   textinput.Model
	content textarea.Model
	note    *note.Note // nil when adding
	err     string     // inline validation message
	saving  bool
	seq     int
}

// openEditor shows the editor, empty for a new note or pre-filled from n.
func (m *Model) openEditor(n *note.Note) tea.Cmd {
	m.seq++
	e := &editorState{seq: m.seq}

	e.title = textinput.New()
	e.title.Prompt = ""
	e.title.CharLimit = 200

	e.content = textarea.New()
	e.content.ShowLineNumbers = false
	e.content.Prompt = ""
	e.content.CharLimit = 0
	e.content.SetHeight(editorContentHeight)

	heading := m.text.AddNote
	if n != nil {
		heading = m.text.EditNote
		cp := *n
		e.note = &cp
		e.title.SetValue(n.Title)
		e.title.CursorEnd()
		e.content.SetValue(n.Content)
	}

	e.modal = modal.New(heading,
		modal.WithWidth(ui.ModalWidthLarge),
		modal.WithPrimaryAction(editorSaveID),
		modal.WithHint(m.text.EditorHint),
	).
		AddSection(modal.InputWithLabel(editorTitleID, m.text.TitleLabel, &e.title)).
		AddSection(modal.Spacer()).
		AddSection(modal.TextareaWithLabel(editorContentID, m.text.ContentLabel, &e.content)).
		AddSection(modal.When(func() bool { return e.err != "" },
			modal.Custom(func(contentWidth int, _ string) modal.RenderedSection {
				return modal.RenderedSection{Content: styles.ErrorMsg.Render(e.err)}
			}, nil))).
		AddSection(modal.Spacer()).
		AddSection(modal.Buttons(
			modal.Btn(m.text.Save, editorSaveID),
			modal.Btn(m.text.Cancel, editorCancelID),
		))

	m.editor = e
	return textinput.Blink
}

// handleEditorKey routes a key to the editor dialog.
func (m Model) handleEditorKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	e := m.editor
	action, cmd := e.modal.HandleKey(k)
	switch action {
	case editorCancelID:
		m.editor = nil
		return m, nil
	case editorSaveID:
		return m, m.submitEditor()
	}
	return m, cmd
}

// submitEditor validates the draft and dispatches the write. The dialog
// stays open until the write reports back.
func (m *Model) submitEditor() tea.Cmd {
	e := m.editor
	if e == nil || e.saving {
		return nil
	}

	d := note.Draft{Title: e.title.Value(), Content: e.content.Value()}
	if err := d.Validate(); err != nil {
		e.err = m.text.ErrEmptyNote
		return nil
	}
	d = d.Normalize()

	e.err = ""
	e.saving = true
	e.modal.SetFooter(styles.Muted.Render(m.text.Saving))

	if e.note == nil {
		m.logger.Debug("app: inserting note")
		return insertCmd(m.store, d, e.seq)
	}
	m.logger.Debug("app: updating note", "id", e.note.ID)
	return updateCmd(m.store, d.Apply(*e.note), e.seq)
}

// failed re-enables the dialog after a failed write.
func (e *editorState) failed() {
	e.saving = false
	e.modal.SetFooter("")
}
