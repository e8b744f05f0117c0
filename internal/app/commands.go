package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/catatan/internal/msg"
	"github.com/marcus/catatan/internal/note"
)

// SnapshotMsg carries a live-query emission.
type SnapshotMsg struct {
	Notes []note.Note
}

// subscriptionClosedMsg is sent when the live query channel closes.
type subscriptionClosedMsg struct{}

// NoteSavedMsg reports the result of an insert or update.
type NoteSavedMsg struct {
	Seq     int
	ID      int64
	Created bool
	Err     error
}

// NoteDeletedMsg reports the result of a delete.
type NoteDeletedMsg struct {
	Seq int
	ID  int64
	Err error
}

// waitForSnapshot blocks on the live query and delivers the next snapshot.
func waitForSnapshot(ch <-chan []note.Note) tea.Cmd {
	return func() tea.Msg {
		notes, ok := <-ch
		if !ok {
			return subscriptionClosedMsg{}
		}
		return SnapshotMsg{Notes: notes}
	}
}

// Writes run on a background context: leaving the screen never cancels them.

func insertCmd(s Store, d note.Draft, seq int) tea.Cmd {
	return func() tea.Msg {
		id, err := s.Insert(context.Background(), d.Title, d.Content)
		return NoteSavedMsg{Seq: seq, ID: id, Created: true, Err: err}
	}
}

func updateCmd(s Store, n note.Note, seq int) tea.Cmd {
	return func() tea.Msg {
		_, err := s.Update(context.Background(), n)
		return NoteSavedMsg{Seq: seq, ID: n.ID, Err: err}
	}
}

func deleteCmd(s Store, id int64, seq int) tea.Cmd {
	return func() tea.Msg {
		err := s.Delete(context.Background(), id)
		return NoteDeletedMsg{Seq: seq, ID: id, Err: err}
	}
}

// copyCmd writes text to the clipboard and reports the outcome as a toast.
func copyCmd(write func(string) error, text, okMsg, failMsg string) tea.Cmd {
	if err := write(text); err != nil {
		return msg.ShowError(failMsg + ": " + err.Error())
	}
	return msg.ShowToast(okMsg, msg.ToastShort)
}
