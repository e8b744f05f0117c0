package ui

import (
	"github.com/marcus/catatan/internal/modal"
)

// Modal widths shared by the app's dialogs.
const (
	ModalWidthSmall  = 40
	ModalWidthMedium = 50
	ModalWidthLarge  = 70
)

// ConfirmDialog is a reusable confirmation modal with interactive buttons.
type ConfirmDialog struct {
	Title        string
	Message      string
	ConfirmLabel string // e.g. " Yes ", " Delete "
	CancelLabel  string // e.g. " No ", " Cancel "
	Danger       bool   // Red border and confirm button
	FocusCancel  bool   // Start with the cancel button focused
	Width        int
}

// NewConfirmDialog creates a dialog with default labels and width.
func NewConfirmDialog(title, message string) *ConfirmDialog {
	return &ConfirmDialog{
		Title:        title,
		Message:      message,
		ConfirmLabel: " Confirm ",
		CancelLabel:  " Cancel ",
		Width:        ModalWidthMedium,
	}
}

// ToModal builds the modal. Its actions are "confirm" and "cancel"; Esc
// also yields "cancel".
func (d *ConfirmDialog) ToModal() *modal.Modal {
	variant := modal.VariantDefault
	var confirmOpts []modal.ButtonOption
	if d.Danger {
		variant = modal.VariantDanger
		confirmOpts = append(confirmOpts, modal.BtnDanger())
	}

	m := modal.New(d.Title,
		modal.WithWidth(d.Width),
		modal.WithVariant(variant),
		modal.WithHints(false),
	).
		AddSection(modal.Text(d.Message)).
		AddSection(modal.Spacer()).
		AddSection(modal.Buttons(
			modal.Btn(d.ConfirmLabel, "confirm", confirmOpts...),
			modal.Btn(d.CancelLabel, "cancel"),
		))
	if d.FocusCancel {
		m.SetFocus("cancel")
	}
	return m
}
