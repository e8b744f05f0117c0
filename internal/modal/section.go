package modal

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/marcus/catatan/internal/styles"
)

// Section is one block of modal content.
type Section interface {
	// Render draws the section at contentWidth. focusID is the modal's
	// currently focused element.
	Render(contentWidth int, focusID string) RenderedSection
	// Update handles a key routed by the modal while focusID is focused.
	Update(msg tea.Msg, focusID string) (action string, cmd tea.Cmd)
}

// RenderedSection is a section's output and its focusable elements.
type RenderedSection struct {
	Content    string
	Focusables []FocusableInfo
}

// FocusableInfo locates a focusable element relative to its section.
type FocusableInfo struct {
	ID      string
	OffsetX int
	OffsetY int
	Width   int
	Height  int
}

// enterCapturer is implemented by sections that consume Enter themselves.
type enterCapturer interface {
	capturesEnter(focusID string) bool
}

// measureHeight returns the number of lines in content, ignoring one trailing newline.
func measureHeight(content string) int {
	content = strings.TrimSuffix(content, "\n")
	if content == "" {
		return 0
	}
	return strings.Count(content, "\n") + 1
}

// --- Text ---

type textSection struct {
	text string
}

// Text creates a static text section wrapped to the modal width.
func Text(s string) Section {
	return &textSection{text: s}
}

func (s *textSection) Render(contentWidth int, _ string) RenderedSection {
	if s.text == "" {
		return RenderedSection{}
	}
	return RenderedSection{Content: ansi.Wordwrap(s.text, contentWidth, "")}
}

func (s *textSection) Update(tea.Msg, string) (string, tea.Cmd) { return "", nil }

// --- Spacer ---

type spacerSection struct{}

// Spacer creates a blank line.
func Spacer() Section { return spacerSection{} }

func (spacerSection) Render(int, string) RenderedSection { return RenderedSection{Content: " "} }

func (spacerSection) Update(tea.Msg, string) (string, tea.Cmd) { return "", nil }

// --- Buttons ---

// ButtonDef describes one button.
type ButtonDef struct {
	Label  string
	ID     string
	Danger bool
}

// ButtonOption configures a button.
type ButtonOption func(*ButtonDef)

// BtnDanger renders the button with the danger style.
func BtnDanger() ButtonOption {
	return func(b *ButtonDef) { b.Danger = true }
}

// Btn creates a button whose action is id.
func Btn(label, id string, opts ...ButtonOption) ButtonDef {
	b := ButtonDef{Label: label, ID: id}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

type buttonsSection struct {
	buttons []ButtonDef
}

// Buttons creates a horizontal row of buttons. Enter on a focused button
// returns the button's ID as the action.
func Buttons(buttons ...ButtonDef) Section {
	return &buttonsSection{buttons: buttons}
}

const buttonGap = 2

func (s *buttonsSection) Render(_ int, focusID string) RenderedSection {
	var (
		parts      []string
		focusables []FocusableInfo
		x          int
	)
	for i, b := range s.buttons {
		style := styles.Button
		switch {
		case b.Danger && b.ID == focusID:
			style = styles.ButtonDangerFocused
		case b.Danger:
			style = styles.ButtonDanger
		case b.ID == focusID:
			style = styles.ButtonFocused
		}
		rendered := style.Render(b.Label)
		w := ansi.StringWidth(rendered)

		if i > 0 {
			parts = append(parts, strings.Repeat(" ", buttonGap))
			x += buttonGap
		}
		parts = append(parts, rendered)
		focusables = append(focusables, FocusableInfo{ID: b.ID, OffsetX: x, Width: w, Height: 1})
		x += w
	}
	return RenderedSection{
		Content:    lipgloss.JoinHorizontal(lipgloss.Top, parts...),
		Focusables: focusables,
	}
}

func (s *buttonsSection) Update(msg tea.Msg, focusID string) (string, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || key.String() != "enter" {
		return "", nil
	}
	for _, b := range s.buttons {
		if b.ID == focusID {
			return b.ID, nil
		}
	}
	return "", nil
}

// --- Input ---

type inputSection struct {
	id    string
	label string
	model *textinput.Model
}

// InputWithLabel creates a single-line text input with a label above it.
func InputWithLabel(id, label string, model *textinput.Model) Section {
	return &inputSection{id: id, label: label, model: model}
}

func (s *inputSection) Render(contentWidth int, focusID string) RenderedSection {
	s.model.Width = max(1, contentWidth-ansi.StringWidth(s.model.Prompt)-1)
	if focusID == s.id {
		s.model.Focus()
	} else {
		s.model.Blur()
	}

	content := styles.Muted.Render(s.label) + "\n" + s.model.View()
	return RenderedSection{
		Content: content,
		Focusables: []FocusableInfo{{
			ID: s.id, OffsetY: 1, Width: contentWidth, Height: 1,
		}},
	}
}

func (s *inputSection) Update(msg tea.Msg, focusID string) (string, tea.Cmd) {
	if focusID != s.id {
		return "", nil
	}
	if !s.model.Focused() {
		s.model.Focus()
	}
	var cmd tea.Cmd
	*s.model, cmd = s.model.Update(msg)
	return "", cmd
}

// --- Textarea ---

type textareaSection struct {
	id    string
	label string
	model *textarea.Model
}

// TextareaWithLabel creates a multi-line input with a label above it.
// Enter inserts a newline while it is focused.
func TextareaWithLabel(id, label string, model *textarea.Model) Section {
	return &textareaSection{id: id, label: label, model: model}
}

func (s *textareaSection) Render(contentWidth int, focusID string) RenderedSection {
	s.model.SetWidth(max(1, contentWidth))
	if focusID == s.id {
		s.model.Focus()
	} else {
		s.model.Blur()
	}

	content := styles.Muted.Render(s.label) + "\n" + s.model.View()
	return RenderedSection{
		Content: content,
		Focusables: []FocusableInfo{{
			ID: s.id, OffsetY: 1, Width: contentWidth, Height: s.model.Height(),
		}},
	}
}

func (s *textareaSection) Update(msg tea.Msg, focusID string) (string, tea.Cmd) {
	if focusID != s.id {
		return "", nil
	}
	if !s.model.Focused() {
		s.model.Focus()
	}
	var cmd tea.Cmd
	*s.model, cmd = s.model.Update(msg)
	return "", cmd
}

func (s *textareaSection) capturesEnter(focusID string) bool {
	return focusID == s.id
}

// --- When ---

type whenSection struct {
	cond    func() bool
	section Section
}

// When renders section only while cond reports true.
func When(cond func() bool, section Section) Section {
	return &whenSection{cond: cond, section: section}
}

func (s *whenSection) Render(contentWidth int, focusID string) RenderedSection {
	if !s.cond() {
		return RenderedSection{}
	}
	return s.section.Render(contentWidth, focusID)
}

func (s *whenSection) Update(msg tea.Msg, focusID string) (string, tea.Cmd) {
	if !s.cond() {
		return "", nil
	}
	return s.section.Update(msg, focusID)
}

// --- Custom ---

type customSection struct {
	render func(contentWidth int, focusID string) RenderedSection
	update func(msg tea.Msg, focusID string) (string, tea.Cmd)
}

// Custom creates a section from render and update functions. update may be nil.
func Custom(
	render func(contentWidth int, focusID string) RenderedSection,
	update func(msg tea.Msg, focusID string) (string, tea.Cmd),
) Section {
	return &customSection{render: render, update: update}
}

func (s *customSection) Render(contentWidth int, focusID string) RenderedSection {
	return s.render(contentWidth, focusID)
}

func (s *customSection) Update(msg tea.Msg, focusID string) (string, tea.Cmd) {
	if s.update == nil {
		return "", nil
	}
	return s.update(msg, focusID)
}
