package modal

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"
)

// Modal is a keyboard-driven dialog built from sections. Focus moves
// between the focusable elements the sections report while rendering.
type Modal struct {
	title     string
	variant   Variant
	width     int
	sections  []Section
	showHints bool
	hint      string
	primary   string
	footer    string // fixed line below the content, e.g. a saving notice

	focus  string   // focused element; settled to a real id on Render
	ids    []string // focusable ids in render order
	spans  map[string]span
	offset int // first content line shown
	rows   int // content lines shown by the last Render
}

// span is a focusable's line range within the full content.
type span struct {
	top, height int
}

// New creates a modal with the given title and options.
func New(title string, opts ...Option) *Modal {
	m := &Modal{
		title:     title,
		variant:   VariantDefault,
		width:     DefaultWidth,
		showHints: true,
		hint:      defaultHint,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// AddSection appends s and returns the modal for chaining.
func (m *Modal) AddSection(s Section) *Modal {
	m.sections = append(m.sections, s)
	return m
}

// HandleKey processes a key press and reports the triggered action:
// "cancel" for Esc, the primary action for ctrl+s, or the id of an
// activated element. cmd comes from the focused bubbles model.
func (m *Modal) HandleKey(k tea.KeyMsg) (action string, cmd tea.Cmd) {
	switch k.String() {
	case "esc":
		return "cancel", nil
	case "tab":
		m.moveFocus(1)
		return "", nil
	case "shift+tab":
		m.moveFocus(-1)
		return "", nil
	case "ctrl+s":
		return m.primary, nil
	case "enter":
		return m.enter(k)
	}
	return m.route(k)
}

// enter activates the focused element. Inputs without an action of their
// own fall through to the primary action; the textarea keeps Enter.
func (m *Modal) enter(k tea.KeyMsg) (string, tea.Cmd) {
	if m.focus == "" {
		return "", nil
	}
	action, cmd := m.route(k)
	if action != "" || m.capturesEnter(m.focus) {
		return action, cmd
	}
	if m.primary != "" {
		return m.primary, cmd
	}
	return m.focus, cmd
}

// SetFocus focuses the element with id. An id not rendered yet is kept
// and checked on the next Render.
func (m *Modal) SetFocus(id string) {
	m.focus = id
	m.reveal(id)
}

// SetFooter replaces the fixed footer.
func (m *Modal) SetFooter(footer string) {
	m.footer = footer
}

// FocusedID returns the focused element id.
func (m *Modal) FocusedID() string {
	return m.focus
}

func (m *Modal) moveFocus(delta int) {
	n := len(m.ids)
	if n == 0 {
		return
	}
	i := max(0, slices.Index(m.ids, m.focus))
	m.focus = m.ids[(i+delta+n)%n]
	m.reveal(m.focus)
}

// settleFocus points focus at a rendered element, the first one when the
// current id is unknown. Reports whether focus changed.
func (m *Modal) settleFocus() bool {
	if slices.Contains(m.ids, m.focus) {
		return false
	}
	first := ""
	if len(m.ids) > 0 {
		first = m.ids[0]
	}
	changed := m.focus != first
	m.focus = first
	return changed
}

// reveal scrolls so the element with id is inside the last viewport.
func (m *Modal) reveal(id string) {
	sp, ok := m.spans[id]
	if !ok || m.rows <= 0 {
		return
	}
	m.offset = min(m.offset, sp.top)
	m.offset = max(m.offset, sp.top+sp.height-m.rows)
}

func (m *Modal) capturesEnter(id string) bool {
	for _, s := range m.sections {
		if c, ok := s.(enterCapturer); ok && c.capturesEnter(id) {
			return true
		}
	}
	return false
}

// route hands k to the sections until one reacts.
func (m *Modal) route(k tea.KeyMsg) (string, tea.Cmd) {
	if m.focus == "" {
		return "", nil
	}
	for _, s := range m.sections {
		if action, cmd := s.Update(k, m.focus); action != "" || cmd != nil {
			return action, cmd
		}
	}
	return "", nil
}
