package modal

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func TestNew(t *testing.T) {
	m := New("Test Modal")
	if m.title != "Test Modal" {
		t.Errorf("expected title 'Test Modal', got %q", m.title)
	}
	if m.width != DefaultWidth {
		t.Errorf("expected default width %d, got %d", DefaultWidth, m.width)
	}
	if m.variant != VariantDefault {
		t.Errorf("expected VariantDefault, got %v", m.variant)
	}
	if !m.showHints {
		t.Error("expected hints shown by default")
	}
}

func TestNewWithOptions(t *testing.T) {
	m := New("Test",
		WithWidth(60),
		WithVariant(VariantDanger),
		WithHints(false),
		WithPrimaryAction("submit"),
		WithFooter("footer"),
	)

	if m.width != 60 {
		t.Errorf("expected width 60, got %d", m.width)
	}
	if m.variant != VariantDanger {
		t.Errorf("expected VariantDanger, got %v", m.variant)
	}
	if m.showHints {
		t.Errorf("expected showHints false, got %v", m.showHints)
	}
	if m.primary != "submit" {
		t.Errorf("expected primary action 'submit', got %q", m.primary)
	}
	if m.footer != "footer" {
		t.Errorf("expected footer, got %q", m.footer)
	}
}

func TestAddSection(t *testing.T) {
	m := New("Test").
		AddSection(Text("Hello")).
		AddSection(Spacer()).
		AddSection(Text("World"))

	if len(m.sections) != 3 {
		t.Errorf("expected 3 sections, got %d", len(m.sections))
	}
}

func TestTextSection(t *testing.T) {
	res := Text("Hello World").Render(80, "")

	if !strings.Contains(res.Content, "Hello World") {
		t.Errorf("expected content to contain 'Hello World', got %q", res.Content)
	}
	if len(res.Focusables) != 0 {
		t.Errorf("expected no focusables, got %d", len(res.Focusables))
	}
}

func TestTextSectionWraps(t *testing.T) {
	res := Text("one two three four").Render(9, "")
	if measureHeight(res.Content) < 2 {
		t.Errorf("expected wrapped text, got %q", res.Content)
	}
}

func TestSpacerSection(t *testing.T) {
	res := Spacer().Render(80, "")
	if res.Content != " " {
		t.Errorf("expected spacer content to be a single space, got %q", res.Content)
	}
}

func TestButtonsSection(t *testing.T) {
	s := Buttons(
		Btn(" Confirm ", "confirm"),
		Btn(" Cancel ", "cancel"),
	)
	res := s.Render(80, "confirm")

	if !strings.Contains(res.Content, "Confirm") {
		t.Errorf("expected content to contain 'Confirm', got %q", res.Content)
	}
	if len(res.Focusables) != 2 {
		t.Fatalf("expected 2 focusables, got %d", len(res.Focusables))
	}
	if res.Focusables[0].ID != "confirm" || res.Focusables[1].ID != "cancel" {
		t.Errorf("unexpected focusable IDs: %+v", res.Focusables)
	}
	if res.Focusables[1].OffsetX <= res.Focusables[0].OffsetX {
		t.Errorf("expected second button to the right of the first: %+v", res.Focusables)
	}
}

func TestButtonsDanger(t *testing.T) {
	res := Buttons(Btn(" Delete ", "delete", BtnDanger())).Render(80, "delete")
	if !strings.Contains(res.Content, "Delete") {
		t.Errorf("expected content to contain 'Delete', got %q", res.Content)
	}
}

func TestWhenSection(t *testing.T) {
	show := false
	s := When(func() bool { return show }, Text("Conditional"))

	if res := s.Render(80, ""); res.Content != "" {
		t.Errorf("expected empty when condition is false, got %q", res.Content)
	}

	show = true
	if res := s.Render(80, ""); !strings.Contains(res.Content, "Conditional") {
		t.Errorf("expected 'Conditional' when condition is true, got %q", res.Content)
	}
}

func TestHiddenSectionTakesNoLine(t *testing.T) {
	m := New("", WithHints(false)).
		AddSection(Text("First")).
		AddSection(When(func() bool { return false }, Text("Hidden"))).
		AddSection(Text("Second"))

	out := m.Render(80, 24)
	lines := strings.Split(out, "\n")
	first, second := -1, -1
	for i, l := range lines {
		if strings.Contains(l, "First") {
			first = i
		}
		if strings.Contains(l, "Second") {
			second = i
		}
	}
	if first < 0 || second < 0 {
		t.Fatalf("missing content in %q", out)
	}
	if second-first != 1 {
		t.Errorf("expected adjacent lines, got %d and %d", first, second)
	}
}

func TestHandleKeyEsc(t *testing.T) {
	m := New("Test").AddSection(Buttons(Btn(" OK ", "ok")))
	m.Render(80, 24)

	action, _ := m.HandleKey(tea.KeyMsg{Type: tea.KeyEsc})
	if action != "cancel" {
		t.Errorf("expected 'cancel' on Esc, got %q", action)
	}
}

func TestHandleKeyTab(t *testing.T) {
	m := New("Test").
		AddSection(Buttons(
			Btn(" A ", "a"),
			Btn(" B ", "b"),
			Btn(" C ", "c"),
		))
	m.Render(80, 24)

	if m.FocusedID() != "a" {
		t.Errorf("expected initial focus on 'a', got %q", m.FocusedID())
	}

	for _, want := range []string{"b", "c", "a"} {
		m.HandleKey(tea.KeyMsg{Type: tea.KeyTab})
		if m.FocusedID() != want {
			t.Errorf("expected focus on %q after Tab, got %q", want, m.FocusedID())
		}
	}

	m.HandleKey(tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.FocusedID() != "c" {
		t.Errorf("expected focus on 'c' after Shift+Tab, got %q", m.FocusedID())
	}
}

func TestHandleKeyEnter(t *testing.T) {
	m := New("Test").
		AddSection(Buttons(
			Btn(" OK ", "ok"),
			Btn(" Cancel ", "cancel"),
		))
	m.Render(80, 24)

	action, _ := m.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if action != "ok" {
		t.Errorf("expected 'ok' on Enter, got %q", action)
	}

	m.SetFocus("cancel")
	action, _ = m.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if action != "cancel" {
		t.Errorf("expected 'cancel' on Enter, got %q", action)
	}
}

func TestSetFocusBeforeRender(t *testing.T) {
	m := New("Test").
		AddSection(Buttons(Btn(" Yes ", "yes"), Btn(" No ", "no")))

	m.SetFocus("no")
	m.Render(80, 24)

	if m.FocusedID() != "no" {
		t.Errorf("expected focus on 'no', got %q", m.FocusedID())
	}
	m.HandleKey(tea.KeyMsg{Type: tea.KeyTab})
	if m.FocusedID() != "yes" {
		t.Errorf("expected focus to wrap to 'yes', got %q", m.FocusedID())
	}
}

func TestInputSection(t *testing.T) {
	ti := textinput.New()
	ti.Placeholder = "Enter name"
	s := InputWithLabel("name", "Name:", &ti)

	res := s.Render(60, "name")

	if !strings.Contains(res.Content, "Name:") {
		t.Errorf("expected content to contain 'Name:', got %q", res.Content)
	}
	if len(res.Focusables) != 1 || res.Focusables[0].ID != "name" {
		t.Fatalf("expected focusable 'name', got %+v", res.Focusables)
	}
	if !ti.Focused() {
		t.Error("expected input focused")
	}

	s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hi")}, "name")
	if ti.Value() != "hi" {
		t.Errorf("expected typed value 'hi', got %q", ti.Value())
	}

	s.Render(60, "other")
	if ti.Focused() {
		t.Error("expected input blurred")
	}
	s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, "other")
	if ti.Value() != "hi" {
		t.Errorf("unfocused input changed to %q", ti.Value())
	}
}

func TestEnterOnInputTriggersPrimaryAction(t *testing.T) {
	ti := textinput.New()
	m := New("Edit", WithPrimaryAction("save")).
		AddSection(InputWithLabel("title", "Title", &ti))
	m.Render(80, 24)

	action, _ := m.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if action != "save" {
		t.Errorf("expected 'save', got %q", action)
	}
}

func TestTextareaKeepsEnter(t *testing.T) {
	ta := textarea.New()
	m := New("Edit", WithPrimaryAction("save")).
		AddSection(TextareaWithLabel("content", "Content", &ta))
	m.Render(80, 24)

	m.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	action, _ := m.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if action != "" {
		t.Errorf("expected no action on Enter in textarea, got %q", action)
	}
	m.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b")})
	if ta.Value() != "a\nb" {
		t.Errorf("expected newline inserted, got %q", ta.Value())
	}

	action, _ = m.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlS})
	if action != "save" {
		t.Errorf("expected 'save' on ctrl+s, got %q", action)
	}
}

func TestScrollKeepsFocusVisible(t *testing.T) {
	m := New("Test", WithHints(false))
	for range 30 {
		m.AddSection(Text("filler"))
	}
	m.AddSection(Buttons(Btn(" Top ", "top"), Btn(" Bottom ", "bottom")))

	out := m.Render(80, 20)
	if m.offset == 0 {
		t.Error("expected modal to scroll to the focused button")
	}
	if !strings.Contains(out, "Top") {
		t.Errorf("focused button not visible: %q", out)
	}

	m.HandleKey(tea.KeyMsg{Type: tea.KeyTab})
	if out := m.Render(80, 20); !strings.Contains(out, "Bottom") {
		t.Errorf("focused button not visible: %q", out)
	}
}

func TestMeasureHeight(t *testing.T) {
	cases := []struct {
		content  string
		expected int
	}{
		{"", 0},
		{"single line", 1},
		{"line 1\nline 2", 2},
		{"line 1\nline 2\nline 3", 3},
		{"with trailing\n", 1},
		{"\n", 0},
	}

	for _, tc := range cases {
		got := measureHeight(tc.content)
		if got != tc.expected {
			t.Errorf("measureHeight(%q) = %d, want %d", tc.content, got, tc.expected)
		}
	}
}

func TestSliceLines(t *testing.T) {
	content := "line 0\nline 1\nline 2\nline 3\nline 4"

	cases := []struct {
		offset, height int
		want           string
	}{
		{0, 2, "line 0\nline 1"},
		{1, 2, "line 1\nline 2"},
		{3, 3, "line 3\nline 4"},
		{0, 10, content},
		{9, 2, "line 4"},
		{-1, 1, "line 0"},
	}

	for _, tc := range cases {
		if got := sliceLines(content, tc.offset, tc.height); got != tc.want {
			t.Errorf("sliceLines(offset=%d, height=%d) = %q, want %q", tc.offset, tc.height, got, tc.want)
		}
	}
}

// editorModal mirrors the add/edit dialog: title input, content textarea
// and buttons.
func editorModal(ti *textinput.Model, ta *textarea.Model) *Modal {
	return New("Edit", WithPrimaryAction("save")).
		AddSection(InputWithLabel("title", "Title", ti)).
		AddSection(Spacer()).
		AddSection(TextareaWithLabel("content", "Content", ta)).
		AddSection(Buttons(Btn(" Save ", "save"), Btn(" Cancel ", "cancel")))
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestFirstRenderFocusesFirstInput(t *testing.T) {
	ti, ta := textinput.New(), textarea.New()
	m := editorModal(&ti, &ta)

	m.Render(80, 30)
	if m.FocusedID() != "title" {
		t.Fatalf("focus = %q, want title", m.FocusedID())
	}
	if !ti.Focused() {
		t.Error("title input should be focused after the first render")
	}
	if ta.Focused() {
		t.Error("content should be blurred")
	}
}

func TestTypingWithRenderAfterEachKey(t *testing.T) {
	ti, ta := textinput.New(), textarea.New()
	m := editorModal(&ti, &ta)

	// The runtime renders after every message.
	send := func(k tea.KeyMsg) string {
		action, _ := m.HandleKey(k)
		m.Render(80, 30)
		return action
	}

	m.Render(80, 30)
	send(runes("H"))
	send(runes("i"))
	send(tea.KeyMsg{Type: tea.KeyTab})
	send(runes("x"))
	send(tea.KeyMsg{Type: tea.KeyEnter})
	send(runes("y"))

	if ti.Value() != "Hi" {
		t.Errorf("title = %q, want Hi", ti.Value())
	}
	if ta.Value() != "x\ny" {
		t.Errorf("content = %q, want x\\ny", ta.Value())
	}
	if action := send(tea.KeyMsg{Type: tea.KeyCtrlS}); action != "save" {
		t.Errorf("ctrl+s = %q, want save", action)
	}
}

func TestKeyReachesInputFocusedSinceLastRender(t *testing.T) {
	ti, ta := textinput.New(), textarea.New()
	m := editorModal(&ti, &ta)
	m.Render(80, 30)

	m.HandleKey(tea.KeyMsg{Type: tea.KeyTab})
	m.HandleKey(runes("c"))
	if ta.Value() != "c" {
		t.Errorf("content = %q, want c", ta.Value())
	}
	if ti.Value() != "" {
		t.Errorf("title = %q, want empty", ti.Value())
	}

	m.Render(80, 30)
	if ti.Focused() || !ta.Focused() {
		t.Error("render should leave only the content focused")
	}
}

func TestSetFocusToUnknownIDFallsBack(t *testing.T) {
	m := New("Test").AddSection(Buttons(Btn(" A ", "a"), Btn(" B ", "b")))
	m.SetFocus("missing")
	m.Render(80, 24)
	if m.FocusedID() != "a" {
		t.Errorf("focus = %q, want a", m.FocusedID())
	}
}
