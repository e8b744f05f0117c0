package keymap

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/marcus/catatan/internal/lang"
)

// KeyMap holds the note list bindings. It implements help.KeyMap.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Open     key.Binding
	Add      key.Binding
	Delete   key.Binding
	Copy     key.Binding
	Preview  key.Binding
	Theme    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// New builds the key map from DefaultBindings with help text from t.
func New(t *lang.Table) KeyMap {
	return FromBindings(DefaultBindings(), t)
}

// FromBindings builds the key map from an explicit binding table.
func FromBindings(bindings []Binding, t *lang.Table) KeyMap {
	bind := func(command, desc string) key.Binding {
		keys := KeysFor(bindings, command)
		return key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(helpKeys(keys), desc),
		)
	}
	return KeyMap{
		Up:       bind(CmdCursorUp, t.HelpUp),
		Down:     bind(CmdCursorDown, t.HelpDown),
		Top:      bind(CmdCursorTop, t.HelpTop),
		Bottom:   bind(CmdCursorBottom, t.HelpBottom),
		PageUp:   bind(CmdPageUp, t.HelpPageUp),
		PageDown: bind(CmdPageDown, t.HelpPageDn),
		Open:     bind(CmdOpen, t.HelpOpen),
		Add:      bind(CmdAdd, t.HelpAdd),
		Delete:   bind(CmdDelete, t.HelpDelete),
		Copy:     bind(CmdCopy, t.HelpCopy),
		Preview:  bind(CmdTogglePreview, t.HelpPreview),
		Theme:    bind(CmdCycleTheme, t.HelpTheme),
		Help:     bind(CmdToggleHelp, t.HelpHelp),
		Quit:     bind(CmdQuit, t.HelpQuit),
	}
}

// ShortHelp returns the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Open, k.Delete, k.Help, k.Quit}
}

// FullHelp returns all bindings, grouped in columns.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom, k.PageUp, k.PageDown},
		{k.Add, k.Open, k.Delete, k.Copy, k.Preview, k.Theme},
		{k.Help, k.Quit},
	}
}

var keyGlyphs = map[string]string{
	"up":     "↑",
	"down":   "↓",
	"pgup":   "pgup",
	"pgdown": "pgdn",
	"enter":  "enter",
	"delete": "del",
}

// helpKeys renders the first two keys of a binding for the help view.
func helpKeys(keys []string) string {
	if len(keys) > 2 {
		keys = keys[:2]
	}
	out := make([]string, len(keys))
	for i, k := range keys {
		if g, ok := keyGlyphs[k]; ok {
			k = g
		}
		out[i] = k
	}
	return strings.Join(out, "/")
}
