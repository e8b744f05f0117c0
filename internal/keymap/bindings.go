package keymap

// Binding maps a key to a command within a context.
type Binding struct {
	Key     string
	Command string
	Context string
}

// Contexts
const (
	ContextGlobal = "global"
	ContextList   = "list"
)

// Commands
const (
	CmdQuit          = "quit"
	CmdToggleHelp    = "toggle-help"
	CmdCursorUp      = "cursor-up"
	CmdCursorDown    = "cursor-down"
	CmdCursorTop     = "cursor-top"
	CmdCursorBottom  = "cursor-bottom"
	CmdPageUp        = "page-up"
	CmdPageDown      = "page-down"
	CmdOpen          = "open-note"
	CmdAdd           = "add-note"
	CmdDelete        = "delete-note"
	CmdCopy          = "yank-content"
	CmdTogglePreview = "toggle-preview"
	CmdCycleTheme    = "cycle-theme"
)

// DefaultBindings returns the default key bindings.
func DefaultBindings() []Binding {
	return []Binding{
		// Global bindings
		{Key: "q", Command: CmdQuit, Context: ContextGlobal},
		{Key: "ctrl+c", Command: CmdQuit, Context: ContextGlobal},
		{Key: "?", Command: CmdToggleHelp, Context: ContextGlobal},

		// Note list
		{Key: "k", Command: CmdCursorUp, Context: ContextList},
		{Key: "up", Command: CmdCursorUp, Context: ContextList},
		{Key: "j", Command: CmdCursorDown, Context: ContextList},
		{Key: "down", Command: CmdCursorDown, Context: ContextList},
		{Key: "g", Command: CmdCursorTop, Context: ContextList},
		{Key: "home", Command: CmdCursorTop, Context: ContextList},
		{Key: "G", Command: CmdCursorBottom, Context: ContextList},
		{Key: "end", Command: CmdCursorBottom, Context: ContextList},
		{Key: "pgup", Command: CmdPageUp, Context: ContextList},
		{Key: "ctrl+u", Command: CmdPageUp, Context: ContextList},
		{Key: "pgdown", Command: CmdPageDown, Context: ContextList},
		{Key: "ctrl+d", Command: CmdPageDown, Context: ContextList},
		{Key: "enter", Command: CmdOpen, Context: ContextList},
		{Key: "a", Command: CmdAdd, Context: ContextList},
		{Key: "n", Command: CmdAdd, Context: ContextList},
		{Key: "d", Command: CmdDelete, Context: ContextList},
		{Key: "delete", Command: CmdDelete, Context: ContextList},
		{Key: "y", Command: CmdCopy, Context: ContextList},
		{Key: "p", Command: CmdTogglePreview, Context: ContextList},
		{Key: "t", Command: CmdCycleTheme, Context: ContextList},
	}
}

// ApplyOverrides returns bindings with each key -> command override added
// in the list context. An overridden key loses its default binding.
// Overrides naming an unknown command are returned in unknown.
func ApplyOverrides(bindings []Binding, overrides map[string]string) (out []Binding, unknown []string) {
	known := make(map[string]bool)
	for _, b := range bindings {
		known[b.Command] = true
	}

	for _, b := range bindings {
		if _, ok := overrides[b.Key]; ok && known[overrides[b.Key]] {
			continue
		}
		out = append(out, b)
	}
	for k, cmd := range overrides {
		if !known[cmd] {
			unknown = append(unknown, k)
			continue
		}
		out = append(out, Binding{Key: k, Command: cmd, Context: ContextList})
	}
	return out, unknown
}

// KeysFor returns the keys bound to command, in declaration order.
func KeysFor(bindings []Binding, command string) []string {
	var keys []string
	for _, b := range bindings {
		if b.Command == command {
			keys = append(keys, b.Key)
		}
	}
	return keys
}
