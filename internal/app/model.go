package app

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/catatan/internal/config"
	"github.com/marcus/catatan/internal/keymap"
	"github.com/marcus/catatan/internal/lang"
	"github.com/marcus/catatan/internal/note"
	"github.com/marcus/catatan/internal/notelist"
	"github.com/marcus/catatan/internal/state"
	"github.com/marcus/catatan/internal/styles"
	"github.com/marcus/catatan/internal/theme"
	"github.com/marcus/catatan/internal/ui"
)

// Store is the part of the note store the screen uses.
type Store interface {
	Insert(ctx context.Context, title, content string) (int64, error)
	Update(ctx context.Context, n note.Note) (note.Note, error)
	Delete(ctx context.Context, id int64) error
	ObserveAll(ctx context.Context) <-chan []note.Note
}

// ModalKind identifies an open modal. Lower values take priority for
// rendering and input routing.
type ModalKind int

const (
	ModalNone    ModalKind = iota // No modal open
	ModalEditor                   // Add/edit note
	ModalConfirm                  // Delete confirmation
	ModalHelp                     // Key help
)

// activeModal returns the highest-priority open modal.
func (m *Model) activeModal() ModalKind {
	switch {
	case m.editor != nil:
		return ModalEditor
	case m.confirm != nil:
		return ModalConfirm
	case m.showHelp:
		return ModalHelp
	default:
		return ModalNone
	}
}

// Options configures New.
type Options struct {
	Store  Store
	Config *config.Config
	Logger *slog.Logger

	// Clipboard writes text to the system clipboard. Defaults to atotto/clipboard.
	Clipboard func(string) error
	// SaveTheme persists the theme picked with the theme key. Nil skips saving.
	SaveTheme func(name string) error
	// Now overrides the wall clock, for tests.
	Now func() time.Time
}

// Model is the root Bubble Tea model: the note list plus its modals.
type Model struct {
	store  Store
	cfg    *config.Config
	logger *slog.Logger
	text   *lang.Table
	keys   keymap.KeyMap

	clipboard func(string) error
	saveTheme func(string) error
	now       func() time.Time

	// Live query
	ctx     context.Context
	cancel  context.CancelFunc
	updates <-chan []note.Note
	loaded  bool

	// Selection to apply once the note shows up in a snapshot
	pendingSelect int64

	// UI state
	width, height int
	ready         bool
	list          notelist.Model
	help          help.Model
	showHelp      bool
	showPreview   bool
	preview       *previewCache

	editor  *editorState
	confirm *confirmState
	seq     int // identifies the dialog a write result belongs to

	toast ui.Toast

	quitting bool
}

// New creates the screen and subscribes to the store's live query. The
// subscription ends when the user quits.
func New(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.WriteAll
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	text := lang.For(cfg.UI.Locale)
	bindings, unknown := keymap.ApplyOverrides(keymap.DefaultBindings(), cfg.Keymap.Overrides)
	for _, k := range unknown {
		logger.Warn("keymap: override names unknown command", "key", k, "command", cfg.Keymap.Overrides[k])
	}
	keys := keymap.FromBindings(bindings, text)

	theme.ApplyResolved(theme.ResolveTheme(cfg))

	h := help.New()
	h.Styles.ShortKey = styles.Muted.Bold(true)
	h.Styles.ShortDesc = styles.Subtle
	h.Styles.FullKey = styles.Muted.Bold(true)
	h.Styles.FullDesc = styles.Subtle

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		store:     opts.Store,
		cfg:       cfg,
		logger:    logger,
		text:      text,
		keys:      keys,
		clipboard: opts.Clipboard,
		saveTheme: opts.SaveTheme,
		now:       opts.Now,
		ctx:       ctx,
		cancel:    cancel,
		updates:   opts.Store.ObserveAll(ctx),
		list: notelist.New(notelist.Options{
			Text:         text,
			Keys:         keys,
			DateFormat:   cfg.UI.DateFormat,
			RelativeTime: cfg.UI.RelativeTime,
			Now:          opts.Now,
		}),
		help:          h,
		showPreview:   state.GetShowPreview(cfg.UI.ShowPreview),
		preview:       &previewCache{},
		pendingSelect: state.GetLastNoteID(),
	}
}

// Init starts waiting for the first snapshot.
func (m Model) Init() tea.Cmd {
	return waitForSnapshot(m.updates)
}

// Notes returns the snapshot currently on screen.
func (m Model) Notes() []note.Note {
	return m.list.Notes()
}
