// Package lang holds the user-visible strings. Nothing else in the UI
// hardcodes text shown to the user.
package lang

import "strings"

// Table is one language's strings.
type Table struct {
	Locale string

	AppTitle     string
	EmptyTitle   string
	EmptyHint    string
	Untitled     string
	NoContent    string
	AddNote      string
	EditNote     string
	TitleLabel   string
	ContentLabel string
	UpdatedLabel string
	Save         string
	Cancel       string
	Saving       string

	DeleteNote    string
	ConfirmDelete string
	Yes           string
	No            string

	ErrEmptyNote string
	SaveFailed   string
	DeleteFailed string
	Copied       string
	CopyFailed   string
	NoteCount    string // fmt verb %d
	EditorHint   string
	PreviewEmpty string
	RelAgo       string // go-humanize relative time suffixes
	RelLater     string

	// Key help
	HelpTitle   string
	HelpUp      string
	HelpDown    string
	HelpTop     string
	HelpBottom  string
	HelpPageUp  string
	HelpPageDn  string
	HelpOpen    string
	HelpAdd     string
	HelpDelete  string
	HelpCopy    string
	HelpPreview string
	HelpTheme   string
	HelpHelp    string
	HelpQuit    string
}

var english = Table{
	Locale:        "en",
	AppTitle:      "Notes",
	EmptyTitle:    "No notes yet",
	EmptyHint:     "Press a to write your first note",
	Untitled:      "Untitled",
	NoContent:     "No content",
	AddNote:       "Add Note",
	EditNote:      "Edit Note",
	TitleLabel:    "Title",
	ContentLabel:  "Content",
	UpdatedLabel:  "Updated",
	Save:          " Save ",
	Cancel:        " Cancel ",
	Saving:        "Saving...",
	DeleteNote:    "Delete Note",
	ConfirmDelete: "Are you sure you want to delete this note?",
	Yes:           " Yes ",
	No:            " No ",
	ErrEmptyNote:  "Title or content is required",
	SaveFailed:    "Could not save note",
	DeleteFailed:  "Could not delete note",
	Copied:        "Copied to clipboard",
	CopyFailed:    "Copy failed",
	NoteCount:     "%d notes",
	EditorHint:    "Tab to switch \u00b7 ctrl+s to save \u00b7 Esc to cancel",
	PreviewEmpty:  "Nothing to preview",
	RelAgo:        "ago",
	RelLater:      "from now",
	HelpTitle:     "Keyboard shortcuts",
	HelpUp:        "up",
	HelpDown:      "down",
	HelpTop:       "top",
	HelpBottom:    "bottom",
	HelpPageUp:    "page up",
	HelpPageDn:    "page down",
	HelpOpen:      "edit",
	HelpAdd:       "add",
	HelpDelete:    "delete",
	HelpCopy:      "copy",
	HelpPreview:   "preview",
	HelpTheme:     "theme",
	HelpHelp:      "help",
	HelpQuit:      "quit",
}

var indonesian = Table{
	Locale:        "id",
	AppTitle:      "Catatanku",
	EmptyTitle:    "Belum ada catatan",
	EmptyHint:     "Tekan a untuk menulis catatan pertama",
	Untitled:      "Tanpa Judul",
	NoContent:     "Tidak ada konten",
	AddNote:       "Tambah Catatan",
	EditNote:      "Edit Catatan",
	TitleLabel:    "Judul",
	ContentLabel:  "Konten",
	UpdatedLabel:  "Diperbarui",
	Save:          " Simpan ",
	Cancel:        " Batal ",
	Saving:        "Menyimpan...",
	DeleteNote:    "Hapus Catatan",
	ConfirmDelete: "Apakah Anda yakin ingin menghapus catatan ini?",
	Yes:           " Ya ",
	No:            " Tidak ",
	ErrEmptyNote:  "Judul atau konten harus diisi",
	SaveFailed:    "Gagal menyimpan catatan",
	DeleteFailed:  "Gagal menghapus catatan",
	Copied:        "Disalin ke papan klip",
	CopyFailed:    "Gagal menyalin",
	NoteCount:     "%d catatan",
	EditorHint:    "Tab untuk pindah \u00b7 ctrl+s untuk simpan \u00b7 Esc untuk batal",
	PreviewEmpty:  "Tidak ada yang ditampilkan",
	RelAgo:        "lalu",
	RelLater:      "lagi",
	HelpTitle:     "Pintasan keyboard",
	HelpUp:        "atas",
	HelpDown:      "bawah",
	HelpTop:       "awal",
	HelpBottom:    "akhir",
	HelpPageUp:    "halaman atas",
	HelpPageDn:    "halaman bawah",
	HelpOpen:      "ubah",
	HelpAdd:       "tambah",
	HelpDelete:    "hapus",
	HelpCopy:      "salin",
	HelpPreview:   "pratinjau",
	HelpTheme:     "tema",
	HelpHelp:      "bantuan",
	HelpQuit:      "keluar",
}

var tables = map[string]*Table{
	"en": &english,
	"id": &indonesian,
}

// For returns the table for locale ("id", "id-ID", "en_US"...), falling back
// to English.
func For(locale string) *Table {
	l := strings.ToLower(strings.TrimSpace(locale))
	if t, ok := tables[l]; ok {
		return t
	}
	if i := strings.IndexAny(l, "-_"); i > 0 {
		if t, ok := tables[l[:i]]; ok {
			return t
		}
	}
	return &english
}

// Locales returns the supported locale codes.
func Locales() []string {
	return []string{"en", "id"}
}
