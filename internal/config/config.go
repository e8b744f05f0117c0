package config

import (
	"log/slog"

	"github.com/marcus/catatan/internal/lang"
	"github.com/marcus/catatan/internal/notelist"
	"github.com/marcus/catatan/internal/store"
	"github.com/marcus/catatan/internal/styles"
)

// Config is the root configuration structure.
type Config struct {
	Store  StoreConfig  `json:"store"`
	Keymap KeymapConfig `json:"keymap"`
	UI     UIConfig     `json:"ui"`
}

// StoreConfig configures the note database.
type StoreConfig struct {
	Path          string `json:"path"`          // database file (supports ~ expansion)
	Driver        string `json:"driver"`        // "sqlite" (pure Go) or "sqlite3" (cgo)
	WatchExternal bool   `json:"watchExternal"` // refresh when another process writes the file
}

// KeymapConfig holds key binding overrides: key -> command.
type KeymapConfig struct {
	Overrides map[string]string `json:"overrides"`
}

// UIConfig configures UI appearance.
type UIConfig struct {
	Locale       string `json:"locale"`
	Theme        string `json:"theme"`
	Accent       string `json:"accent,omitempty"` // #RRGGBB layered over the theme
	DateFormat   string `json:"dateFormat"`       // Go time layout
	RelativeTime bool   `json:"relativeTime"`
	ShowPreview  bool   `json:"showPreview"`
}

// DefaultDBPath is the database location before ~ expansion.
const DefaultDBPath = "~/.local/share/catatan/notes.db"

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Store: StoreConfig{
			Path:          DefaultDBPath,
			Driver:        store.DriverModernc,
			WatchExternal: true,
		},
		Keymap: KeymapConfig{
			Overrides: make(map[string]string),
		},
		UI: UIConfig{
			Locale:       "en",
			Theme:        "default",
			DateFormat:   notelist.DefaultDateFormat,
			RelativeTime: true,
		},
	}
}

// Validate replaces unusable values with defaults.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case store.DriverModernc, store.DriverMattn:
	default:
		slog.Warn("config: unknown store driver, using default", "driver", c.Store.Driver)
		c.Store.Driver = store.DriverModernc
	}
	if c.Store.Path == "" {
		c.Store.Path = ExpandPath(DefaultDBPath)
	}
	if lang.For(c.UI.Locale).Locale != baseLocale(c.UI.Locale) {
		slog.Warn("config: unsupported locale, using English", "locale", c.UI.Locale)
		c.UI.Locale = "en"
	}
	if !styles.IsValidTheme(c.UI.Theme) {
		slog.Warn("config: unknown theme, using default", "theme", c.UI.Theme)
		c.UI.Theme = "default"
	}
	if c.UI.DateFormat == "" {
		c.UI.DateFormat = notelist.DefaultDateFormat
	}
	return nil
}
