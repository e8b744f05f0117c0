package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	configDir  = ".config/catatan"
	configFile = "config.json"
)

// rawConfig is the JSON-unmarshaling intermediary. Pointer fields tell an
// explicit false apart from an absent key.
type rawConfig struct {
	Store  rawStoreConfig `json:"store"`
	Keymap KeymapConfig   `json:"keymap"`
	UI     rawUIConfig    `json:"ui"`
}

type rawStoreConfig struct {
	Path          string `json:"path"`
	Driver        string `json:"driver"`
	WatchExternal *bool  `json:"watchExternal"`
}

type rawUIConfig struct {
	Locale       string `json:"locale"`
	Theme        string `json:"theme"`
	Accent       string `json:"accent"`
	DateFormat   string `json:"dateFormat"`
	RelativeTime *bool  `json:"relativeTime"`
	ShowPreview  *bool  `json:"showPreview"`
}

// Load loads configuration from the default location.
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom loads configuration from a specific path.
// If path is empty, uses ~/.config/catatan/config.json
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = ConfigPath()
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Defaults if no config file
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			var raw rawConfig
			if err := json.Unmarshal(data, &raw); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
			mergeConfig(cfg, &raw)
		}
	}

	cfg.Store.Path = ExpandPath(cfg.Store.Path)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeConfig merges raw config values into the config.
func mergeConfig(cfg *Config, raw *rawConfig) {
	// Store
	if raw.Store.Path != "" {
		cfg.Store.Path = raw.Store.Path
	}
	if raw.Store.Driver != "" {
		cfg.Store.Driver = raw.Store.Driver
	}
	if raw.Store.WatchExternal != nil {
		cfg.Store.WatchExternal = *raw.Store.WatchExternal
	}

	// Keymap
	for k, v := range raw.Keymap.Overrides {
		cfg.Keymap.Overrides[k] = v
	}

	// UI
	if raw.UI.Locale != "" {
		cfg.UI.Locale = raw.UI.Locale
	}
	if raw.UI.Theme != "" {
		cfg.UI.Theme = raw.UI.Theme
	}
	if raw.UI.Accent != "" {
		cfg.UI.Accent = raw.UI.Accent
	}
	if raw.UI.DateFormat != "" {
		cfg.UI.DateFormat = raw.UI.DateFormat
	}
	if raw.UI.RelativeTime != nil {
		cfg.UI.RelativeTime = *raw.UI.RelativeTime
	}
	if raw.UI.ShowPreview != nil {
		cfg.UI.ShowPreview = *raw.UI.ShowPreview
	}
}

// ExpandPath expands ~ to home directory.
func ExpandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
	}
	return path
}

// testConfigPath overrides ConfigPath in tests.
var testConfigPath string

// SetTestConfigPath points ConfigPath (and so Load and Save) at path.
func SetTestConfigPath(path string) { testConfigPath = path }

// ResetTestConfigPath undoes SetTestConfigPath.
func ResetTestConfigPath() { testConfigPath = "" }

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	if testConfigPath != "" {
		return testConfigPath
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configDir, configFile)
}

// Dir returns the directory holding the config file, state and logs.
func Dir() string {
	p := ConfigPath()
	if p == "" {
		return ""
	}
	return filepath.Dir(p)
}

// baseLocale returns the language part of a locale tag, lowercased.
func baseLocale(locale string) string {
	l := strings.ToLower(strings.TrimSpace(locale))
	if i := strings.IndexAny(l, "-_"); i > 0 {
		l = l[:i]
	}
	return l
}
