package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// saveConfig is the JSON-marshaling intermediary.
type saveConfig struct {
	Store  StoreConfig  `json:"store"`
	Keymap KeymapConfig `json:"keymap"`
	UI     UIConfig     `json:"ui"`
}

func toSaveConfig(cfg *Config) saveConfig {
	keymap := cfg.Keymap
	if keymap.Overrides == nil {
		keymap.Overrides = map[string]string{}
	}
	return saveConfig{
		Store:  cfg.Store,
		Keymap: keymap,
		UI:     cfg.UI,
	}
}

// Save writes the config to ConfigPath.
func Save(cfg *Config) error {
	return SaveTo(ConfigPath(), cfg)
}

// SaveTo writes the config to path. Top-level keys this package does not
// manage are kept as they are in the existing file.
func SaveTo(path string, cfg *Config) error {
	if path == "" {
		return fmt.Errorf("save config: no config path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	merged := map[string]json.RawMessage{}
	if existing, err := os.ReadFile(path); err == nil {
		// An unparsable file is overwritten
		_ = json.Unmarshal(existing, &merged)
	}

	managed, err := json.Marshal(toSaveConfig(cfg))
	if err != nil {
		return err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(managed, &fields); err != nil {
		return err
	}
	for k, v := range fields {
		merged[k] = v
	}

	data, err := json.MarshalIndent(merged, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

// SaveTheme updates only the theme name in config and saves.
func SaveTheme(themeName string) error {
	return SaveThemeTo(ConfigPath(), themeName)
}

// SaveThemeTo updates only the theme name in the config file at path.
func SaveThemeTo(path, themeName string) error {
	cfg, err := LoadFrom(path)
	if err != nil {
		return err
	}
	cfg.UI.Theme = themeName
	return SaveTo(path, cfg)
}
