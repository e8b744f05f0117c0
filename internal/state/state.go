// Package state persists small UI preferences between runs in state.json.
package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// State holds persistent user preferences.
type State struct {
	LastNoteID  int64 `json:"lastNoteID,omitempty"`  // note under the cursor at exit
	ShowPreview *bool `json:"showPreview,omitempty"` // nil = use the config default
}

var (
	current *State
	mu      sync.RWMutex
	path    string
)

// InitWithDir loads state.json from dir.
func InitWithDir(dir string) error {
	mu.Lock()
	path = filepath.Join(dir, "state.json")
	mu.Unlock()
	return Load()
}

// Load reads state from disk.
func Load() error {
	mu.Lock()
	defer mu.Unlock()

	current = &State{}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil // no state file yet, use defaults
	}
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, current); err != nil {
		current = &State{}
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// Save writes state to disk.
func Save() error {
	mu.RLock()
	defer mu.RUnlock()

	if current == nil || path == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(current, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// GetLastNoteID returns the note selected when the UI last exited, or 0.
func GetLastNoteID() int64 {
	mu.RLock()
	defer mu.RUnlock()
	if current == nil {
		return 0
	}
	return current.LastNoteID
}

// SetLastNoteID saves the selected note id.
func SetLastNoteID(id int64) error {
	mu.Lock()
	if current == nil {
		current = &State{}
	}
	current.LastNoteID = id
	mu.Unlock()
	return Save()
}

// GetShowPreview returns the saved preview toggle, or def if never saved.
func GetShowPreview(def bool) bool {
	mu.RLock()
	defer mu.RUnlock()
	if current == nil || current.ShowPreview == nil {
		return def
	}
	return *current.ShowPreview
}

// SetShowPreview saves the preview toggle.
func SetShowPreview(show bool) error {
	mu.Lock()
	if current == nil {
		current = &State{}
	}
	current.ShowPreview = &show
	mu.Unlock()
	return Save()
}
