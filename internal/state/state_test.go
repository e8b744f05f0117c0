package state

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

// useTempState points the package at a fresh state file and restores the
// previous globals when the test ends.
func useTempState(t *testing.T) string {
	t.Helper()
	originalPath := path
	originalCurrent := current
	t.Cleanup(func() {
		path = originalPath
		current = originalCurrent
	})

	dir := t.TempDir()
	path = filepath.Join(dir, "state.json")
	current = nil
	return path
}

func TestInit(t *testing.T) {
	useTempState(t)

	if err := InitWithDir(filepath.Join(t.TempDir(), ".config", "catatan")); err != nil {
		t.Fatalf("InitWithDir() failed: %v", err)
	}
	if current == nil {
		t.Fatal("current state should be initialized")
	}
	if current.LastNoteID != 0 {
		t.Errorf("default LastNoteID = %d, want 0", current.LastNoteID)
	}
}

func TestLoad_NonExistent(t *testing.T) {
	useTempState(t)
	path = filepath.Join(t.TempDir(), "nonexistent", "state.json")

	if err := Load(); err != nil {
		t.Fatalf("Load() for non-existent file should return nil, got %v", err)
	}
	if current == nil {
		t.Error("current should be initialized with defaults")
	}
}

func TestLoad_ExistingFile(t *testing.T) {
	p := useTempState(t)

	if err := os.WriteFile(p, []byte(`{"lastNoteID": 42, "showPreview": true}`), 0644); err != nil {
		t.Fatal(err)
	}
	if err := Load(); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if got := GetLastNoteID(); got != 42 {
		t.Errorf("GetLastNoteID() = %d, want 42", got)
	}
	if !GetShowPreview(false) {
		t.Error("GetShowPreview() = false, want true")
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	p := useTempState(t)

	if err := os.WriteFile(p, []byte(`{invalid`), 0644); err != nil {
		t.Fatal(err)
	}
	if err := Load(); err == nil {
		t.Error("Load() should fail on invalid JSON")
	}
	if GetLastNoteID() != 0 {
		t.Error("state should fall back to defaults after a parse error")
	}
}

func TestSave_CreateDirectories(t *testing.T) {
	useTempState(t)
	path = filepath.Join(t.TempDir(), "a", "b", "state.json")
	current = &State{LastNoteID: 7}

	if err := Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("state file not created: %v", err)
	}
}

func TestSave_NilCurrent(t *testing.T) {
	p := useTempState(t)

	if err := Save(); err != nil {
		t.Errorf("Save() with nil current should return nil, got %v", err)
	}
	if _, err := os.Stat(p); !os.IsNotExist(err) {
		t.Error("Save() with nil current should not write a file")
	}
}

func TestSetLastNoteID(t *testing.T) {
	p := useTempState(t)

	if err := SetLastNoteID(3); err != nil {
		t.Fatalf("SetLastNoteID() failed: %v", err)
	}

	data, err := os.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	var saved State
	if err := json.Unmarshal(data, &saved); err != nil {
		t.Fatal(err)
	}
	if saved.LastNoteID != 3 {
		t.Errorf("saved LastNoteID = %d, want 3", saved.LastNoteID)
	}
}

func TestGetShowPreview_Default(t *testing.T) {
	useTempState(t)

	if !GetShowPreview(true) {
		t.Error("GetShowPreview(true) with no state should return true")
	}
	if GetShowPreview(false) {
		t.Error("GetShowPreview(false) with no state should return false")
	}
}

func TestSetShowPreview_OverridesDefault(t *testing.T) {
	useTempState(t)

	if err := SetShowPreview(false); err != nil {
		t.Fatalf("SetShowPreview() failed: %v", err)
	}
	if GetShowPreview(true) {
		t.Error("saved false should override default true")
	}
}

func TestRoundTrip(t *testing.T) {
	p := useTempState(t)

	if err := SetLastNoteID(11); err != nil {
		t.Fatal(err)
	}
	if err := SetShowPreview(true); err != nil {
		t.Fatal(err)
	}

	current = nil
	path = p
	if err := Load(); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if GetLastNoteID() != 11 || !GetShowPreview(false) {
		t.Errorf("round trip lost state: %+v", current)
	}
}

func TestConcurrentAccess(t *testing.T) {
	useTempState(t)

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(2)
		go func(id int64) {
			defer wg.Done()
			_ = SetLastNoteID(id)
		}(int64(i))
		go func() {
			defer wg.Done()
			_ = GetLastNoteID()
			_ = GetShowPreview(false)
		}()
	}
	wg.Wait()
}
