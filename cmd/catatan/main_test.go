package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/marcus/catatan/internal/lang"
	"github.com/marcus/catatan/internal/note"
	"github.com/marcus/catatan/internal/store"
)

type testEnv struct {
	configPath string
	dbPath     string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()
	return &testEnv{
		configPath: filepath.Join(dir, "config.json"),
		dbPath:     filepath.Join(dir, "notes.db"),
	}
}

// run executes the CLI with args and returns its stdout.
func (e *testEnv) run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--config", e.configPath, "--db", e.dbPath}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func (e *testEnv) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := e.run(t, "", args...)
	if err != nil {
		t.Fatalf("catatan %s: %v", strings.Join(args, " "), err)
	}
	return out
}

func (e *testEnv) list(t *testing.T) []note.Note {
	t.Helper()
	out := e.mustRun(t, "list", "--json")
	var notes []note.Note
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if line == "" {
			continue
		}
		var n note.Note
		if err := json.Unmarshal([]byte(line), &n); err != nil {
			t.Fatalf("bad JSON line %q: %v", line, err)
		}
		notes = append(notes, n)
	}
	return notes
}

func TestAddAndList(t *testing.T) {
	env := newTestEnv(t)
	id1 := strings.TrimSpace(env.mustRun(t, "add", "--title", "Groceries", "--content", "eggs"))
	id2 := strings.TrimSpace(env.mustRun(t, "add", "-t", "Work", "-c", "report"))
	if id1 == "" || id1 == id2 {
		t.Fatalf("ids %q and %q should be distinct", id1, id2)
	}

	notes := env.list(t)
	if len(notes) != 2 {
		t.Fatalf("got %d notes, want 2", len(notes))
	}
	if notes[0].Title != "Work" || notes[1].Title != "Groceries" {
		t.Errorf("order = %q, %q; want newest first", notes[0].Title, notes[1].Title)
	}
}

func TestListWithoutTerminalPrintsJSON(t *testing.T) {
	env := newTestEnv(t)
	env.mustRun(t, "add", "--title", "Only")

	out := env.mustRun(t, "list")
	var n note.Note
	if err := json.Unmarshal([]byte(strings.TrimSpace(out)), &n); err != nil {
		t.Fatalf("expected JSON output for non-terminal stdout, got %q", out)
	}
	if n.Title != "Only" {
		t.Errorf("title = %q", n.Title)
	}
}

func TestAddRejectsEmptyNote(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.run(t, "", "add", "--title", "  ", "--content", "\n")
	if !errors.Is(err, note.ErrEmpty) {
		t.Fatalf("err = %v, want ErrEmpty", err)
	}
	if _, statErr := os.Stat(env.dbPath); statErr == nil {
		if n := env.list(t); len(n) != 0 {
			t.Errorf("empty add stored %d notes", len(n))
		}
	}
}

func TestAddContentFromStdin(t *testing.T) {
	env := newTestEnv(t)
	if _, err := env.run(t, "line one\nline two\n", "add", "--content", "-"); err != nil {
		t.Fatalf("add: %v", err)
	}
	notes := env.list(t)
	if len(notes) != 1 || notes[0].Content != "line one\nline two" {
		t.Errorf("notes = %+v", notes)
	}
}

func TestEditKeepsUnchangedFields(t *testing.T) {
	env := newTestEnv(t)
	id := strings.TrimSpace(env.mustRun(t, "add", "--title", "A"))
	before := env.list(t)[0]

	env.mustRun(t, "edit", id, "--content", "B")

	after := env.list(t)[0]
	if after.Title != "A" || after.Content != "B" {
		t.Errorf("after edit = %q/%q, want A/B", after.Title, after.Content)
	}
	if after.ID != before.ID || !after.CreatedAt.Equal(before.CreatedAt) {
		t.Error("edit changed id or createdAt")
	}
	if !after.UpdatedAt.After(before.UpdatedAt) {
		t.Error("updatedAt did not advance")
	}
}

func TestEditErrors(t *testing.T) {
	env := newTestEnv(t)
	id := strings.TrimSpace(env.mustRun(t, "add", "--title", "A"))

	if _, err := env.run(t, "", "edit", id); !errors.Is(err, errNothingToChange) {
		t.Errorf("no flags: err = %v", err)
	}
	if _, err := env.run(t, "", "edit", "999", "--title", "x"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("missing id: err = %v, want ErrNotFound", err)
	}
	if _, err := env.run(t, "", "edit", id, "--title", ""); !errors.Is(err, note.ErrEmpty) {
		t.Errorf("clearing the only field: err = %v, want ErrEmpty", err)
	}
	if _, err := env.run(t, "", "edit", "abc", "--title", "x"); err == nil {
		t.Error("non-numeric id should fail")
	}
}

func TestRmIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	id := strings.TrimSpace(env.mustRun(t, "add", "--title", "Gone"))
	keep := strings.TrimSpace(env.mustRun(t, "add", "--title", "Stays"))

	env.mustRun(t, "rm", id)
	env.mustRun(t, "delete", id, "12345")

	notes := env.list(t)
	if len(notes) != 1 || notes[0].Title != "Stays" {
		t.Errorf("notes = %+v, want only %s", notes, keep)
	}
}

func TestConfigInit(t *testing.T) {
	env := newTestEnv(t)
	out := env.mustRun(t, "config", "init")
	if strings.TrimSpace(out) != env.configPath {
		t.Errorf("printed %q, want %q", out, env.configPath)
	}
	data, err := os.ReadFile(env.configPath)
	if err != nil {
		t.Fatalf("config not written: %v", err)
	}
	if !strings.Contains(string(data), `"driver": "sqlite"`) {
		t.Errorf("unexpected config:\n%s", data)
	}

	if _, err := env.run(t, "", "config", "init"); err == nil {
		t.Error("second init without --force should fail")
	}
	env.mustRun(t, "config", "init", "--force")

	if got := strings.TrimSpace(env.mustRun(t, "config", "path")); got != env.configPath {
		t.Errorf("config path = %q", got)
	}
}

func TestDBFlagOverridesConfig(t *testing.T) {
	env := newTestEnv(t)
	env.mustRun(t, "add", "--title", "here")
	if _, err := os.Stat(env.dbPath); err != nil {
		t.Fatalf("database not created at --db path: %v", err)
	}
}

func TestVersion(t *testing.T) {
	env := newTestEnv(t)
	out := env.mustRun(t, "version")
	if !strings.HasPrefix(out, "catatan version ") {
		t.Errorf("version output = %q", out)
	}
}

func TestRenderTable(t *testing.T) {
	text := lang.For("en")
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	notes := []note.Note{
		{ID: 7, Title: "", Content: "first\nsecond", UpdatedAt: now.Add(-2 * time.Hour)},
	}

	out := ansi.Strip(renderTable(notes, text, now))
	for _, want := range []string{"ID", "Title", "7", text.Untitled, "first", "2 hours ago"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "second") {
		t.Error("table should only show the first content line")
	}

	if got := ansi.Strip(renderTable(nil, text, now)); got != text.EmptyTitle {
		t.Errorf("empty table = %q", got)
	}
}

func TestStreamSnapshots(t *testing.T) {
	ch := make(chan []note.Note, 2)
	ch <- nil
	ch <- []note.Note{{ID: 1, Title: "a"}}
	close(ch)

	var out bytes.Buffer
	if err := streamSnapshots(context.Background(), ch, &out); err != nil {
		t.Fatalf("stream: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), out.String())
	}
	if lines[0] != "[]" {
		t.Errorf("empty snapshot = %q, want []", lines[0])
	}
	if !strings.Contains(lines[1], `"title":"a"`) {
		t.Errorf("second line = %q", lines[1])
	}
}

func TestStreamSnapshotsStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	done := make(chan error, 1)
	go func() { done <- streamSnapshots(ctx, make(chan []note.Note), io.Discard) }()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("err = %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("stream did not stop on cancel")
	}
}
