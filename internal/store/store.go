// Package store persists notes in a local SQLite database and serves a live
// query over the whole collection.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/marcus/catatan/internal/note"
)

var (
	// ErrNotFound is returned when no note has the requested id.
	ErrNotFound = errors.New("note not found")
	// ErrClosed is returned for operations on a closed store.
	ErrClosed = errors.New("store closed")
)

// Options configures Open.
type Options struct {
	// Path is the database file. Its directory is created if missing.
	Path string
	// Driver is "sqlite" (modernc, default) or "sqlite3" (mattn, cgo).
	Driver string
	// WatchExternal re-publishes the live query when another process
	// changes the database file.
	WatchExternal bool
	Logger        *slog.Logger
	// Now overrides the wall clock, for tests.
	Now func() time.Time
}

// Store handles SQLite operations for notes.
type Store struct {
	db      *sql.DB
	path    string
	logger  *slog.Logger
	writer  *writer
	hub     *hub
	watcher *watcher

	closeOnce sync.Once
	closeErr  error
}

// Open opens (creating if needed) the database at opts.Path.
func Open(ctx context.Context, opts Options) (*Store, error) {
	if opts.Path == "" {
		return nil, errors.New("open store: empty database path")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	if err := os.MkdirAll(filepath.Dir(opts.Path), 0755); err != nil {
		return nil, fmt.Errorf("create database dir: %w", err)
	}

	db, err := openDB(opts.Driver, opts.Path)
	if err != nil {
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	latest, err := latestStamp(ctx, db)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("read latest stamp: %w", err)
	}

	s := &Store{
		db:     db,
		path:   opts.Path,
		logger: logger,
		hub:    newHub(),
	}
	s.writer = newWriter(&clock{now: now, last: latest}, s.publish)

	// Seed the live query before anyone can subscribe.
	if err := s.Refresh(ctx); err != nil {
		s.writer.stop()
		db.Close()
		return nil, err
	}

	if opts.WatchExternal {
		w, err := newWatcher(opts.Path, logger, func() {
			if err := s.Refresh(context.Background()); err != nil && !errors.Is(err, ErrClosed) {
				logger.Warn("store: external refresh failed", "error", err)
			}
		})
		if err != nil {
			// The live query still follows this process's own writes.
			logger.Warn("store: external change watcher disabled", "error", err)
		} else {
			s.watcher = w
		}
	}

	logger.Debug("store: opened", "path", opts.Path, "driver", driverName(opts.Driver))
	return s, nil
}

// Path returns the database file path.
func (s *Store) Path() string { return s.path }

// Close stops the watcher, waits for queued writes, ends every live query
// and closes the database.
func (s *Store) Close() error {
	s.closeOnce.Do(func() {
		if s.watcher != nil {
			s.watcher.close()
		}
		s.writer.stop()
		s.hub.close()
		s.closeErr = s.db.Close()
	})
	return s.closeErr
}

// Insert creates a new note and returns its id.
func (s *Store) Insert(ctx context.Context, title, content string) (int64, error) {
	var id int64
	err := s.writer.submit(ctx, func(ctx context.Context, c *clock) (bool, error) {
		stamp := c.next()
		res, err := s.db.ExecContext(ctx, `
			INSERT INTO notes (title, content, created_at, updated_at)
			VALUES (?, ?, ?, ?)
		`, title, content, stamp, stamp)
		if err != nil {
			return false, fmt.Errorf("insert note: %w", err)
		}
		id, err = res.LastInsertId()
		if err != nil {
			return false, fmt.Errorf("insert note: %w", err)
		}
		return true, nil
	})
	if err != nil {
		return 0, err
	}
	s.logger.Debug("store: note inserted", "id", id)
	return id, nil
}

// maxCallerSkew caps how far ahead of the clock a caller's UpdatedAt may be.
const maxCallerSkew = time.Minute

// Update replaces title and content of the note with n.ID.
// The id and creation time of the stored note are kept; the update time
// moves strictly forward. A caller UpdatedAt newer than the clock is kept,
// up to maxCallerSkew ahead. Returns the stored note.
func (s *Store) Update(ctx context.Context, n note.Note) (note.Note, error) {
	var out note.Note
	err := s.writer.submit(ctx, func(ctx context.Context, c *clock) (bool, error) {
		prev, err := s.get(ctx, n.ID)
		if err != nil {
			return false, err
		}

		stamp := c.next()
		if !n.UpdatedAt.IsZero() {
			limit := c.now().Add(maxCallerSkew).UnixMilli()
			stamp = max(stamp, min(n.UpdatedAt.UnixMilli(), limit))
		}
		if p := prev.UpdatedAt.UnixMilli(); stamp <= p {
			stamp = p + 1
		}
		c.observe(stamp)

		_, err = s.db.ExecContext(ctx, `
			UPDATE notes SET title = ?, content = ?, updated_at = ?
			WHERE id = ?
		`, n.Title, n.Content, stamp, n.ID)
		if err != nil {
			return false, fmt.Errorf("update note: %w", err)
		}

		out = note.Note{
			ID:        prev.ID,
			Title:     n.Title,
			Content:   n.Content,
			CreatedAt: prev.CreatedAt,
			UpdatedAt: fromMillis(stamp),
		}
		return true, nil
	})
	if err != nil {
		return note.Note{}, err
	}
	s.logger.Debug("store: note updated", "id", out.ID)
	return out, nil
}

// Delete removes the note with id. Deleting a missing note is a no-op.
func (s *Store) Delete(ctx context.Context, id int64) error {
	var removed bool
	err := s.writer.submit(ctx, func(ctx context.Context, c *clock) (bool, error) {
		res, err := s.db.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id)
		if err != nil {
			return false, fmt.Errorf("delete note: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return false, fmt.Errorf("delete note: %w", err)
		}
		removed = n > 0
		return removed, nil
	})
	if err != nil {
		return err
	}
	s.logger.Debug("store: note deleted", "id", id, "removed", removed)
	return nil
}

// Get retrieves a note by id.
func (s *Store) Get(ctx context.Context, id int64) (note.Note, error) {
	return s.get(ctx, id)
}

// List returns all notes, most recently updated first.
func (s *Store) List(ctx context.Context) ([]note.Note, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, content, created_at, updated_at
		FROM notes
		ORDER BY updated_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("query notes: %w", err)
	}
	defer rows.Close()

	notes := []note.Note{}
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

// ObserveAll returns a live query over all notes. The first value is the
// current collection; a new value follows every change. A reader that falls
// behind only sees the newest collection. The channel is closed when ctx is
// done or the store is closed.
func (s *Store) ObserveAll(ctx context.Context) <-chan []note.Note {
	return s.hub.subscribe(ctx)
}

// Refresh re-reads the collection and publishes it to live queries if it
// changed. It runs on the writer so it is ordered with writes.
func (s *Store) Refresh(ctx context.Context) error {
	return s.writer.submit(ctx, func(ctx context.Context, c *clock) (bool, error) {
		return false, s.publish(ctx, c)
	})
}

// publish runs on the writer after every committed change.
func (s *Store) publish(ctx context.Context, c *clock) error {
	notes, err := s.List(ctx)
	if err != nil {
		s.logger.Error("store: live query refresh failed", "error", err)
		return err
	}
	if len(notes) > 0 {
		// Another process may have written newer stamps.
		c.observe(notes[0].UpdatedAt.UnixMilli())
	}
	if s.hub.publish(notes) {
		s.logger.Debug("store: live query emitted", "count", len(notes))
	}
	return nil
}

func (s *Store) get(ctx context.Context, id int64) (note.Note, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, title, content, created_at, updated_at
		FROM notes WHERE id = ?
	`, id)
	n, err := scanNote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return note.Note{}, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	if err != nil {
		return note.Note{}, err
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanNote(sc scanner) (note.Note, error) {
	var n note.Note
	var createdAt, updatedAt int64
	if err := sc.Scan(&n.ID, &n.Title, &n.Content, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return n, err
		}
		return n, fmt.Errorf("scan note: %w", err)
	}
	n.CreatedAt = fromMillis(createdAt)
	n.UpdatedAt = fromMillis(updatedAt)
	return n, nil
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
