package store

import (
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 50 * time.Millisecond

// watcher calls onChange, debounced, when the database file or its WAL or
// rollback journal is touched. This process's own writes also trigger it;
// the hub drops the resulting identical snapshot.
type watcher struct {
	fsw      *fsnotify.Watcher
	names    map[string]bool
	onChange func()
	logger   *slog.Logger

	mu      sync.Mutex
	timer   *time.Timer
	stopped bool
	done    chan struct{}
}

func newWatcher(dbPath string, logger *slog.Logger, onChange func()) (*watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory: SQLite replaces and truncates the side files.
	if err := fsw.Add(filepath.Dir(dbPath)); err != nil {
		fsw.Close()
		return nil, err
	}

	base := filepath.Base(dbPath)
	w := &watcher{
		fsw: fsw,
		names: map[string]bool{
			base:              true,
			base + "-wal":     true,
			base + "-journal": true,
		},
		onChange: onChange,
		logger:   logger,
		done:     make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *watcher) run() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.names[filepath.Base(event.Name)] {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) {
				continue
			}
			w.schedule()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			// Keep watching; a missed event only delays the next refresh.
			w.logger.Warn("store: watcher error", "error", err)
		}
	}
}

// schedule (re)arms the debounce timer.
func (w *watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(watchDebounce, w.fire)
}

func (w *watcher) fire() {
	w.mu.Lock()
	stopped := w.stopped
	w.mu.Unlock()
	if !stopped {
		w.onChange()
	}
}

func (w *watcher) close() {
	w.mu.Lock()
	w.stopped = true
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	w.fsw.Close()
	<-w.done
}
