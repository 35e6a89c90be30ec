// Package watch notifies when the snapshot store changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// StoreWatcher watches the snapshot database for writes. SQLite under WAL
// performs most writes through the -wal sidecar, so the watcher matches the
// database name and its sidecars, and coalesces a burst of rapid writes into
// a single notification once the burst has settled.
type StoreWatcher struct {
	watcher  *fsnotify.Watcher
	dir      string
	names    map[string]bool
	debounce time.Duration
	changes  chan struct{}
	logger   *zap.Logger

	mu         sync.Mutex
	pending    time.Time
	hasPending bool
	stats      Stats
}

// Stats tracks watcher activity.
type Stats struct {
	Events        int
	Notifications int
	Errors        int
	LastEvent     time.Time
}

// NewStoreWatcher prepares a watcher for the database at dbPath. Nothing is
// watched until Run starts.
func NewStoreWatcher(dbPath string, debounce time.Duration, logger *zap.Logger) (*StoreWatcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	base := filepath.Base(dbPath)
	return &StoreWatcher{
		watcher:  fw,
		dir:      filepath.Dir(dbPath),
		names:    map[string]bool{base: true, base + "-wal": true, base + "-journal": true},
		debounce: debounce,
		changes:  make(chan struct{}, 1),
		logger:   logger,
	}, nil
}

// Changes delivers one signal per settled burst of store writes.
func (w *StoreWatcher) Changes() <-chan struct{} {
	return w.changes
}

// Run watches until ctx is cancelled. The database's directory is watched
// rather than the file itself: SQLite and editors replace files, which would
// drop a per-file inode watch.
func (w *StoreWatcher) Run(ctx context.Context) error {
	if err := w.watcher.Add(w.dir); err != nil {
		w.watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", w.dir, err)
	}
	defer w.watcher.Close()
	w.logger.Info("watching store", zap.String("dir", w.dir))

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", zap.Error(err))
			w.mu.Lock()
			w.stats.Errors++
			w.mu.Unlock()

		case <-ticker.C:
			w.flushPending()
		}
	}
}

// Stats returns a copy of the activity counters.
func (w *StoreWatcher) Stats() Stats {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stats
}

func (w *StoreWatcher) handleEvent(event fsnotify.Event) {
	if !w.names[filepath.Base(event.Name)] {
		return
	}
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		// Chmod and friends say nothing about content.
		return
	}

	w.logger.Debug("store event",
		zap.String("op", event.Op.String()),
		zap.String("file", filepath.Base(event.Name)))

	w.mu.Lock()
	w.stats.Events++
	w.stats.LastEvent = time.Now()
	w.pending = time.Now()
	w.hasPending = true
	w.mu.Unlock()
}

func (w *StoreWatcher) flushPending() {
	w.mu.Lock()
	ready := w.hasPending && time.Since(w.pending) >= w.debounce
	if ready {
		w.hasPending = false
		w.stats.Notifications++
	}
	w.mu.Unlock()

	if !ready {
		return
	}
	select {
	case w.changes <- struct{}{}:
	default:
		// Consumer is mid-replan; the burst folds into the queued signal.
	}
}
