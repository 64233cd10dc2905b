package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"baseball-stats-service/internal/logging"
)

const defaultDebounce = 500 * time.Millisecond

// Refresher triggers a report refresh when the dataset file changes.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Watcher observes the dataset CSV on disk and triggers a refresh after
// writes settle. The parent directory is watched rather than the file
// itself because editors and atomic writers replace files by rename.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	path      string
	refresher Refresher
	logger    *slog.Logger
	debounce  time.Duration

	mu      sync.Mutex
	pending time.Time
	running bool

	stopCh chan struct{}
	doneCh chan struct{}
}

// New constructs a Watcher for the dataset at path.
func New(path string, refresher Refresher, logger *slog.Logger, debounce time.Duration) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	return &Watcher{
		fsWatcher: fsWatcher,
		path:      filepath.Clean(path),
		refresher: refresher,
		logger:    logger,
		debounce:  debounce,
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}, nil
}

// Start begins watching until the context is cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	if err := w.fsWatcher.Add(filepath.Dir(w.path)); err != nil {
		return err
	}
	logging.Info(w.logger, "dataset watch started", logging.FieldPath, w.path)

	go w.run(ctx)
	return nil
}

// Stop halts the watcher and waits for the loop to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh

	if err := w.fsWatcher.Close(); err != nil {
		logging.Error(w.logger, "dataset watch close failed", err)
	}
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			logging.Error(w.logger, "dataset watch error", err)
		case <-ticker.C:
			w.fireSettled(ctx)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}

	w.mu.Lock()
	w.pending = time.Now()
	w.mu.Unlock()
}

func (w *Watcher) fireSettled(ctx context.Context) {
	w.mu.Lock()
	pending := w.pending
	if pending.IsZero() || time.Since(pending) < w.debounce {
		w.mu.Unlock()
		return
	}
	w.pending = time.Time{}
	w.mu.Unlock()

	logging.Info(w.logger, "dataset changed, refreshing", logging.FieldPath, w.path)
	if err := w.refresher.Refresh(ctx); err != nil {
		logging.Error(w.logger, "watch-triggered refresh failed", err, logging.FieldPath, w.path)
	}
}
