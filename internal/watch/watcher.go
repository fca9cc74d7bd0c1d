// Package watch observes a changelog file for modification, using fsnotify
// for efficient change detection with a polling ticker as backup. Editors
// often replace files by rename, so the parent directory is watched rather
// than the file itself.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultInterval is the default backup polling interval.
const DefaultInterval = 500 * time.Millisecond

// fileState captures what we last knew about the watched file.
type fileState struct {
	exists  bool
	size    int64
	modTime time.Time
}

func (s fileState) same(other fileState) bool {
	return s.exists == other.exists && s.size == other.size && s.modTime.Equal(other.modTime)
}

// Watcher signals whenever the watched file's content may have changed.
type Watcher struct {
	path     string
	interval time.Duration
	initial  fileState
	watcher  *fsnotify.Watcher
	mu       sync.Mutex
	closed   bool
}

// New creates a Watcher for the given file path. The file does not need to
// exist yet. interval controls the backup polling cadence; values <= 0 use
// DefaultInterval.
func New(path string, interval time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving watch path: %w", err)
	}

	if interval <= 0 {
		interval = DefaultInterval
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watching parent directory: %w", err)
	}

	w := &Watcher{
		path:     abs,
		interval: interval,
		watcher:  watcher,
	}
	w.initial = w.stat()
	return w, nil
}

// Changes streams a signal each time the watched file changes. Bursts of
// events are coalesced; the consumer re-reads the file once per signal.
// The channel is closed when the context is cancelled or Close is called.
func (w *Watcher) Changes(ctx context.Context) <-chan struct{} {
	ch := make(chan struct{}, 1)
	go w.watchLoop(ctx, ch)
	return ch
}

// watchLoop is the main loop reacting to fsnotify events and poll ticks.
func (w *Watcher) watchLoop(ctx context.Context, ch chan<- struct{}) {
	defer close(ch)

	last := w.initial

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			last = w.notifyIfChanged(ch, last)
		case <-ticker.C:
			last = w.notifyIfChanged(ch, last)
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Polling covers missed events, keep going.
		}
	}
}

// notifyIfChanged compares the current file state against last and sends a
// coalesced signal when they differ.
func (w *Watcher) notifyIfChanged(ch chan<- struct{}, last fileState) fileState {
	current := w.stat()
	if current.same(last) {
		return last
	}

	select {
	case ch <- struct{}{}:
	default:
	}
	return current
}

// stat captures the current file state. A missing file is a valid state so
// that delete-then-recreate saves are noticed.
func (w *Watcher) stat() fileState {
	info, err := os.Stat(w.path)
	if err != nil {
		return fileState{}
	}
	return fileState{
		exists:  true,
		size:    info.Size(),
		modTime: info.ModTime(),
	}
}

// Close stops the watcher and releases resources.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true

	if w.watcher != nil {
		return w.watcher.Close()
	}
	return nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}
