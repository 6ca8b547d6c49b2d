// ABOUTME: Polling-based file watcher for config hot-reload
// ABOUTME: Monitors file mtimes at a configurable interval until its context ends

package config

import (
	"context"
	"os"
	"sync"
	"time"
)

// Watcher reports changes to a fixed set of files by polling mtimes.
// A file appearing or disappearing counts as a change.
type Watcher struct {
	paths    []string
	interval time.Duration

	mu     sync.Mutex
	mtimes map[string]time.Time
}

// NewWatcher creates a watcher for paths with a 2s polling interval.
func NewWatcher(paths []string) *Watcher {
	w := &Watcher{
		paths:    paths,
		interval: 2 * time.Second,
		mtimes:   make(map[string]time.Time),
	}
	w.Check()
	return w
}

// SetInterval overrides the polling interval. Call before Run.
func (w *Watcher) SetInterval(d time.Duration) {
	w.interval = d
}

// Run polls until ctx is done, sending on the returned channel after
// each detected change. Sends never block: a change that arrives while
// the previous one is unread is merged into it.
func (w *Watcher) Run(ctx context.Context) <-chan struct{} {
	out := make(chan struct{}, 1)
	go func() {
		defer close(out)
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if w.Check() {
					select {
					case out <- struct{}{}:
					default:
					}
				}
			}
		}
	}()
	return out
}

// Check compares current mtimes with the last snapshot, records the new
// ones, and reports whether anything changed.
func (w *Watcher) Check() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	changed := false
	for _, path := range w.paths {
		prev, existed := w.mtimes[path]
		info, err := os.Stat(path)
		if err != nil {
			if existed {
				delete(w.mtimes, path)
				changed = true
			}
			continue
		}
		if !existed || !info.ModTime().Equal(prev) {
			w.mtimes[path] = info.ModTime()
			changed = true
		}
	}
	return changed
}
