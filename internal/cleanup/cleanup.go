package cleanup

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"sort"
	"sync"
)

var logger = slog.Default()

// SetLogger overrides the cleanup logger (useful for CLI configured logging).
func SetLogger(l *slog.Logger) {
	if l != nil {
		logger = l
	}
}

// Tracker remembers temporary files that must not outlive the process, such
// as the staging file of an atomic write that is interrupted mid-way.
type Tracker struct {
	mu    sync.Mutex
	paths map[string]struct{}
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{paths: make(map[string]struct{})}
}

// Track adds path to the removal list. Empty paths are ignored.
func (t *Tracker) Track(path string) {
	if t == nil || path == "" {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.paths[path] = struct{}{}
}

// Release drops path from the removal list once it has been renamed into
// place or removed by its owner.
func (t *Tracker) Release(path string) {
	if t == nil || path == "" {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.paths, path)
}

// Pending returns the tracked paths in sorted order.
func (t *Tracker) Pending() []string {
	if t == nil {
		return nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	paths := make([]string, 0, len(t.paths))
	for p := range t.paths {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// RemoveAll deletes every tracked path and empties the tracker. Failures are
// logged, not returned.
func (t *Tracker) RemoveAll() {
	if t == nil {
		return
	}
	t.mu.Lock()
	paths := t.paths
	t.paths = make(map[string]struct{})
	t.mu.Unlock()

	for p := range paths {
		if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			logger.Warn("cleanup_failed", "file", p, "error", err)
			continue
		}
		logger.Debug("cleanup_removed", "file", p)
	}
}
