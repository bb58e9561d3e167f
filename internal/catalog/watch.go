package catalog

import (
	"context"
	"os"
	"time"
)

// FileWatcher polls file modification times and triggers a callback on change.
type FileWatcher struct {
	paths     func() []string
	interval  time.Duration
	onChange  func(string) // called with path that changed
	lastMTime map[string]time.Time
}

// NewFileWatcher creates a watcher. paths is re-evaluated on every scan so the
// watched set can follow the loader (e.g. a characters file named by the catalog).
func NewFileWatcher(paths func() []string, interval time.Duration, onChange func(string)) *FileWatcher {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	return &FileWatcher{
		paths:     paths,
		interval:  interval,
		onChange:  onChange,
		lastMTime: make(map[string]time.Time),
	}
}

// Run polls until ctx is cancelled.
func (w *FileWatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	w.Scan()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.Scan()
		}
	}
}

// Scan checks mtimes once and invokes onChange for files modified since the
// previous scan. The first sighting of a file only primes it.
func (w *FileWatcher) Scan() {
	for _, p := range w.paths() {
		fi, err := os.Stat(p)
		if err != nil {
			// missing files are picked up once they appear
			continue
		}
		mt := fi.ModTime()
		last, ok := w.lastMTime[p]
		w.lastMTime[p] = mt
		if ok && mt.After(last) && w.onChange != nil {
			w.onChange(p)
		}
	}
}
