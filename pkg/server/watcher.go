package server

import (
	"context"
	"os"
	"path/filepath"
	"time"
)

// Watcher polls a directory and reports when files are added, modified or
// removed.
type Watcher struct {
	dir        string
	interval   time.Duration
	match      func(name string) bool
	timestamps map[string]time.Time
	primed     bool
}

// NewWatcher creates a watcher for the files in dir accepted by match. A
// nil match accepts every file.
func NewWatcher(dir string, interval time.Duration, match func(name string) bool) *Watcher {
	if match == nil {
		match = func(string) bool { return true }
	}
	return &Watcher{
		dir:        dir,
		interval:   interval,
		match:      match,
		timestamps: make(map[string]time.Time),
	}
}

// Run polls until ctx is done, calling onChange with the changed paths
// after every poll that found changes.
func (w *Watcher) Run(ctx context.Context, onChange func(paths []string)) error {
	w.scan()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if changed := w.scan(); len(changed) > 0 {
				onChange(changed)
			}
		}
	}
}

// scan refreshes the timestamp map and returns the paths that changed
// since the previous scan. The first scan only records.
func (w *Watcher) scan() []string {
	first := !w.primed
	w.primed = true
	seen := make(map[string]bool, len(w.timestamps))
	var changed []string

	entries, _ := os.ReadDir(w.dir)
	for _, e := range entries {
		if e.IsDir() || !w.match(e.Name()) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		p := filepath.Join(w.dir, e.Name())
		seen[p] = true

		last, ok := w.timestamps[p]
		if !ok || info.ModTime().After(last) {
			w.timestamps[p] = info.ModTime()
			if !first {
				changed = append(changed, p)
			}
		}
	}

	for p := range w.timestamps {
		if !seen[p] {
			delete(w.timestamps, p)
			changed = append(changed, p)
		}
	}
	return changed
}
