// Package watch regenerates roadmaps when workspace inputs change on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/felixgeelhaar/skillmap/internal/infrastructure/storage"
	"github.com/fsnotify/fsnotify"
)

// watchedFiles are the workspace inputs whose changes invalidate a roadmap.
var watchedFiles = map[string]struct{}{
	storage.CatalogFile: {},
	storage.ProfileFile: {},
	storage.ConfigFile:  {},
}

// Watcher observes the .skillmap directory and fires a debounced callback
// when catalog, profile or config files change. Roadmap and state writes are
// ignored so regeneration does not retrigger itself.
type Watcher struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration
	onChange func(changed []string)
}

// New creates a watcher. The callback receives the distinct file names that
// changed within the debounce window.
func New(debounce time.Duration, onChange func(changed []string)) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	if debounce == 0 {
		debounce = 500 * time.Millisecond
	}
	return &Watcher{
		watcher:  w,
		debounce: debounce,
		onChange: onChange,
	}, nil
}

// Watch registers the workspace's .skillmap directory.
func (w *Watcher) Watch(root string) error {
	dir := filepath.Join(root, storage.SkillmapDir)
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	return nil
}

// Run starts the event loop. It blocks until the context is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	pending := make(map[string]struct{})
	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}

	fire := func() {
		if len(pending) == 0 || w.onChange == nil {
			return
		}
		changed := make([]string, 0, len(pending))
		for name := range pending {
			changed = append(changed, name)
		}
		pending = make(map[string]struct{})
		w.onChange(changed)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			fire()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !relevant(event) {
				continue
			}
			pending[filepath.Base(event.Name)] = struct{}{}
			timer.Reset(w.debounce)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch error: %w", err)
		}
	}
}

// relevant filters events down to writes and creations of watched input
// files.
func relevant(event fsnotify.Event) bool {
	if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
		return false
	}
	_, ok := watchedFiles[filepath.Base(event.Name)]
	return ok
}
