package file

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/ideaflux/ideaflux/internal/core/ports/driven"
	"github.com/ideaflux/ideaflux/internal/logger"
)

// Watcher reloads a config store when its file changes on disk.
// Long-running processes (the MCP server) use it so edits to
// config.toml take effect without a restart.
type Watcher struct {
	store   driven.ConfigStore
	watcher *fsnotify.Watcher

	// onReload, when set, runs after each successful reload.
	onReload func()
}

// NewWatcher creates a watcher for the store's config file.
func NewWatcher(store driven.ConfigStore, onReload func()) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory, not the file: editors often replace the
	// file by rename, which drops a watch on the file itself.
	if err := w.Add(filepath.Dir(store.Path())); err != nil {
		w.Close()
		return nil, err
	}

	return &Watcher{
		store:    store,
		watcher:  w,
		onReload: onReload,
	}, nil
}

// Run processes file events until the context is cancelled.
func (w *Watcher) Run(ctx context.Context) {
	target := filepath.Clean(w.store.Path())

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := w.store.Load(); err != nil {
				logger.Warn("config reload failed: %v", err)
				continue
			}
			logger.Debug("config reloaded from %s", target)
			if w.onReload != nil {
				w.onReload()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("config watch error: %v", err)
		}
	}
}

// Close stops the underlying file watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
