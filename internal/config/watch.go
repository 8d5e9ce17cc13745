package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a settings file whenever it changes on disk.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	logger  *log.Logger
}

// NewWatcher starts watching path. The parent directory is watched rather
// than the file, since editors often save by writing a new file and renaming it.
func NewWatcher(path string, logger *log.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: cannot create watcher: %w", err)
	}

	path = filepath.Clean(path)
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("config: cannot watch %s: %w", path, err)
	}

	return &Watcher{path: path, watcher: fw, logger: logger}, nil
}

// Run delivers every valid reload to onChange until ctx is canceled.
// Edits that fail to load are logged and skipped; the previous settings stay.
func (w *Watcher) Run(ctx context.Context, onChange func(Config)) {
	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			cfg, err := Load(w.path)
			if err != nil {
				w.logger.Warn("ignoring settings change", "path", w.path, "error", err)
				continue
			}
			w.logger.Info("settings reloaded", "path", w.path)
			onChange(cfg)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("settings watcher error", "error", err)
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
