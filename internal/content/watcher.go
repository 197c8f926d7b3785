package content

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDebounce = 200 * time.Millisecond

// Watcher reloads a Catalog when YAML files under its directory change.
// Editors often write a file in several steps, so events are debounced.
type Watcher struct {
	dir     string
	catalog *Catalog
	watcher *fsnotify.Watcher
	logger  *slog.Logger
}

// NewWatcher watches dir and its subdirectories.
func NewWatcher(dir string, catalog *Catalog, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file system watcher: %w", err)
	}

	err = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if err := fw.Add(path); err != nil {
				return err
			}
			logger.Debug("Added directory to content watcher", "path", path)
		}
		return nil
	})
	if err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to add directories to watcher: %w", err)
	}

	return &Watcher{dir: dir, catalog: catalog, watcher: fw, logger: logger}, nil
}

// Run processes file events until ctx is cancelled or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) {
	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			w.logger.Debug("Content watcher context cancelled")
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !isContentFile(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			w.logger.Debug("Content file changed", "path", event.Name, "op", event.Op.String())
			pending = time.After(reloadDebounce)

		case <-pending:
			pending = nil
			if err := w.catalog.Reload(); err != nil {
				w.logger.Error("Content reload failed, keeping previous content", "error", err)
				continue
			}
			w.logger.Info("Content reloaded", "dir", w.dir, "pages", len(w.catalog.Pages()))

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Content watcher error", "error", err)
		}
	}
}

// Close stops the underlying file system watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

func isContentFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}
