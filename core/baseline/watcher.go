package baseline

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher reports changes of a FileSource's file.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	logger  *zap.Logger
}

// NewWatcher starts watching the directory containing the baseline file.
// The directory is watched so editors that replace the file by rename are still seen.
func (s *FileSource) NewWatcher(logger *zap.Logger) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	abs, err := filepath.Abs(s.path)
	if err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("failed to resolve %s: %w", s.path, err)
	}

	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{watcher: w, path: abs, logger: logger}, nil
}

// Run calls onChange whenever the baseline file is written, created, renamed or removed.
// It blocks until ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context, onChange func()) {
	defer w.watcher.Close()

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
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove) {
				w.logger.Debug("Baseline file changed", zap.String("path", event.Name), zap.String("op", event.Op.String()))
				onChange()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("Baseline watcher error", zap.Error(err))
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
