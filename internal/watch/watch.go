// Package watch monitors a source directory and triggers organize passes
// once incoming files settle.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/homemedia/organizer/internal/logger"
	"github.com/homemedia/organizer/internal/organizer"
)

// Watcher debounces file system events on a source directory and runs the
// organizer after a quiet period. Runs are strictly sequential: events
// arriving during a pass only schedule the next one.
type Watcher struct {
	org       *organizer.Organizer
	sourceDir string
	settle    time.Duration
	watcher   *fsnotify.Watcher
}

// New creates a Watcher over sourceDir. settle is the quiet period
// required after the last event before a pass starts.
func New(sourceDir string, org *organizer.Organizer, settle time.Duration) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}

	w := &Watcher{
		org:       org,
		sourceDir: sourceDir,
		settle:    settle,
		watcher:   fsWatcher,
	}

	if err := w.addRecursive(sourceDir); err != nil {
		fsWatcher.Close()
		return nil, err
	}

	return w, nil
}

// Run blocks, processing events until the context is cancelled. An initial
// pass over whatever is already in the source directory is scheduled
// immediately.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	logger.Info("watching source directory", "path", w.sourceDir, "settle", w.settle)

	timer := time.NewTimer(w.settle)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher event channel closed")
			}
			if !w.relevant(event) {
				continue
			}
			// New subdirectories must be watched as well.
			if event.Op.Has(fsnotify.Create) {
				if err := w.addRecursive(event.Name); err != nil {
					logger.Debug("could not watch new path", "path", event.Name, "error", err)
				}
			}
			logger.Debug("file event", "op", event.Op.String(), "path", event.Name)
			resetTimer(timer, w.settle)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher error channel closed")
			}
			logger.Warn("file watcher error", "error", err)

		case <-timer.C:
			result, err := w.org.Organize(w.sourceDir, false)
			if err != nil {
				logger.Error("organize pass failed", "error", err)
				continue
			}
			logger.Info("organize pass finished",
				"run_id", result.RunID,
				"images", result.ImagesProcessed,
				"moved", result.FilesMoved,
				"errors", len(result.Errors))
		}
	}
}

// addRecursive watches dir and every directory beneath it. Non-directory
// paths are ignored.
func (w *Watcher) addRecursive(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return fmt.Errorf("watch %s: %w", dir, err)
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	})
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Rename) {
		return false
	}
	return !strings.HasPrefix(filepath.Base(event.Name), ".")
}

func resetTimer(timer *time.Timer, d time.Duration) {
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	timer.Reset(d)
}
