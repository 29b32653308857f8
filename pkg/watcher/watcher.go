// Package watcher re-runs work when files change on disk.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// FileWatcher watches files and calls back once per burst of writes
type FileWatcher struct {
	watcher   *fsnotify.Watcher
	log       logrus.FieldLogger
	mu        sync.Mutex
	callbacks map[string]func(string)
	debounce  time.Duration
	timers    map[string]*time.Timer
}

// NewFileWatcher creates a watcher that waits debounce after the last event
// for a file before calling back.
func NewFileWatcher(debounce time.Duration, log logrus.FieldLogger) (*FileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	return &FileWatcher{
		watcher:   w,
		log:       log,
		callbacks: make(map[string]func(string)),
		debounce:  debounce,
		timers:    make(map[string]*time.Timer),
	}, nil
}

// Watch registers files. callback receives the absolute path that changed.
//
// The parent directory is watched rather than the file itself, so editors
// that save by renaming a temp file over the original keep triggering.
func (fw *FileWatcher) Watch(files []string, callback func(string)) error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	for _, file := range files {
		absPath, err := filepath.Abs(file)
		if err != nil {
			return fmt.Errorf("failed to resolve path %s: %w", file, err)
		}

		if err := fw.watcher.Add(filepath.Dir(absPath)); err != nil {
			return fmt.Errorf("failed to watch %s: %w", absPath, err)
		}

		fw.callbacks[absPath] = callback
	}

	return nil
}

// Run dispatches change events until ctx is done or the watcher is closed
func (fw *FileWatcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}

			// Only trigger on write or create events
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				fw.handleFileChange(event.Name)
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			fw.log.WithError(err).Warn("watcher error")
		}
	}
}

// handleFileChange handles a file change event with debouncing
func (fw *FileWatcher) handleFileChange(filePath string) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	callback, exists := fw.callbacks[filepath.Clean(filePath)]
	if !exists {
		return
	}

	// Cancel existing timer if any
	if timer, exists := fw.timers[filePath]; exists {
		timer.Stop()
	}

	fw.timers[filePath] = time.AfterFunc(fw.debounce, func() {
		fw.log.WithField("file", filePath).Debug("file changed")
		callback(filePath)
	})
}

// Close stops the watcher and any pending callbacks
func (fw *FileWatcher) Close() error {
	fw.mu.Lock()
	for _, timer := range fw.timers {
		timer.Stop()
	}
	fw.mu.Unlock()

	return fw.watcher.Close()
}
