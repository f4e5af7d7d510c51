package sync

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"workflow/internal/logger"
)

// FileChangeEvent signals that the task data file was rewritten
type FileChangeEvent struct {
	FilePath string
}

// Watcher watches the task data file for writes from other processes
// (e.g. the CLI while the dashboard is open)
type Watcher struct {
	watcher  *fsnotify.Watcher
	dataPath string
	changes  chan FileChangeEvent
	done     chan struct{}
}

// NewWatcher creates a watcher for the CSV file at dataPath
func NewWatcher(dataPath string) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	return &Watcher{
		watcher:  fsWatcher,
		dataPath: dataPath,
		changes:  make(chan FileChangeEvent, 10),
		done:     make(chan struct{}),
	}, nil
}

// Start begins watching the data file's directory. Watching the directory
// rather than the file survives the full-snapshot rewrites the store does
func (w *Watcher) Start() error {
	dir := filepath.Dir(w.dataPath)
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch directory: %w", err)
	}

	go w.watch()
	return nil
}

// Stop stops the watcher. The watch goroutine closes the changes channel
// on its way out, so only it ever sends on or closes that channel
func (w *Watcher) Stop() {
	close(w.done)
	w.watcher.Close()
}

// Changes returns the channel for file change notifications
func (w *Watcher) Changes() <-chan FileChangeEvent {
	return w.changes
}

// watch is the main event loop. Bursts of writes within the debounce
// window collapse into a single change event
func (w *Watcher) watch() {
	const debounceDelay = 100 * time.Millisecond

	defer close(w.changes)

	debounce := time.NewTimer(debounceDelay)
	if !debounce.Stop() {
		<-debounce.C
	}

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			// Only the data file itself matters; ignore the lock file and
			// anything else in the directory
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.dataPath) {
				continue
			}

			if !debounce.Stop() {
				select {
				case <-debounce.C:
				default:
				}
			}
			debounce.Reset(debounceDelay)

		case <-debounce.C:
			select {
			case w.changes <- FileChangeEvent{FilePath: w.dataPath}:
			case <-w.done:
				return
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Log error but continue watching
			logger.Warn("watcher error", "error", err)
		}
	}
}
