package sync

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewWatcher(t *testing.T) {
	dataPath := filepath.Join(t.TempDir(), "tasks.csv")

	watcher, err := NewWatcher(dataPath)
	if err != nil {
		t.Fatalf("failed to create watcher: %v", err)
	}

	if watcher.watcher == nil {
		t.Fatal("underlying fsnotify watcher should not be nil")
	}
	if watcher.changes == nil {
		t.Fatal("changes channel should not be nil")
	}

	watcher.Stop()
}

func TestWatcherStartStop(t *testing.T) {
	dataPath := filepath.Join(t.TempDir(), "tasks.csv")

	watcher, err := NewWatcher(dataPath)
	if err != nil {
		t.Fatalf("failed to create watcher: %v", err)
	}

	if err := watcher.Start(); err != nil {
		t.Fatalf("failed to start watcher: %v", err)
	}

	// Stop should not panic
	watcher.Stop()
}

func TestWatcher_EmitsOnDataFileWrite(t *testing.T) {
	dir := t.TempDir()
	dataPath := filepath.Join(dir, "tasks.csv")

	watcher, err := NewWatcher(dataPath)
	if err != nil {
		t.Fatalf("failed to create watcher: %v", err)
	}
	defer watcher.Stop()

	if err := watcher.Start(); err != nil {
		t.Fatalf("failed to start watcher: %v", err)
	}

	if err := os.WriteFile(dataPath, []byte("id,title\n"), 0644); err != nil {
		t.Fatalf("failed to write data file: %v", err)
	}

	select {
	case event := <-watcher.Changes():
		if event.FilePath != dataPath {
			t.Errorf("expected event for %s, got %s", dataPath, event.FilePath)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change event")
	}
}

func TestWatcher_StopDuringDebounceWindow(t *testing.T) {
	dir := t.TempDir()
	dataPath := filepath.Join(dir, "tasks.csv")

	watcher, err := NewWatcher(dataPath)
	if err != nil {
		t.Fatalf("failed to create watcher: %v", err)
	}

	if err := watcher.Start(); err != nil {
		t.Fatalf("failed to start watcher: %v", err)
	}

	if err := os.WriteFile(dataPath, []byte("id,title\n"), 0644); err != nil {
		t.Fatalf("failed to write data file: %v", err)
	}

	// Stop while the write may still be inside the debounce window. Must
	// not panic, and the channel must end up closed either way
	time.Sleep(20 * time.Millisecond)
	watcher.Stop()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-watcher.Changes():
			if !ok {
				return
			}
			// A flush that raced Stop may deliver one last event
		case <-deadline:
			t.Fatal("changes channel did not close after Stop")
		}
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	dataPath := filepath.Join(dir, "tasks.csv")

	watcher, err := NewWatcher(dataPath)
	if err != nil {
		t.Fatalf("failed to create watcher: %v", err)
	}
	defer watcher.Stop()

	if err := watcher.Start(); err != nil {
		t.Fatalf("failed to start watcher: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "tasks.csv.lock"), nil, 0644); err != nil {
		t.Fatalf("failed to write lock file: %v", err)
	}

	select {
	case event := <-watcher.Changes():
		t.Fatalf("unexpected event for %s", event.FilePath)
	case <-time.After(300 * time.Millisecond):
		// No event is the expected outcome
	}
}
