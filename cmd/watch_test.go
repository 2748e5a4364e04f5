package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// TestWatchLoopStopsOnCancel tests that cancelling the context actually
// terminates the event loop instead of leaving it blocked forever.
func TestWatchLoopStopsOnCancel(t *testing.T) {
	prev := logger
	logger = zap.NewNop()
	defer func() { logger = prev }()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer watcher.Close()
	if err := watcher.Add(t.TempDir()); err != nil {
		t.Fatalf("Add: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- watchLoop(ctx, watcher, func(string) {})
	}()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("watchLoop() error = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("watchLoop did not stop after cancellation")
	}
}

func TestWatchLoopEnqueuesImages(t *testing.T) {
	prev := logger
	logger = zap.NewNop()
	defer func() { logger = prev }()

	dir := t.TempDir()
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer watcher.Close()
	if err := watcher.Add(dir); err != nil {
		t.Fatalf("Add: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan string, 4)
	go func() {
		watchLoop(ctx, watcher, func(path string) { got <- path })
	}()

	// A text file and a hidden file must be ignored, the PNG picked up.
	for _, name := range []string{"notes.txt", ".hidden.png", "shot.png"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("WriteFile %s: %v", name, err)
		}
	}

	select {
	case path := <-got:
		if filepath.Base(path) != "shot.png" {
			t.Errorf("enqueued %q, want shot.png", path)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no file enqueued")
	}

	// Create and Write for the same path may both arrive; duplicates
	// collapse in the pending set. Only foreign paths are a failure.
	for {
		select {
		case path := <-got:
			if filepath.Base(path) != "shot.png" {
				t.Errorf("unexpected file enqueued: %q", path)
			}
		case <-time.After(200 * time.Millisecond):
			return
		}
	}
}
