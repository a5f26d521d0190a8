package editor

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchFileEmitsAfterWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.txt")
	if err := os.WriteFile(path, []byte("one\n"), 0644); err != nil {
		t.Fatal(err)
	}

	events, stop, err := WatchFile(path)
	if err != nil {
		t.Fatal(err)
	}
	defer stop()

	if err := os.WriteFile(path, []byte("two\n"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case ev := <-events:
		if ev.Path != path {
			t.Errorf("event path = %q, want %q", ev.Path, path)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no change event after write")
	}
}

func TestWatchFileStopDuringDebounce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.txt")
	if err := os.WriteFile(path, []byte("one\n"), 0644); err != nil {
		t.Fatal(err)
	}

	events, stop, err := WatchFile(path)
	if err != nil {
		t.Fatal(err)
	}

	// Stop mid-debounce: the write arms a timer that outlives the
	// watch. A send on the closed events channel would panic here.
	if err := os.WriteFile(path, []byte("two\n"), 0644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(30 * time.Millisecond)
	stop()
	time.Sleep(300 * time.Millisecond)

	for range events {
	}
}
