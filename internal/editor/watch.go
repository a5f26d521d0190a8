package editor

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/marcus/echoarea/internal/msg"
)

// WatchFile watches a file for on-disk changes and emits a
// FileChangedMsg per burst of writes. The returned stop function ends
// the watch and closes the channel.
func WatchFile(path string) (<-chan msg.FileChangedMsg, func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, err
	}

	// Watch the directory: editors replace files on save, and the
	// rename/create dance is invisible to a watch on the file itself.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, nil, err
	}

	events := make(chan msg.FileChangedMsg, 8)
	done := make(chan struct{})

	go func() {
		defer watcher.Close()
		defer close(events)

		// Debounce timers signal through fire rather than sending on
		// events directly: only this goroutine writes to events, so a
		// timer still pending at shutdown cannot hit the closed
		// channel.
		fire := make(chan struct{}, 1)
		var debounceTimer *time.Timer
		defer func() {
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
		}()
		debounceDelay := 100 * time.Millisecond

		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filepath.Clean(path) {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}

				// Debounce rapid write bursts
				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(debounceDelay, func() {
					select {
					case fire <- struct{}{}:
					default:
					}
				})

			case <-fire:
				select {
				case events <- msg.FileChangedMsg{Path: path}:
				default:
					// Channel full, drop event
				}

			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				// Keep watching after transient errors

			case <-done:
				return
			}
		}
	}()

	stop := func() { close(done) }
	return events, stop, nil
}
