package tui

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/subjectivelabs/sj/internal/subjective"
)

// Watcher monitors the config directory for changes to the data file, so the
// timetable viewer can reload when a new export is saved. Events are
// debounced; editors and atomic renames produce bursts.
type Watcher struct {
	Dir     string
	Changes <-chan struct{}

	changes chan struct{}
	done    chan struct{}
	watcher *fsnotify.Watcher
}

// NewWatcher creates a watcher for the data file under dir.
func NewWatcher(dir string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	ch := make(chan struct{}, 1)
	return &Watcher{
		Dir:     dir,
		Changes: ch,
		changes: ch,
		done:    make(chan struct{}),
		watcher: fw,
	}, nil
}

// Start begins watching. The directory is watched rather than the file
// itself because saves go through a rename, which replaces the inode.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(w.Dir); err != nil {
		return err
	}
	go w.loop()
	return nil
}

// Stop closes the watcher and its channels.
func (w *Watcher) Stop() {
	w.watcher.Close()
	<-w.done
	close(w.changes)
}

func (w *Watcher) loop() {
	defer close(w.done)

	const debounce = 100 * time.Millisecond
	var pending bool
	var last time.Time
	ticker := time.NewTicker(debounce)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != subjective.DataFileName {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			pending = true
			last = time.Now()
		case <-ticker.C:
			if pending && time.Since(last) >= debounce {
				pending = false
				select {
				case w.changes <- struct{}{}:
				default: // a reload is already queued
				}
			}
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}
