// Package watch notifies the TUI when the browsed directory changes on
// disk, so the listing can refresh without manual input. The browser
// core never depends on it; a missing or failed watcher only disables
// auto-refresh.
package watch

import (
	"fmt"
	"sync"
	"time"

	"logpick/internal/log"

	"github.com/fsnotify/fsnotify"
)

// Change signals that the watched directory's contents changed.
type Change struct {
	Dir       string
	Timestamp time.Time
}

// Watcher monitors a single directory using fsnotify. Retarget moves it
// to a new directory as the user navigates.
type Watcher struct {
	changes   chan Change
	stopChan  chan struct{}
	fsWatcher *fsnotify.Watcher

	mutex   sync.RWMutex
	dir     string
	running bool
}

// New creates a directory watcher.
func New() (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		changes:   make(chan Change, 10),
		stopChan:  make(chan struct{}),
		fsWatcher: fsWatcher,
	}, nil
}

// Retarget switches watching to dir, dropping the previous directory.
// Unwatchable directories (permission denied, removed) are not an
// error to the caller; auto-refresh just goes quiet until the next
// Retarget.
func (w *Watcher) Retarget(dir string) {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.dir == dir {
		return
	}
	if w.dir != "" {
		// Remove can fail if the directory disappeared; the watch is gone
		// either way.
		_ = w.fsWatcher.Remove(w.dir)
		w.dir = ""
	}
	if err := w.fsWatcher.Add(dir); err != nil {
		log.LogWithFields(log.F("directory", dir)).Debugf("cannot watch: %v", err)
		return
	}
	w.dir = dir
	log.LogWithFields(log.F("directory", dir)).Debug("watching directory")
}

// Changes returns the channel delivering change notifications.
func (w *Watcher) Changes() <-chan Change {
	return w.changes
}

// Start begins delivering change notifications.
func (w *Watcher) Start() error {
	w.mutex.Lock()
	if w.running {
		w.mutex.Unlock()
		return fmt.Errorf("watcher already running")
	}
	w.running = true
	w.stopChan = make(chan struct{})
	w.mutex.Unlock()

	go func() {
		for {
			select {
			case event, ok := <-w.fsWatcher.Events:
				if !ok {
					return
				}
				if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) &&
					!event.Op.Has(fsnotify.Remove) && !event.Op.Has(fsnotify.Rename) {
					continue
				}

				w.mutex.RLock()
				dir := w.dir
				w.mutex.RUnlock()

				// Send non-blockingly; a full channel means a refresh is
				// already pending and this event adds nothing.
				select {
				case w.changes <- Change{Dir: dir, Timestamp: time.Now()}:
				default:
				}

			case err, ok := <-w.fsWatcher.Errors:
				if !ok {
					return
				}
				log.Warnf("fsnotify watcher error: %v", err)

			case <-w.stopChan:
				return
			}
		}
	}()

	return nil
}

// Stop halts the watcher and closes its channels.
func (w *Watcher) Stop() {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if !w.running {
		return
	}

	close(w.stopChan)
	if err := w.fsWatcher.Close(); err != nil {
		log.Warnf("error closing fsnotify watcher: %v", err)
	}
	w.running = false
	close(w.changes)
}

// IsRunning returns whether the watcher is currently active.
func (w *Watcher) IsRunning() bool {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.running
}

// Dir returns the directory currently being watched.
func (w *Watcher) Dir() string {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.dir
}
