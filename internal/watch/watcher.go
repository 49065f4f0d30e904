// Package watch tells the navigator when the displayed directory changes
// on disk, so that the listing stays current after verbs run.
package watch

import (
	"fmt"
	"os"
	"sync"
	"time"

	"tread/internal/log"

	"github.com/fsnotify/fsnotify"
)

// Change is a modification of the watched directory
type Change struct {
	Dir       string
	Path      string
	Op        fsnotify.Op
	Timestamp time.Time
}

// Watcher watches one directory at a time with fsnotify. Changes are
// coalesced: while a change is waiting to be read, later ones are dropped.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	changes   chan Change
	stopChan  chan struct{}

	mutex   sync.RWMutex
	dir     string
	running bool
}

// New creates a watcher. Start it before reading Changes.
func New() (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		fsWatcher: fsWatcher,
		changes:   make(chan Change, 1),
		stopChan:  make(chan struct{}),
	}, nil
}

// Watch replaces the watched directory by dir
func (w *Watcher) Watch(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("error accessing directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	w.mutex.Lock()
	defer w.mutex.Unlock()
	if w.dir == dir {
		return nil
	}
	if w.dir != "" {
		if err := w.fsWatcher.Remove(w.dir); err != nil {
			log.LogWithFields(log.F("directory", w.dir), log.F("error", err)).Debug("failed to stop watching directory")
		}
	}
	if err := w.fsWatcher.Add(dir); err != nil {
		w.dir = ""
		return fmt.Errorf("failed to add directory %s to watcher: %w", dir, err)
	}
	w.dir = dir
	log.LogWithFields(log.F("directory", dir)).Debug("watching directory")
	return nil
}

// Dir returns the watched directory
func (w *Watcher) Dir() string {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.dir
}

// Changes returns the channel delivering changes. It's closed by Stop.
func (w *Watcher) Changes() <-chan Change {
	return w.changes
}

// Start runs the event loop in a goroutine
func (w *Watcher) Start() error {
	w.mutex.Lock()
	if w.running {
		w.mutex.Unlock()
		return fmt.Errorf("watcher already running")
	}
	w.running = true
	w.mutex.Unlock()

	go w.loop()
	return nil
}

func (w *Watcher) loop() {
	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			// chmod events come with every access time update on some systems
			if event.Op == fsnotify.Chmod {
				continue
			}
			w.mutex.RLock()
			if w.running {
				select {
				case w.changes <- Change{Dir: w.dir, Path: event.Name, Op: event.Op, Timestamp: time.Now()}:
				default:
				}
			}
			w.mutex.RUnlock()

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.LogWithFields(log.F("error", err)).Error("fsnotify watcher error")

		case <-w.stopChan:
			return
		}
	}
}

// Stop halts the watcher and closes the changes channel
func (w *Watcher) Stop() {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if !w.running {
		return
	}
	close(w.stopChan)
	if err := w.fsWatcher.Close(); err != nil {
		log.LogWithFields(log.F("error", err)).Error("Error closing fsnotify watcher")
	}
	w.running = false
	close(w.changes)
}

// IsRunning returns whether the watcher is currently active
func (w *Watcher) IsRunning() bool {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.running
}
