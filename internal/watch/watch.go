// Package watch reports changes to a set of files, coalescing bursts of
// events into one notification per file.
package watch

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/Faultbox/scenery/internal/logger"
)

// DefaultDebounce is the quiet period used by the viewer.
const DefaultDebounce = 200 * time.Millisecond

// Watcher calls a callback once a watched file has stopped changing for
// the debounce period. Parent directories are watched so that editors
// which replace files by rename are still seen.
type Watcher struct {
	fs       *fsnotify.Watcher
	debounce time.Duration
	onChange func(path string)
	log      *zap.Logger

	mu     sync.Mutex
	files  map[string]bool
	dirs   map[string]bool
	timers map[string]*time.Timer
	closed bool

	done chan struct{}
}

// New creates a watcher. onChange runs on a timer goroutine with the
// absolute path of the changed file.
func New(debounce time.Duration, onChange func(path string)) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	w := &Watcher{
		fs:       fs,
		debounce: debounce,
		onChange: onChange,
		log:      logger.Named("watch"),
		files:    make(map[string]bool),
		dirs:     make(map[string]bool),
		timers:   make(map[string]*time.Timer),
		done:     make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Add starts watching path.
func (w *Watcher) Add(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", path, err)
	}
	dir := filepath.Dir(abs)

	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.dirs[dir] {
		if err := w.fs.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
		w.dirs[dir] = true
	}
	w.files[abs] = true
	w.log.Debug("watching", zap.String("path", abs))
	return nil
}

func (w *Watcher) run() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.changed(event.Name)
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.Warn("watcher error", zap.Error(err))
		}
	}
}

// changed restarts the debounce timer for path if it is watched.
func (w *Watcher) changed(path string) {
	path = filepath.Clean(path)

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed || !w.files[path] {
		return
	}
	if t, ok := w.timers[path]; ok {
		t.Stop()
	}
	var t *time.Timer
	t = time.AfterFunc(w.debounce, func() {
		// t is assigned under mu, so read it under mu as well.
		w.mu.Lock()
		self := t
		w.mu.Unlock()
		w.fire(path, self)
	})
	w.timers[path] = t
}

// fire reports path unless t was superseded by a newer event or the
// watcher closed.
func (w *Watcher) fire(path string, t *time.Timer) {
	w.mu.Lock()
	current := w.timers[path] == t
	if current {
		delete(w.timers, path)
	}
	closed := w.closed
	w.mu.Unlock()

	if current && !closed {
		w.onChange(path)
	}
}

// Close stops watching and cancels pending notifications.
func (w *Watcher) Close() error {
	w.mu.Lock()
	w.closed = true
	for path, t := range w.timers {
		t.Stop()
		delete(w.timers, path)
	}
	w.mu.Unlock()

	err := w.fs.Close()
	<-w.done
	return err
}
