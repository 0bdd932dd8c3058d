package magickit

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event is a classification of a file that was created or modified
// under a watched directory.
type Event struct {
	Path     string
	Info     TypeInfo
	Category Category
}

// errorBuffer is the capacity of the Errors channel. Errors beyond it
// are dropped so a consumer draining only Events never stalls the
// watcher.
const errorBuffer = 16

// Watcher re-classifies files as they change on disk. Create and
// write events from the underlying filesystem watcher trigger a fresh
// identification; results arrive on Events.
//
// Combine with a caching Identifier to avoid re-identifying files
// whose size and mtime did not change.
//
//	w, err := magickit.NewWatcher(ident)
//	if err != nil {
//	    return err
//	}
//	defer w.Close()
//
//	if err := w.Add("/var/uploads"); err != nil {
//	    return err
//	}
//	for ev := range w.Events() {
//	    log.Println(ev.Path, "is now", ev.Category)
//	}
type Watcher struct {
	ident    Identifier
	selector FileSelector
	debounce time.Duration
	watcher  *fsnotify.Watcher
	events   chan Event
	errors   chan error
	closing  chan struct{}
	done     chan struct{}
	closeOne sync.Once
}

// WatchOption configures a Watcher.
type WatchOption func(*Watcher)

// WithWatchSelector restricts which files trigger re-classification.
func WithWatchSelector(selector FileSelector) WatchOption {
	return func(w *Watcher) {
		w.selector = selector
	}
}

// WithWatchDebounce coalesces bursts of events for the same path:
// classification runs once the path has been quiet for d. Editors and
// copies emit several create/write events per file; a window of a few
// hundred milliseconds collapses them into one classification.
// A non-positive d classifies every event immediately.
func WithWatchDebounce(d time.Duration) WatchOption {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// NewWatcher creates a Watcher classifying through the given
// Identifier. The Watcher does not close the Identifier.
func NewWatcher(ident Identifier, opts ...WatchOption) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		ident:    ident,
		selector: All(),
		watcher:  fsw,
		events:   make(chan Event),
		errors:   make(chan error, errorBuffer),
		closing:  make(chan struct{}),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	go w.loop()
	return w, nil
}

// NewWatcherFromConfig creates a Watcher applying the config's
// debounce window. Explicit options override the config.
func NewWatcherFromConfig(ident Identifier, cfg *Config, opts ...WatchOption) (*Watcher, error) {
	merged := make([]WatchOption, 0, len(opts)+1)
	if cfg.WatchDebounceMS > 0 {
		merged = append(merged, WithWatchDebounce(time.Duration(cfg.WatchDebounceMS)*time.Millisecond))
	}
	merged = append(merged, opts...)
	return NewWatcher(ident, merged...)
}

// Add starts watching the directory at path. Only the directory
// itself is watched, not its subdirectories.
func (w *Watcher) Add(path string) error {
	return w.watcher.Add(path)
}

// Remove stops watching the directory at path.
func (w *Watcher) Remove(path string) error {
	return w.watcher.Remove(path)
}

// Events returns the channel classification results arrive on.
// The channel is closed by Close.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Errors returns the channel watch and identification errors arrive
// on. The channel is buffered; once full, further errors are dropped
// rather than blocking event delivery.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Close stops the watcher and closes the Events and Errors channels.
// Safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.closeOne.Do(func() {
		close(w.closing)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

func (w *Watcher) loop() {
	defer close(w.done)
	defer close(w.events)
	defer close(w.errors)

	// Paths awaiting classification, keyed to the moment their
	// debounce window ends. A single timer tracks the earliest
	// deadline.
	pending := make(map[string]time.Time)
	var timer *time.Timer
	var timerC <-chan time.Time

	rearm := func() {
		timerC = nil
		if len(pending) == 0 {
			return
		}
		var earliest time.Time
		for _, deadline := range pending {
			if earliest.IsZero() || deadline.Before(earliest) {
				earliest = deadline
			}
		}
		d := time.Until(earliest)
		if d < 0 {
			d = 0
		}
		if timer == nil {
			timer = time.NewTimer(d)
		} else {
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(d)
		}
		timerC = timer.C
	}

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			if w.debounce <= 0 {
				w.classify(event.Name)
				continue
			}
			pending[event.Name] = time.Now().Add(w.debounce)
			rearm()

		case <-timerC:
			now := time.Now()
			for path, deadline := range pending {
				if !deadline.After(now) {
					delete(pending, path)
					w.classify(path)
				}
			}
			rearm()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendError(err)
		}
	}
}

// sendError delivers err without blocking. The errors channel is
// buffered; when nobody drains it, errors are dropped so event
// delivery keeps flowing.
func (w *Watcher) sendError(err error) {
	select {
	case w.errors <- err:
	default:
	}
}

// classify identifies a single changed path and emits the result.
// Directories and files that vanished between the event and the stat
// are ignored; editors routinely produce such events mid-rename.
func (w *Watcher) classify(path string) {
	fi, err := os.Stat(path)
	if err != nil || fi.IsDir() || !fi.Mode().IsRegular() {
		return
	}

	file := &FileInfo{
		Name:    filepath.Base(path),
		Path:    path,
		Size:    fi.Size(),
		ModTime: fi.ModTime(),
	}
	if !w.selector.Match(file) {
		return
	}

	desc, err := w.ident.File(path)
	if err != nil {
		w.sendError(err)
		return
	}

	info := TypeInfo{Description: desc}
	select {
	case w.events <- Event{Path: path, Info: info, Category: info.Category()}:
	case <-w.closing:
	}
}
