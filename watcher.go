package fshidden

import (
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Watcher forwards fsnotify events for paths the Matcher does not ignore,
// grouping the events of each Timeout window into single actions.
// Watches are not recursive.
type Watcher struct {
	watcher  *fsnotify.Watcher
	matcher  *Matcher
	config   *Config
	log      logrus.FieldLogger
	mu       sync.Mutex
	watched  map[string]bool
	events   chan *Event // filtered events waiting to be grouped
	emitch   chan *Event // grouped events sent to the user
	errors   chan error
	quit     chan struct{}
	stopOnce sync.Once

	// Filter drops an event when it returns true.
	Filter func(*Event) bool
}

func NewWatcher(config *Config) (*Watcher, error) {
	if config.Timeout <= 0 {
		return nil, errors.Errorf("watcher timeout must be positive, got %v", config.Timeout)
	}
	matcher, err := NewMatcher(config)
	if err != nil {
		return nil, err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "create fsnotify watcher")
	}

	return &Watcher{
		watcher: watcher,
		matcher: matcher,
		config:  config,
		log:     config.logger(),
		watched: make(map[string]bool),
		events:  make(chan *Event, 100),
		emitch:  make(chan *Event),
		errors:  make(chan error),
		quit:    make(chan struct{}),
	}, nil
}

// Start begins receiving and grouping events.
func (w *Watcher) Start() {
	go w.eventloop()

	go func() {
		for {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				w.addEvent(event.Op, event.Name)
			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				select {
				case w.errors <- err:
				default:
					w.log.WithError(err).Warn("dropping watcher error, nobody is receiving")
				}
			case <-w.quit:
				return
			}
		}
	}()
}

// Next returns the channel to receive events.
func (w *Watcher) Next() <-chan *Event {
	return w.emitch
}

// Errors returns the channel to receive errors from the underlying watcher.
// Errors that arrive while no one is receiving are logged and dropped.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Add watches a file or the direct children of a directory.
func (w *Watcher) Add(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.watched[path] {
		return nil
	}
	if err := w.watcher.Add(path); err != nil {
		return errors.Wrapf(err, "watch %s", path)
	}
	w.watched[path] = true
	return nil
}

// Remove stops watching path.
func (w *Watcher) Remove(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.watched[path] {
		return
	}
	if err := w.watcher.Remove(path); err != nil {
		w.log.WithError(err).WithField("path", path).Debug("remove watch")
	}
	delete(w.watched, path)
}

// Stop stops the watcher. It is safe to call more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.quit)
		if err := w.watcher.Close(); err != nil {
			w.log.WithError(err).Warn("close fsnotify watcher")
		}
	})
}

// addEvent queues an fsnotify event unless its path is ignored.
func (w *Watcher) addEvent(op fsnotify.Op, name string) {
	eventType, ok := eventTypeFromOp(op)
	if !ok {
		return
	}

	ignored, err := w.matcher.Match(name)
	if errors.Is(err, fs.ErrNotExist) {
		// The dot rule has been applied already; a vanished path cannot
		// carry an attribute.
		ignored, err = false, nil
	}
	if err != nil {
		w.log.WithError(err).WithField("path", name).Warn("dropping event")
		return
	}
	if ignored {
		w.log.WithField("path", name).Debug("ignoring event")
		return
	}

	event := NewEvent(eventType, name, time.Now())
	if w.Filter != nil && w.Filter(event) {
		return
	}

	select {
	case w.events <- event:
	case <-w.quit:
	}
}

func (w *Watcher) eventloop() {
	queue := NewEventQueue()

	ticker := time.NewTicker(w.config.Timeout)
	defer ticker.Stop()

	for {
		select {
		case event := <-w.events:
			queue.Push(event)
		case <-ticker.C:
			for _, event := range w.resolve(queue.Drain()) {
				select {
				case w.emitch <- event:
				case <-w.quit:
					return
				}
			}
		case <-w.quit:
			return
		}
	}
}

// resolve turns one window of events, in arrival order, into the actions
// to emit.
func (w *Watcher) resolve(batch []*Event) []*Event {
	skip := make([]bool, len(batch))
	emitted := make(map[string]bool)

	// A removal makes everything that happened to the path before it moot.
	for i, event := range batch {
		if event.Type != Remove {
			continue
		}
		for j := 0; j < i; j++ {
			if batch[j].Path == event.Path {
				skip[j] = true
			}
		}
	}

	renamedFrom, claimed := pairRenames(batch, skip)

	var out []*Event
	for i, event := range batch {
		if skip[i] || emitted[event.Signature()] {
			continue
		}

		switch event.Type {
		case Remove:
			w.Remove(event.Path)
			out = append(out, event)

		case Create:
			if j, ok := renamedFrom[i]; ok {
				result := NewEvent(Rename, event.Path, event.Timestamp)
				result.Properties["OldPath"] = batch[j].Path
				out = append(out, result)
			} else {
				out = append(out, event)
			}

		case Rename:
			// A paired Rename is emitted by its Create. An unpaired one means
			// the path left the watched directories.
			if claimed[i] {
				break
			}
			if _, err := os.Stat(event.Path); errors.Is(err, fs.ErrNotExist) {
				w.Remove(event.Path)
				out = append(out, NewEvent(Remove, event.Path, event.Timestamp))
			}

		case Modify:
			latest := event
			created := false
			for j, other := range batch {
				if skip[j] || other.Path != event.Path {
					continue
				}
				switch other.Type {
				case Modify:
					latest = other
				case Create:
					created = true
				}
			}
			if !created {
				out = append(out, latest)
			}

		case Chmod:
			if w.config.EmitChmod {
				out = append(out, event)
			}
		}
		emitted[event.Signature()] = true
	}
	return out
}

// pairRenames matches each Create with at most one unclaimed Rename
// of another path in the same directory. renamedFrom maps a Create index to
// its Rename index; claimed marks the Renames that were used.
func pairRenames(batch []*Event, skip []bool) (renamedFrom map[int]int, claimed []bool) {
	renamedFrom = make(map[int]int)
	claimed = make([]bool, len(batch))
	created := make(map[string]bool)

	for i, event := range batch {
		if skip[i] || event.Type != Create || created[event.Path] {
			continue
		}
		created[event.Path] = true
		for j, other := range batch {
			if skip[j] || claimed[j] || other.Type != Rename || other.Path == event.Path {
				continue
			}
			if filepath.Dir(other.Path) == filepath.Dir(event.Path) {
				renamedFrom[i] = j
				claimed[j] = true
				break
			}
		}
	}
	return renamedFrom, claimed
}
