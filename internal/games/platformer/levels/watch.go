package levels

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// debounce is how long a file must stay quiet before its change is
// reported. Each new event for the file restarts the wait, so a burst of
// writes yields one event after the last of them.
const debounce = 100 * time.Millisecond

// Watcher reports changes to pack files.
type Watcher struct {
	watcher *fsnotify.Watcher
	files   map[string]bool // nil means any pack file in the watched dirs
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// NewWatcher watches the given pack files or directories. Files are watched
// through their parent directory so editors that replace the file on save
// keep being tracked.
func NewWatcher(paths ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		watcher: fw,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}

	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			_ = fw.Close()
			return nil, err
		}
		dir := abs
		if IsPackFile(abs) {
			if w.files == nil {
				w.files = make(map[string]bool)
			}
			w.files[abs] = true
			dir = filepath.Dir(abs)
		}
		if dirs[dir] {
			continue
		}
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, err
		}
		dirs[dir] = true
	}

	go w.run()
	return w, nil
}

// Close stops the watcher. Events and Errors are closed once the watch
// goroutine exits.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.Events)
	defer close(w.Errors)

	// Timers are owned by this goroutine; their callbacks only hand the
	// settled path back through settled.
	timers := make(map[string]*time.Timer)
	settled := make(chan string)
	defer func() {
		for _, t := range timers {
			t.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if !w.wants(event.Name) {
				continue
			}
			path := event.Name
			if t, ok := timers[path]; ok {
				t.Reset(debounce)
				continue
			}
			timers[path] = time.AfterFunc(debounce, func() {
				select {
				case settled <- path:
				case <-w.closeCh:
				}
			})

		case path := <-settled:
			delete(timers, path)
			log.Debug("pack changed", "path", path)

			select {
			case w.Events <- path:
			case <-w.closeCh:
				return
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
				log.Warn("pack watcher error dropped", "err", err)
			}

		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) wants(path string) bool {
	if !IsPackFile(path) {
		return false
	}
	if w.files == nil {
		return true
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	return w.files[abs]
}
