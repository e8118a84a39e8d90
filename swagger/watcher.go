package swagger

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounceTime spaces out the bursts of write events editors produce
// when saving a file.
const DefaultDebounceTime = 100 * time.Millisecond

// Watcher reports changes to a single file on its Update channel, debounced.
// A non-nil value on the channel is a watch error; nil means the file
// changed.
type Watcher struct {
	watcher      *fsnotify.Watcher
	filename     string
	debounceTime time.Duration

	timer  *time.Timer
	update chan error

	Update <-chan error
}

// WatchFile watches filename for changes. The parent directory is watched
// rather than the file itself so that editors replacing the file atomically
// (write to temp, rename over) keep being noticed.
func WatchFile(filename string, debounceTime time.Duration) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := fsWatcher.Add(filepath.Dir(filename)); err != nil {
		fsWatcher.Close()
		return nil, err
	}

	update := make(chan error, 1)

	w := &Watcher{
		watcher:      fsWatcher,
		filename:     filepath.Clean(filename),
		debounceTime: debounceTime,
		update:       update,
		Update:       update,
	}

	go w.process()

	return w, nil
}

func (w *Watcher) Close() error {
	return w.watcher.Close()
}

func (w *Watcher) debounce() {
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounceTime, func() {
		select {
		case w.update <- nil:
		default:
		}
	})
}

func (w *Watcher) process() {
	for {
		select {
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.update <- err:
			default:
			}
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.filename {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				w.debounce()
			}
		}
	}
}
