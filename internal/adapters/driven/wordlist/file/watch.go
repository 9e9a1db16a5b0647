package file

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/FabianSt305/find-words-with-no-letters-in-common/internal/logger"
)

// DefaultDebounce collapses the burst of events an editor save produces.
const DefaultDebounce = 250 * time.Millisecond

// Watcher reports changes to a single word list file.
//
// The parent directory is watched rather than the file, so replacing the
// file (write to temp, rename) is seen as well.
type Watcher struct {
	watcher  *fsnotify.Watcher
	target   string
	debounce time.Duration
}

// NewWatcher starts watching path. Events are delivered once Run is called.
func NewWatcher(path string, debounce time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{watcher: w, target: abs, debounce: debounce}, nil
}

// Run calls onChange after every settled change to the file until ctx is
// done. onChange runs on the Run goroutine, so changes that arrive while it
// works are coalesced into one later call.
func (w *Watcher) Run(ctx context.Context, onChange func()) error {
	defer w.watcher.Close()

	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			logger.Debug("Word list event: %s", ev.Op)
			fire = time.After(w.debounce)

		case <-fire:
			fire = nil
			onChange()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watching word list: %w", err)
		}
	}
}

// Target returns the absolute path being watched.
func (w *Watcher) Target() string {
	return w.target
}
