package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/esimov/inputbar"
	"github.com/fsnotify/fsnotify"
)

// Watch calls fn with the reloaded configuration each time the file at path
// is written or created, until ctx is done. Bursts of changes
// closer than delay produce a single reload. The parent directory is
// watched so that editors saving through a rename are seen.
func Watch(ctx context.Context, path string, delay time.Duration, fn func(*inputbar.Config, error)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("could not create the file watcher: %w", err)
	}
	defer w.Close()

	path = filepath.Clean(path)
	if err := w.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("could not watch %s: %w", path, err)
	}

	d := newDebouncer(delay)
	defer d.cancel()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			d.trigger(func() {
				fn(inputbar.LoadConfig(path))
			})
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("file watcher: %w", err)
		}
	}
}
