package storage

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/rubiojr/travelog/pkg/log"
)

// Watch observes the journal database file and invokes onChange when it
// is written or replaced by another process, so a long-running palette
// always searches live data. The watcher runs until Close is called on
// the returned fsnotify watcher.
//
// The parent directory is watched rather than the file itself: SQLite
// checkpoints and atomic replaces swap the inode, which would silently
// detach a direct file watch.
func Watch(path string, onChange func()) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		if cerr := watcher.Close(); cerr != nil {
			log.ForComponent("storage").Warnf("failed to close watcher: %v", cerr)
		}
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}

	logger := log.ForComponent("storage")
	base := filepath.Base(path)

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != base {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
					logger.Debugf("journal changed on disk (%s), reloading", event.Op)
					onChange()
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warnf("journal watcher error: %v", err)
			}
		}
	}()

	return watcher, nil
}
