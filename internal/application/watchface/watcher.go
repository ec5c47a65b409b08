package watchface

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/penwyp/go-utc-face/internal/util"
)

// WatchKind tells which watched file changed
type WatchKind int

const (
	WatchHostState WatchKind = iota
	WatchTimezone
)

func (k WatchKind) String() string {
	switch k {
	case WatchHostState:
		return "host-state"
	case WatchTimezone:
		return "timezone"
	default:
		return "unknown"
	}
}

// WatchEvent reports a change to one watched file
type WatchEvent struct {
	Kind      WatchKind
	Path      string
	Operation string
}

// FileWatcher watches individual files. Parent directories are watched
// instead of the files themselves so that replace-by-rename writes and
// symlink swaps (as done to /etc/localtime) are still seen.
type FileWatcher struct {
	watcher *fsnotify.Watcher
	targets map[string]WatchKind
	events  chan WatchEvent
	done    chan struct{}
}

func NewFileWatcher(targets map[string]WatchKind) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	fw := &FileWatcher{
		watcher: watcher,
		targets: make(map[string]WatchKind, len(targets)),
		events:  make(chan WatchEvent, 100),
		done:    make(chan struct{}),
	}

	dirs := make(map[string]bool)
	for path, kind := range targets {
		abs, err := filepath.Abs(path)
		if err != nil {
			abs = filepath.Clean(path)
		}
		fw.targets[abs] = kind

		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		dirs[dir] = true
	}

	go fw.processEvents()

	return fw, nil
}

func (fw *FileWatcher) processEvents() {
	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if event.Op == fsnotify.Chmod {
				continue
			}

			kind, watched := fw.targets[filepath.Clean(event.Name)]
			if !watched {
				continue
			}
			select {
			case fw.events <- WatchEvent{Kind: kind, Path: event.Name, Operation: event.Op.String()}:
			case <-fw.done:
				return
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			// Log error but continue running
			util.LogError("File monitoring error: " + err.Error())

		case <-fw.done:
			return
		}
	}
}

func (fw *FileWatcher) Events() <-chan WatchEvent {
	return fw.events
}

func (fw *FileWatcher) Close() error {
	close(fw.done)
	return fw.watcher.Close()
}
