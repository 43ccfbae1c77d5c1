package config

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher reloads the config whenever its file changes on disk, so a
// theme edit takes effect in the running TUI without a restart.
type Watcher struct {
	watcher *fsnotify.Watcher
	events  chan Config
	done    chan struct{}
	log     *zap.Logger
}

// Watch starts watching the config file inside dir. Reloaded configs
// are delivered on Events; a reload that fails to parse is logged and
// skipped rather than delivered.
func Watch(dir string, log *zap.Logger) (*Watcher, error) {
	if log == nil {
		log = zap.NewNop()
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory, not the file: editors replace files on save
	// and a file watch would die with the old inode.
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{
		watcher: fw,
		events:  make(chan Config, 1),
		done:    make(chan struct{}),
		log:     log,
	}
	go w.loop(dir)
	return w, nil
}

// Events delivers reloaded configs.
func (w *Watcher) Events() <-chan Config {
	return w.events
}

func (w *Watcher) loop(dir string) {
	target := filepath.Clean(File(dir))
	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			cfg, err := Load(dir)
			if err != nil {
				w.log.Warn("config reload failed", zap.Error(err))
				continue
			}
			select {
			case w.events <- cfg:
			default:
				// Drop when the UI is behind; the next write wins.
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("config watcher error", zap.Error(err))
		case <-w.done:
			return
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}
