package catalog

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher reloads a file-backed catalog when the file changes, so a
// long-lived shop view stays current with stock edits made outside the app.
type Watcher struct {
	path     string
	fsw      *fsnotify.Watcher
	logger   *zap.Logger
	onReload func(*Catalog)

	done chan struct{}
	once sync.Once
}

// WatchFile starts watching the catalog file at path. onReload is called with
// the freshly loaded catalog after every successful reload; load failures are
// logged and the previous catalog stays in effect.
func WatchFile(path string, logger *zap.Logger, onReload func(*Catalog)) (*Watcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory: editors commonly replace the file, which drops a
	// watch registered on the file itself.
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		path:     path,
		fsw:      fsw,
		logger:   logger,
		onReload: onReload,
		done:     make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			cat, err := Load(w.path)
			if err != nil {
				w.logger.Warn("catalog reload failed, keeping previous stock",
					zap.String("path", w.path), zap.Error(err))
				continue
			}
			w.logger.Debug("catalog reloaded", zap.Int("shoes", cat.Len()))
			w.onReload(cat)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("catalog watcher error", zap.Error(err))
		}
	}
}

// Close stops the watcher and waits for the loop to exit.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		err = w.fsw.Close()
		<-w.done
	})
	return err
}
