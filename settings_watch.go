package placer

import (
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
)

// SettingsStore holds the current settings. The coordinator reads it once per
// frame; a watcher may replace it from another goroutine.
type SettingsStore struct {
	cur     atomic.Pointer[Settings]
	version atomic.Uint64
}

func NewSettingsStore(s Settings) *SettingsStore {
	st := &SettingsStore{}
	st.Store(s)
	return st
}

func (st *SettingsStore) Load() Settings {
	if p := st.cur.Load(); p != nil {
		return *p
	}
	return DefaultSettings()
}

func (st *SettingsStore) Store(s Settings) {
	c := s.Clone()
	st.cur.Store(&c)
	st.version.Add(1)
}

// Version increases on every Store.
func (st *SettingsStore) Version() uint64 {
	return st.version.Load()
}

// SettingsWatcher reloads a settings file into a store whenever it is written.
// A file that fails to parse leaves the previous settings in place.
type SettingsWatcher struct {
	path  string
	store *SettingsStore
	log   Logger

	watcher *fsnotify.Watcher
	done    chan struct{}
	wg      sync.WaitGroup
}

// WatchSettingsFile loads path into store and starts watching it. The
// directory is watched so that editors which replace the file are seen.
func WatchSettingsFile(path string, store *SettingsStore, log Logger) (*SettingsWatcher, error) {
	log = loggerOrNop(log)
	s, err := LoadSettingsFile(path)
	if err != nil {
		return nil, err
	}
	store.Store(s)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("settings watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, fmt.Errorf("settings watcher: %w", err)
	}

	sw := &SettingsWatcher{
		path:    filepath.Clean(path),
		store:   store,
		log:     log,
		watcher: w,
		done:    make(chan struct{}),
	}
	sw.wg.Add(1)
	go sw.run()
	return sw, nil
}

func (sw *SettingsWatcher) run() {
	defer sw.wg.Done()
	for {
		select {
		case <-sw.done:
			return
		case event, ok := <-sw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != sw.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				sw.reload()
			}
		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return
			}
			sw.log.Errorf("settings watcher: %v", err)
		}
	}
}

func (sw *SettingsWatcher) reload() {
	s, err := LoadSettingsFile(sw.path)
	if err != nil {
		sw.log.Errorf("settings reload: %v", err)
		return
	}
	sw.store.Store(s)
	sw.log.Debugf("settings reloaded from %s", sw.path)
}

// Close stops watching. It is safe to call more than once.
func (sw *SettingsWatcher) Close() error {
	if sw == nil || sw.done == nil {
		return nil
	}
	close(sw.done)
	err := sw.watcher.Close()
	sw.wg.Wait()
	sw.done = nil
	return err
}
