package graphics

import (
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const reloadDebounce = 100 * time.Millisecond

// ShaderWatcher reports when any of a set of shader files changes on disk.
// It watches the parent directories because editors often save by rename.
// The render loop polls Changed and recompiles on the GL thread.
type ShaderWatcher struct {
	watcher *fsnotify.Watcher
	files   map[string]struct{}
	log     *zap.Logger

	dirty   atomic.Bool
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

func NewShaderWatcher(log *zap.Logger, paths ...string) (*ShaderWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	sw := &ShaderWatcher{
		watcher: w,
		files:   make(map[string]struct{}, len(paths)),
		log:     log,
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}

	dirs := make(map[string]struct{})
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			_ = w.Close()
			return nil, err
		}
		sw.files[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	go sw.run()
	return sw, nil
}

// Changed reports whether a watched file changed since the last call
func (sw *ShaderWatcher) Changed() bool {
	return sw.dirty.Swap(false)
}

func (sw *ShaderWatcher) Close() error {
	var err error
	sw.once.Do(func() {
		close(sw.closeCh)
		err = sw.watcher.Close()
		<-sw.done
	})
	return err
}

func (sw *ShaderWatcher) run() {
	defer close(sw.done)

	// Editors save in several steps (truncate, write, rename). Report once
	// the burst has been quiet for reloadDebounce so the reload sees the
	// final contents.
	var (
		timer   *time.Timer
		fire    <-chan time.Time
		pending string
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-sw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			name, err := filepath.Abs(event.Name)
			if err != nil {
				continue
			}
			if _, ok := sw.files[name]; !ok {
				continue
			}
			pending = name
			if timer == nil {
				timer = time.NewTimer(reloadDebounce)
			} else {
				timer.Reset(reloadDebounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			sw.log.Debug("shader changed", zap.String("file", pending))
			sw.dirty.Store(true)
		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return
			}
			sw.log.Warn("shader watcher error", zap.Error(err))
		case <-sw.closeCh:
			return
		}
	}
}
