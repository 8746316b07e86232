// seehuhn.de/go/boxdraw - procedural glyphs for terminal cells
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package config

import (
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the delay between the last change to a watched file
// and the reload.
const DefaultDebounce = 250 * time.Millisecond

// Watcher keeps a configuration in sync with a file on disk.
//
// Every successful reload installs a fresh [Config] value; values returned
// by [Watcher.Current] are never modified afterwards, so a batch of glyph
// renders can share one snapshot without locking.
type Watcher struct {
	// OnChange, if set, is called after a new configuration was installed.
	OnChange func(*Config)

	// OnError, if set, is called when reloading fails.  The previous
	// configuration stays in effect.
	OnError func(error)

	path     string
	debounce time.Duration
	current  atomic.Pointer[Config]
	fsw      *fsnotify.Watcher

	mu      sync.Mutex
	running bool
	stop    chan struct{}
	stopped chan struct{}
}

// NewWatcher loads the configuration file at fname and prepares to watch
// it for changes.  Call [Watcher.Start] to begin watching.
// A non-positive debounce selects [DefaultDebounce].
func NewWatcher(fname string, debounce time.Duration) (*Watcher, error) {
	cfg, err := Load(fname)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Editors often replace the file by renaming, so watch the directory.
	if err := fsw.Add(filepath.Dir(fname)); err != nil {
		fsw.Close()
		return nil, err
	}

	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	w := &Watcher{
		path:     fname,
		debounce: debounce,
		fsw:      fsw,
		stop:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
	w.current.Store(cfg)
	return w, nil
}

// Current returns the most recently loaded configuration.
func (w *Watcher) Current() *Config {
	return w.current.Load()
}

// Start begins watching in a background goroutine.
func (w *Watcher) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return
	}
	w.running = true
	go w.loop()
}

// Close stops watching and releases the underlying file system watcher.
func (w *Watcher) Close() error {
	w.mu.Lock()
	running := w.running
	w.running = false
	w.mu.Unlock()

	if !running {
		return w.fsw.Close()
	}
	close(w.stop)
	<-w.stopped
	return nil
}

func (w *Watcher) loop() {
	defer close(w.stopped)
	defer w.fsw.Close()

	base := filepath.Base(w.path)

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-w.stop:
			if timer != nil {
				timer.Stop()
			}
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != base {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.debounce)
			fire = timer.C

		case <-fire:
			timer, fire = nil, nil
			w.reload()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.report(err)
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		w.report(err)
		return
	}
	w.current.Store(cfg)
	if w.OnChange != nil {
		w.OnChange(cfg)
	}
}

func (w *Watcher) report(err error) {
	if w.OnError != nil {
		w.OnError(err)
	}
}
